package lib

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config is invalid, %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidMapSize) {
		t.Errorf("Expecting ErrInvalidMapSize, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.StepBudget = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expecting ErrInvalidConfig for zero budget, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Speed = Speed(7)
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expecting ErrInvalidConfig for speed 7, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Sizing = SizingFromWindow
	cfg.WindowWidth = 50
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidMapSize) {
		t.Errorf("Expecting ErrInvalidMapSize for a tiny window, got %v", err)
	}
}

func TestMapSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 10
	if rows, cols := cfg.MapSize(); rows != 5 || cols != 10 {
		t.Errorf("Expecting fixed 5x10, got %dx%d", rows, cols)
	}
	cfg.Sizing = SizingFromWindow
	for _, tc := range []struct {
		width, height int
		rows, cols    int
	}{
		{800, 600, 10, 5},
		{775, 650, 10, 6},
		{100, 150, 1, 1},
	} {
		cfg.WindowWidth, cfg.WindowHeight = tc.width, tc.height
		if rows, cols := cfg.MapSize(); rows != tc.rows || cols != tc.cols {
			t.Errorf("Window %dx%d: expecting %dx%d tiles, got %dx%d", tc.width, tc.height, tc.rows, tc.cols, rows, cols)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 || cfg.Seed == 0 {
		t.Error("Expecting a non-zero seed")
	}
	cfg.Seed = 17
	if cfg.ResolveSeed() != 17 {
		t.Error("Expecting an explicit seed to be kept")
	}
}

func TestSpeed(t *testing.T) {
	if Fast.TicksPerStep() >= Medium.TicksPerStep() || Medium.TicksPerStep() >= Slow.TicksPerStep() {
		t.Error("Slower speeds should take more ticks per step")
	}
	if Slow.Faster() != Medium || Fast.Faster() != Fast || Fast.Slower() != Medium || Slow.Slower() != Slow {
		t.Error("Unexpected speed transitions")
	}
}
