package main

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pwiecz/hex_skirmish/lib"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	defaults := lib.DefaultConfig()
	if opts.config.Rows != defaults.Rows || opts.config.Cols != defaults.Cols {
		t.Errorf("Expecting %dx%d map, got %dx%d", defaults.Rows, defaults.Cols, opts.config.Rows, opts.config.Cols)
	}
	if opts.config.Sizing != lib.SizingFixed || opts.debug || opts.cpuprofile != "" {
		t.Errorf("Unexpected options %+v", opts)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-seed", "12", "-rows", "4", "-cols", "3", "-noise", "-speed", "3", "-budget", "9", "-debug"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	cfg := opts.config
	if cfg.Seed != 12 || cfg.Rows != 4 || cfg.Cols != 3 || cfg.StepBudget != 9 {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.Decoration != lib.NoiseDecoration || cfg.Speed != lib.Slow || !opts.debug {
		t.Errorf("Unexpected options %+v", opts)
	}

	opts, err = parseFlags([]string{"-size-from-window"}, io.Discard)
	if err != nil || opts.config.Sizing != lib.SizingFromWindow {
		t.Errorf("Expecting window sizing, got %v %v", opts.config.Sizing, err)
	}
}

func TestParseFlagsRejectsSizeConflict(t *testing.T) {
	for _, args := range [][]string{
		{"-size-from-window", "-rows", "4"},
		{"-cols", "6", "-size-from-window"},
	} {
		if _, err := parseFlags(args, io.Discard); !errors.Is(err, errConflictingFlags) {
			t.Errorf("%v: expecting errConflictingFlags, got %v", args, err)
		}
	}
	if _, err := parseFlags([]string{"-unknown"}, io.Discard); err == nil {
		t.Error("Expecting an error for an unknown flag")
	}
}

func TestRunReportsErrors(t *testing.T) {
	logger := log.New(io.Discard)
	opts, err := parseFlags([]string{"-cpuprofile", t.TempDir() + "/missing/cpu.prof"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(opts, logger); err == nil {
		t.Error("Expecting an error for an unwritable cpu profile")
	}

	opts, err = parseFlags([]string{"-cols", "0"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(opts, logger); !errors.Is(err, lib.ErrInvalidMapSize) {
		t.Errorf("Expecting ErrInvalidMapSize, got %v", err)
	}
}
