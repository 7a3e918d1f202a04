package lib

import (
	"errors"
	"fmt"
	"math"
	"time"
)

type Speed int

func (s Speed) String() string {
	switch s {
	case Fast:
		return "FAST"
	case Medium:
		return "MEDIUM"
	case Slow:
		return "SLOW"
	}
	panic(fmt.Errorf("Unknown speed: %d", int(s)))
}

// TicksPerStep is the number of frame ticks a token spends on each tile while moving.
func (s Speed) TicksPerStep() int {
	return 6 * int(s)
}
func (s Speed) Faster() Speed {
	switch s {
	case Fast:
		return Fast
	case Medium:
		return Fast
	case Slow:
		return Medium
	}
	panic(fmt.Errorf("Unknown speed: %d", int(s)))
}
func (s Speed) Slower() Speed {
	switch s {
	case Fast:
		return Medium
	case Medium:
		return Slow
	case Slow:
		return Slow
	}
	panic(fmt.Errorf("Unknown speed: %d", int(s)))
}

const (
	Fast   Speed = 1
	Medium Speed = 2
	Slow   Speed = 3
)

// Sizing selects how the tile map dimensions are chosen.
type Sizing int

const (
	SizingFixed      Sizing = 0 // Rows and Cols as configured
	SizingFromWindow Sizing = 1 // as many tiles as fit in the window
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Seed         int64 // 0 picks a seed from the clock
	Rows, Cols   int
	Sizing       Sizing
	WindowWidth  int
	WindowHeight int
	Decoration   DecorationKind
	StepBudget   int // maximum tile steps per movement order
	Speed        Speed
	Layout       Layout
	CursorOffset Point // subtracted from the cursor before projecting it onto the grid
	Geometry     StepGeometry
	HitChance    HitChance
}

func DefaultConfig() Config {
	return Config{
		Rows:         10,
		Cols:         6,
		Sizing:       SizingFixed,
		WindowWidth:  800,
		WindowHeight: 700,
		Decoration:   UniformDecoration,
		StepBudget:   20,
		Speed:        Medium,
		Layout:       DefaultLayout(),
		CursorOffset: DefaultLayout().CenterOffset(),
		Geometry:     DefaultStepGeometry(),
		HitChance:    DefaultHitChance()}
}

// MapSize returns the tile map dimensions: q runs over [0,rows) and r over [0,cols).
func (c Config) MapSize() (rows, cols int) {
	if c.Sizing == SizingFromWindow {
		// Odd columns reach half a row further down than even ones.
		const eps = 1e-9
		extent := c.Layout.TileExtent()
		columnStep := c.Layout.Size.X * c.Layout.Orientation.F0
		rows = int(math.Floor((float64(c.WindowWidth)-extent.X)/columnStep+eps)) + 1
		cols = int(math.Floor((float64(c.WindowHeight)-extent.Y/2)/extent.Y + eps))
		return
	}
	return c.Rows, c.Cols
}

func (c Config) Validate() error {
	if c.Layout.Size.X <= 0 || c.Layout.Size.Y <= 0 {
		return fmt.Errorf("tile size %v: %w", c.Layout.Size, ErrInvalidConfig)
	}
	rows, cols := c.MapSize()
	if err := checkMapSize(rows, cols); err != nil {
		return err
	}
	if c.StepBudget <= 0 {
		return fmt.Errorf("step budget %d: %w", c.StepBudget, ErrInvalidConfig)
	}
	if c.Speed < Fast || c.Speed > Slow {
		return fmt.Errorf("speed %d: %w", int(c.Speed), ErrInvalidConfig)
	}
	return nil
}

// ResolveSeed replaces a zero seed with one taken from the clock.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

func (c Config) GenConfig() GenConfig {
	rows, cols := c.MapSize()
	return GenConfig{
		Rows:       rows,
		Cols:       cols,
		Seed:       c.Seed,
		Decoration: c.Decoration}
}
