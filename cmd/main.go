package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pwiecz/hex_skirmish/lib"
	"github.com/pwiecz/hex_skirmish/ui"
)

var errConflictingFlags = errors.New("conflicting flags")

type options struct {
	config     lib.Config
	cpuprofile string
	debug      bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	defaults := lib.DefaultConfig()
	fs := flag.NewFlagSet("hex_skirmish", flag.ContinueOnError)
	fs.SetOutput(output)
	cpuprofile := fs.String("cpuprofile", "", "write cpu profile to file")
	seed := fs.Int64("seed", 0, "if specified, use given seed to generate the map. Otherwise, a random seed will be used")
	rows := fs.Int("rows", defaults.Rows, "number of tile columns running across the window")
	cols := fs.Int("cols", defaults.Cols, "number of tiles in every column")
	sizeFromWindow := fs.Bool("size-from-window", false, "fill the whole window with tiles; cannot be combined with -rows and -cols")
	noise := fs.Bool("noise", false, "place decorations using simplex noise instead of uniform random values")
	speed := fs.Int("speed", int(defaults.Speed), "movement speed: 1 (fast), 2 (medium) or 3 (slow)")
	budget := fs.Int("budget", defaults.StepBudget, "maximum number of steps per movement order")
	debug := fs.Bool("debug", false, "enable debug logging and the TPS overlay")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := defaults
	cfg.Seed = *seed
	cfg.Rows, cfg.Cols = *rows, *cols
	if *sizeFromWindow {
		cfg.Sizing = lib.SizingFromWindow
		// Using Visit we can tell an explicit -rows or -cols from the default value.
		var conflict error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "rows" || f.Name == "cols" {
				conflict = fmt.Errorf("-%s with -size-from-window: %w", f.Name, errConflictingFlags)
			}
		})
		if conflict != nil {
			return options{}, conflict
		}
	}
	if *noise {
		cfg.Decoration = lib.NoiseDecoration
	}
	cfg.Speed = lib.Speed(*speed)
	cfg.StepBudget = *budget
	return options{config: cfg, cpuprofile: *cpuprofile, debug: *debug}, nil
}

func run(opts options, logger *log.Logger) error {
	if opts.cpuprofile != "" {
		f, err := os.Create(opts.cpuprofile)
		if err != nil {
			return fmt.Errorf("cannot create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("cannot start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	session, err := lib.NewSession(opts.config, logger)
	if err != nil {
		return fmt.Errorf("cannot start the game: %w", err)
	}
	logger.Info("starting", "seed", session.Config.Seed, "status", session.Status())

	ebiten.SetWindowSize(session.Config.WindowWidth, session.Config.WindowHeight)
	ebiten.SetWindowTitle("Hex Skirmish")
	game, err := ui.NewGame(session, logger, opts.debug)
	if err != nil {
		return fmt.Errorf("cannot create the game: %w", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hex_skirmish"})
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Error("invalid command line", "err", err)
		os.Exit(2)
	}
	if opts.debug {
		logger.SetLevel(log.DebugLevel)
	}
	if err := run(opts, logger); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
