package main

import (
	"flag"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pwiecz/hex_skirmish/lib"
)

var seed = flag.Int64("seed", 0, "if specified, use given seed to generate the map. Otherwise, a random seed will be used")
var rows = flag.Int("rows", lib.DefaultConfig().Rows, "number of tile columns")
var cols = flag.Int("cols", lib.DefaultConfig().Cols, "number of tiles in every column")
var noise = flag.Bool("noise", false, "place decorations using simplex noise")
var logFile = flag.String("log", "", "write log to the given file")

func main() {
	flag.Parse()
	// The terminal belongs to the viewer, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal("cannot create log file", "file", *logFile, "err", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "term_view"})

	cfg := lib.DefaultConfig()
	cfg.Seed = *seed
	cfg.Rows, cfg.Cols = *rows, *cols
	if *noise {
		cfg.Decoration = lib.NoiseDecoration
	}
	session, err := lib.NewSession(cfg, logger)
	if err != nil {
		log.Fatal("cannot start the game", "err", err)
	}
	if _, err := tea.NewProgram(newModel(session), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal("viewer stopped", "err", err)
	}
	logger.Info("bye", "status", session.Status())
}
