package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pwiecz/hex_skirmish/lib"
)

var seed = flag.Int64("seed", 0, "if specified, use given seed to generate the map. Otherwise, a random seed will be used")
var rows = flag.Int("rows", lib.DefaultConfig().Rows, "number of tile columns")
var cols = flag.Int("cols", lib.DefaultConfig().Cols, "number of tiles in every column")
var noise = flag.Bool("noise", false, "place decorations using simplex noise")
var out = flag.String("out", "hex_map", "prefix of the written files")
var previewScale = flag.Float64("preview-scale", 0, "if positive, also write a PNG preview of the map scaled by this factor")

func main() {
	flag.Parse()
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "export_map"})

	cfg := lib.DefaultConfig()
	cfg.Seed = *seed
	cfg.Rows, cfg.Cols = *rows, *cols
	if *noise {
		cfg.Decoration = lib.NoiseDecoration
	}
	session, err := lib.NewSession(cfg, logger)
	if err != nil {
		logger.Fatal("cannot generate the map", "err", err)
	}

	tileSetFilename := *out + "_tiles.png"
	src := exportSource{
		Map:        session.Map,
		Layout:     session.Layout(),
		Seed:       session.Config.Seed,
		Decoration: session.Config.Decoration,
		Actors:     []*lib.Actor{session.Player, session.Enemy},
		TileSet:    filepath.Base(tileSetFilename)}

	tileSet := renderTileSet(src.Layout)
	if err := SaveImageToFile(tileSet, tileSetFilename); err != nil {
		logger.Fatal("cannot save the tileset", "err", err)
	}
	mapFilename := *out + ".json"
	f, err := os.Create(mapFilename)
	if err != nil {
		logger.Fatal("cannot create the map file", "file", mapFilename, "err", err)
	}
	if err := writeTiledMap(f, newTiledMap(src)); err != nil {
		f.Close()
		logger.Fatal("cannot write the map", "file", mapFilename, "err", err)
	}
	if err := f.Close(); err != nil {
		logger.Fatal("cannot close the map file", "file", mapFilename, "err", err)
	}
	logger.Info("map exported", "map", mapFilename, "tileset", tileSetFilename, "seed", src.Seed)

	if *previewScale > 0 {
		previewFilename := *out + "_preview.png"
		if err := SaveImageToFile(renderPreview(src, tileSet, *previewScale), previewFilename); err != nil {
			logger.Fatal("cannot save the preview", "err", err)
		}
		logger.Info("preview written", "file", previewFilename)
	}
}

func writeTiledMap(w io.Writer, tiledMap TiledMap) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tiledMap)
}
