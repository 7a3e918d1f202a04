package lib

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrInvalidMapSize = errors.New("map dimensions must be positive")

// GenConfig holds tile map generation parameters.
type GenConfig struct {
	Rows, Cols int // q runs over [0,Rows), r over [0,Cols)
	Seed       int64
	Decoration DecorationKind
}

func DefaultGenConfig() GenConfig {
	return GenConfig{
		Rows:       10,
		Cols:       6,
		Seed:       1,
		Decoration: UniformDecoration}
}

// Generate builds a tile map with decorations drawn from a source seeded with cfg.Seed.
func Generate(cfg GenConfig) (*TileMap, error) {
	if err := checkMapSize(cfg.Rows, cfg.Cols); err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))
	return GenerateWith(cfg.Rows, cfg.Cols, NewDecorationSource(cfg.Decoration, rnd))
}

func GenerateWith(rows, cols int, source DecorationSource) (*TileMap, error) {
	if err := checkMapSize(rows, cols); err != nil {
		return nil, err
	}
	m := NewTileMap(rows * cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			coord := NewCube(i, j, -i-j)
			tile := Tile{Coord: coord, Decoration: DecorationFor(source.Sample(coord))}
			if err := m.Insert(tile); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func checkMapSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidMapSize)
	}
	return nil
}
