package lib

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

var ErrDuplicateTile = errors.New("tile already present")

type Tile struct {
	Coord      CubeCoordinate
	Decoration Decoration
}

// TileMap is a sparse set of tiles keyed by their coordinates.
// It is written once during generation and may be read concurrently afterwards.
type TileMap struct {
	tiles map[CubeCoordinate]Tile
}

func NewTileMap(capacity int) *TileMap {
	return &TileMap{tiles: make(map[CubeCoordinate]Tile, capacity)}
}

// Insert adds a tile. A second tile with the same coordinate is rejected.
func (m *TileMap) Insert(tile Tile) error {
	if _, ok := m.tiles[tile.Coord]; ok {
		return fmt.Errorf("%v: %w", tile.Coord, ErrDuplicateTile)
	}
	m.tiles[tile.Coord] = tile
	return nil
}

func (m *TileMap) Get(c CubeCoordinate) (Tile, bool) {
	tile, ok := m.tiles[c]
	return tile, ok
}

func (m *TileMap) Contains(c CubeCoordinate) bool {
	_, ok := m.tiles[c]
	return ok
}

func (m *TileMap) Len() int {
	return len(m.tiles)
}

// Tiles iterates over all tiles in unspecified order. The sequence can be ranged over repeatedly.
func (m *TileMap) Tiles() iter.Seq[Tile] {
	return maps.Values(m.tiles)
}

// SortedTiles returns the tiles ordered by r, then q.
func (m *TileMap) SortedTiles() []Tile {
	tiles := slices.Collect(m.Tiles())
	slices.SortFunc(tiles, func(a, b Tile) int {
		if a.Coord.r != b.Coord.r {
			return a.Coord.r - b.Coord.r
		}
		return a.Coord.q - b.Coord.q
	})
	return tiles
}

func (m *TileMap) DecorationCounts() map[Decoration]int {
	counts := make(map[Decoration]int)
	for tile := range m.Tiles() {
		counts[tile.Decoration]++
	}
	return counts
}

func (m *TileMap) String() string {
	counts := m.DecorationCounts()
	return fmt.Sprintf("TileMap(tiles=%d, birch=%d, tree=%d)", m.Len(), counts[Birch], counts[Tree])
}

// HighlightedTile returns the tile under the cursor, if there is one.
// offset is the tile anchor to tile center vector (see Layout.CenterOffset).
func HighlightedTile(m *TileMap, l Layout, cursor, offset Point) (CubeCoordinate, bool) {
	c := PixelToTile(l, cursor.Sub(offset))
	if !m.Contains(c) {
		return CubeCoordinate{}, false
	}
	return c, true
}
