package main

import (
	"fmt"
	"math"

	"github.com/pwiecz/hex_skirmish/lib"
)

// Global tile ids of the exported tileset, 0 being an empty cell.
const (
	emptyGID  = 0
	groundGID = 1
	birchGID  = 2
	treeGID   = 3
	tileCount = 3
)

func gidFor(d lib.Decoration) int {
	switch d {
	case lib.Birch:
		return birchGID
	case lib.Tree:
		return treeGID
	}
	return groundGID
}

type exportSource struct {
	Map        *lib.TileMap
	Layout     lib.Layout
	Seed       int64
	Decoration lib.DecorationKind
	Actors     []*lib.Actor
	TileSet    string // tileset image file name
}

// mapBounds returns the number of offset columns and rows spanned by the tiles.
func mapBounds(m *lib.TileMap) (width, height int) {
	for tile := range m.Tiles() {
		pos := lib.OffsetOf(tile.Coord)
		width, height = max(width, pos.Col+1), max(height, pos.Row+1)
	}
	return
}

// newTiledMap describes the tile map as a Tiled hexagonal map staggered along x with odd
// columns shifted down, which is the odd-q layout.
func newTiledMap(src exportSource) TiledMap {
	width, height := mapBounds(src.Map)
	extent := src.Layout.TileExtent()
	tileWidth, tileHeight := int(math.Round(extent.X)), int(math.Round(extent.Y))
	columnStep := src.Layout.Size.X * src.Layout.Orientation.F0

	// Cells without a tile keep emptyGID.
	data := make([]int, width*height)
	for tile := range src.Map.Tiles() {
		pos := lib.OffsetOf(tile.Coord)
		data[pos.Row*width+pos.Col] = gidFor(tile.Decoration)
	}

	objects := make([]Object, 0, len(src.Actors))
	for _, actor := range src.Actors {
		center := lib.TileCenter(src.Layout, actor.Tile())
		objects = append(objects, Object{
			ID:      len(objects) + 1,
			Name:    actor.Name,
			Type:    "actor",
			X:       center.X - src.Layout.Origin.X,
			Y:       center.Y - src.Layout.Origin.Y,
			Point:   true,
			Visible: true})
	}

	return TiledMap{
		Height:        height,
		Width:         width,
		Orientation:   Hexagonal,
		RenderOrder:   RightDown,
		StaggerAxis:   X,
		StaggerIndex:  Odd,
		HexSideLength: int(math.Round(2*columnStep)) - tileWidth,
		TileWidth:     tileWidth,
		TileHeight:    tileHeight,
		Type:          "map",
		NextLayerID:   3,
		NextObjectID:  len(objects) + 1,
		Layers: []Layer{
			{
				ID:      1,
				Name:    "Tiles",
				Type:    TileLayer,
				Width:   width,
				Height:  height,
				Data:    data,
				Opacity: 1,
				Visible: true},
			{
				ID:      2,
				Name:    "Actors",
				Type:    ObjectGroup,
				Objects: objects,
				Opacity: 1,
				Visible: true}},
		TileSets: []TileSet{{
			Columns:     tileCount,
			FirstGID:    groundGID,
			Name:        "hex_skirmish",
			TileCount:   tileCount,
			TileWidth:   tileWidth,
			TileHeight:  tileHeight,
			Image:       src.TileSet,
			ImageWidth:  tileCount * tileWidth,
			ImageHeight: tileHeight}},
		Properties: []Property{
			{Name: "seed", Type: "string", Value: fmt.Sprint(src.Seed)},
			{Name: "decoration", Type: "string", Value: src.Decoration.String()},
			{Name: "tiles", Type: "int", Value: src.Map.Len()}}}
}
