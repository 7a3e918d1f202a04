package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pwiecz/hex_skirmish/lib"
)

// Sprites generates and caches one image per lib.Sprite, all of the size of a single tile.
type Sprites struct {
	width   int
	height  int
	corners [6]lib.Point
	center  lib.Point
	images  [lib.SpriteCount]*ebiten.Image
}

func NewSprites(layout lib.Layout) *Sprites {
	// Sprites are drawn relative to the tile's own rectangle.
	layout.Origin = lib.Point{}
	origin := lib.NewAxial(0, 0)
	extent := layout.TileExtent()
	return &Sprites{
		width:   int(math.Round(extent.X)),
		height:  int(math.Round(extent.Y)),
		corners: lib.HexCorners(layout, origin),
		center:  lib.TileCenter(layout, origin)}
}

func (s *Sprites) Get(sprite lib.Sprite) *ebiten.Image {
	img := s.images[sprite]
	if img == nil {
		img = ebiten.NewImage(s.width, s.height)
		s.draw(sprite, img)
		s.images[sprite] = img
	}
	return img
}

func (s *Sprites) draw(sprite lib.Sprite, img *ebiten.Image) {
	cx, cy := float32(s.center.X), float32(s.center.Y)
	// Decorations and tokens scale with the smaller tile dimension.
	unit := float32(min(s.width, s.height)) / 100
	switch sprite {
	case lib.SpriteGround:
		fillPath(img, s.hexPath(), groundColor)
		strokePath(img, s.hexPath(), 1.5, gridColor)
	case lib.SpriteBirch:
		vector.StrokeLine(img, cx, cy+22*unit, cx, cy-8*unit, 4*unit, birchBarkColor, true)
		vector.FillCircle(img, cx, cy-14*unit, 13*unit, birchLeafColor, true)
		vector.StrokeLine(img, cx-2*unit, cy+8*unit, cx+2*unit, cy+8*unit, 1, gridColor, true)
	case lib.SpriteTree:
		vector.FillRect(img, cx-3*unit, cy+10*unit, 6*unit, 14*unit, treeTrunkColor, true)
		var path vector.Path
		path.MoveTo(cx, cy-28*unit)
		path.LineTo(cx+17*unit, cy+12*unit)
		path.LineTo(cx-17*unit, cy+12*unit)
		path.Close()
		fillPath(img, &path, treeLeafColor)
	case lib.SpriteHighlight:
		strokePath(img, s.hexPath(), 3, highlightColor)
	case lib.SpriteTarget:
		vector.StrokeCircle(img, cx, cy, 14*unit, 2, targetColor, true)
		vector.StrokeLine(img, cx-20*unit, cy, cx+20*unit, cy, 2, targetColor, true)
		vector.StrokeLine(img, cx, cy-20*unit, cx, cy+20*unit, 2, targetColor, true)
	case lib.SpritePlayer:
		drawToken(img, cx, cy, 18*unit, playerColor)
	case lib.SpriteEnemy:
		drawToken(img, cx, cy, 18*unit, enemyColor)
	default:
		panic(fmt.Errorf("Unknown sprite: %d", int(sprite)))
	}
}

func (s *Sprites) hexPath() *vector.Path {
	var path vector.Path
	path.MoveTo(float32(s.corners[0].X), float32(s.corners[0].Y))
	for _, corner := range s.corners[1:] {
		path.LineTo(float32(corner.X), float32(corner.Y))
	}
	path.Close()
	return &path
}

func drawToken(img *ebiten.Image, cx, cy, radius float32, clr color.Color) {
	vector.FillCircle(img, cx, cy, radius, clr, true)
	vector.StrokeCircle(img, cx, cy, radius, 2.5, tokenRimColor, true)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, path, &vector.FillOptions{}, opts)
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(dst, path, &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}, opts)
}

// drawSprite draws the sprite scaled into the rectangle's bounds.
func drawSprite(dst *ebiten.Image, img *ebiten.Image, x, y float64, w, h int) {
	bounds := img.Bounds()
	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(float64(w)/float64(bounds.Dx()), float64(h)/float64(bounds.Dy()))
	opts.GeoM.Translate(x, y)
	opts.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &opts)
}
