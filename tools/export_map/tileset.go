package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/pwiecz/hex_skirmish/lib"
	"golang.org/x/image/draw"
)

var (
	groundColor    = color.NRGBA{0x7a, 0x9a, 0x3c, 0xff}
	birchLeafColor = color.NRGBA{0xb5, 0xd6, 0x5a, 0xff}
	treeLeafColor  = color.NRGBA{0x2e, 0x5a, 0x1c, 0xff}
)

// hexMask is opaque exactly where pixels of a tile's rectangle project back onto the tile.
func hexMask(layout lib.Layout) *image.Alpha {
	layout.Origin = lib.Point{}
	origin := lib.NewAxial(0, 0)
	bounds := lib.TileRect(layout, origin)
	mask := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := lib.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}.Sub(layout.CenterOffset())
			if lib.PixelToTile(layout, p) == origin {
				mask.SetAlpha(x, y, color.Alpha{0xff})
			}
		}
	}
	return mask
}

func circleMask(bounds image.Rectangle, cx, cy, r float64) *image.Alpha {
	mask := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				mask.SetAlpha(x, y, color.Alpha{0xff})
			}
		}
	}
	return mask
}

// triangleMask is an upward pointing isosceles triangle.
func triangleMask(bounds image.Rectangle, cx, top, bottom, halfWidth float64) *image.Alpha {
	mask := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		fy := float64(y) + 0.5
		if fy < top || fy > bottom {
			continue
		}
		w := halfWidth * (fy - top) / (bottom - top)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if math.Abs(float64(x)+0.5-cx) <= w {
				mask.SetAlpha(x, y, color.Alpha{0xff})
			}
		}
	}
	return mask
}

// renderTileSet draws the ground, birch and tree tiles side by side, in gid order.
func renderTileSet(layout lib.Layout) *image.NRGBA {
	mask := hexMask(layout)
	tile := mask.Bounds()
	w, h := tile.Dx(), tile.Dy()
	cx, cy := float64(w)/2, float64(h)/2
	unit := float64(min(w, h)) / 100
	decorations := map[int]struct {
		mask  *image.Alpha
		color color.Color
	}{
		birchGID: {circleMask(tile, cx, cy-8*unit, 14*unit), birchLeafColor},
		treeGID:  {triangleMask(tile, cx, cy-28*unit, cy+14*unit, 17*unit), treeLeafColor},
	}

	tileSet := image.NewNRGBA(image.Rect(0, 0, tileCount*w, h))
	for gid := groundGID; gid <= tileCount; gid++ {
		r := image.Rect((gid-1)*w, 0, gid*w, h)
		draw.DrawMask(tileSet, r, image.NewUniform(groundColor), image.Point{}, mask, tile.Min, draw.Over)
		if d, ok := decorations[gid]; ok {
			draw.DrawMask(tileSet, r, image.NewUniform(d.color), image.Point{}, d.mask, tile.Min, draw.Over)
		}
	}
	return tileSet
}

// renderPreview composes the whole map from the tileset, scaled by the given factor.
func renderPreview(src exportSource, tileSet image.Image, scale float64) image.Image {
	layout := src.Layout
	layout.Origin = lib.Point{}
	var bounds image.Rectangle
	for tile := range src.Map.Tiles() {
		bounds = bounds.Union(lib.TileRect(layout, tile.Coord))
	}
	preview := image.NewNRGBA(bounds)
	w := tileSet.Bounds().Dx() / tileCount
	for _, tile := range src.Map.SortedTiles() {
		gid := gidFor(tile.Decoration)
		sr := image.Rect((gid-1)*w, 0, gid*w, tileSet.Bounds().Dy())
		r := lib.TileRect(layout, tile.Coord)
		draw.Draw(preview, r, tileSet, sr.Min, draw.Over)
	}
	if scale == 1 {
		return preview
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, int(float64(bounds.Dx())*scale), int(float64(bounds.Dy())*scale)))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), preview, preview.Bounds(), draw.Over, nil)
	return scaled
}

func SaveImageToFile(image image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create \"%s\" file (%w)", filename, err)
	}
	if err := png.Encode(f, image); err != nil {
		f.Close()
		return fmt.Errorf("error encoding image to \"%s\" (%w)", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing \"%s\" file (%w)", filename, err)
	}
	return nil
}
