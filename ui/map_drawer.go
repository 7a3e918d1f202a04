package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pwiecz/hex_skirmish/lib"
)

// MapDrawer keeps the static part of the map (ground and decorations) pre-rendered,
// as the tile map never changes after generation.
type MapDrawer struct {
	sprites *Sprites
	image   *ebiten.Image
	isDirty bool
}

func NewMapDrawer(width, height int, sprites *Sprites) *MapDrawer {
	return &MapDrawer{
		sprites: sprites,
		image:   ebiten.NewImage(width, height),
		isDirty: true}
}

func isStatic(r lib.DrawRequest) bool {
	return r.Layer <= lib.LayerDecoration
}

// Draw renders the static requests if needed and returns the map image.
func (d *MapDrawer) Draw(requests []lib.DrawRequest) *ebiten.Image {
	if d.isDirty {
		d.image.Clear()
		for _, r := range requests {
			if isStatic(r) {
				d.drawRequest(r)
			}
		}
		d.isDirty = false
	}
	return d.image
}

func (d *MapDrawer) drawRequest(r lib.DrawRequest) {
	drawSprite(d.image, d.sprites.Get(r.Sprite), float64(r.Rect.Min.X), float64(r.Rect.Min.Y), r.Rect.Dx(), r.Rect.Dy())
}
