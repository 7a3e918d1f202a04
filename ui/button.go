package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pwiecz/hex_skirmish/lib"
)

type Button struct {
	label           *Label
	rect            image.Rectangle
	pressedTouchIDs []ebiten.TouchID // store it here to avoid reallocating it for each Update
}

func NewButton(str string, rect image.Rectangle, face *text.GoTextFace) *Button {
	center := lib.Point{X: float64(rect.Min.X+rect.Max.X) / 2, Y: float64(rect.Min.Y+rect.Max.Y) / 2}
	label := NewLabel(str, center.X, center.Y-face.Size*0.6, face)
	label.SetAlign(text.AlignCenter)
	return &Button{
		label: label,
		rect:  rect}
}

// Hit reports whether the point lies within the button.
func (b *Button) Hit(p lib.Point) bool {
	return image.Pt(int(p.X), int(p.Y)).In(b.rect)
}

func (b *Button) Draw(dst *ebiten.Image) {
	x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
	w, h := float32(b.rect.Dx()), float32(b.rect.Dy())
	vector.FillRect(dst, x, y, w, h, panelColor, false)
	vector.StrokeRect(dst, x, y, w, h, 2, highlightColor, false)
	b.label.Draw(dst)
}

// Update reports whether the button was clicked or touched in this frame.
func (b *Button) Update(in lib.Input) bool {
	if in.Clicked && b.Hit(in.Cursor) {
		return true
	}
	b.pressedTouchIDs = b.pressedTouchIDs[:0]
	for _, touchID := range inpututil.AppendJustPressedTouchIDs(b.pressedTouchIDs) {
		x, y := ebiten.TouchPosition(touchID)
		if image.Pt(x, y).In(b.rect) {
			return true
		}
	}
	return false
}
