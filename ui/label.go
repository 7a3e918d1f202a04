package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("cannot load regular font (%w)", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("cannot load bold font (%w)", err)
	}
	return &Fonts{regular: regular, bold: bold}, nil
}

func (f *Fonts) Regular(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.regular, Size: size}
}
func (f *Fonts) Bold(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.bold, Size: size}
}

type Label struct {
	x, y                       float64
	face                       *text.GoTextFace
	text                       string
	align                      text.Align
	textColor, backgroundColor color.Color
}

func NewLabel(str string, x, y float64, face *text.GoTextFace) *Label {
	return &Label{
		x:         x,
		y:         y,
		face:      face,
		text:      str,
		align:     text.AlignStart,
		textColor: textColor}
}

func (l *Label) SetText(str string) {
	l.text = str
}
func (l *Label) Text() string {
	return l.text
}
func (l *Label) SetTextColor(clr color.Color) {
	l.textColor = clr
}

// SetBackgroundColor fills the text's bounding box before drawing. nil disables the fill.
func (l *Label) SetBackgroundColor(clr color.Color) {
	l.backgroundColor = clr
}

// SetAlign selects how the text is aligned horizontally relative to x.
func (l *Label) SetAlign(align text.Align) {
	l.align = align
}

func (l *Label) lineSpacing() float64 {
	return l.face.Size * 1.25
}

func (l *Label) Draw(screen *ebiten.Image) {
	if l.text == "" {
		return
	}
	if l.backgroundColor != nil {
		w, h := text.Measure(l.text, l.face, l.lineSpacing())
		x := l.x
		switch l.align {
		case text.AlignCenter:
			x -= w / 2
		case text.AlignEnd:
			x -= w
		}
		const padding = 4
		vector.FillRect(screen, float32(x-padding), float32(l.y-padding), float32(w+2*padding), float32(h+2*padding), l.backgroundColor, false)
	}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(l.x, l.y)
	opts.ColorScale.ScaleWithColor(l.textColor)
	opts.PrimaryAlign = l.align
	opts.LineSpacing = l.lineSpacing()
	text.Draw(screen, l.text, l.face, opts)
}
