package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pwiecz/hex_skirmish/lib"
)

// MapView is the screen shown in lib.MapMode.
type MapView struct {
	session   *lib.Session
	sprites   *Sprites
	mapDrawer *MapDrawer
	player    *tokenTracker
	cursor    lib.Point
	status    *Label
	hint      *Label
}

func NewMapView(session *lib.Session, sprites *Sprites, fonts *Fonts) *MapView {
	cfg := session.Config
	v := &MapView{
		session:   session,
		sprites:   sprites,
		mapDrawer: NewMapDrawer(cfg.WindowWidth, cfg.WindowHeight, sprites),
		player:    newTokenTracker(session.Player.Pixel),
		status:    NewLabel("", 8, float64(cfg.WindowHeight)-24, fonts.Regular(14)),
		hint:      NewLabel("CLICK A TILE TO MOVE, TAB FOR COMBAT", float64(cfg.WindowWidth)-8, 8, fonts.Regular(14))}
	v.status.SetBackgroundColor(panelColor)
	v.hint.SetBackgroundColor(panelColor)
	v.hint.SetAlign(text.AlignEnd)
	return v
}

func (v *MapView) SetCursor(cursor lib.Point) {
	v.cursor = cursor
}

func (v *MapView) Update() error {
	v.player.Update(v.session.Player.Pixel, v.session.Config.Speed.TicksPerStep())
	text := fmt.Sprintf("%v  SPEED %v", v.session.Player.Pos, v.session.Config.Speed)
	if tile, ok := v.session.Highlighted(v.cursor); ok {
		text += fmt.Sprintf("  CURSOR %v", tile)
	}
	if v.session.Player.Moving() {
		text += fmt.Sprintf("  STEPS LEFT %d", v.session.Player.StepsLeft())
	}
	v.status.SetText(text)
	return nil
}

func (v *MapView) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	requests := v.session.DrawList(v.cursor)
	screen.DrawImage(v.mapDrawer.Draw(requests), nil)
	for _, r := range requests {
		if isStatic(r) {
			continue
		}
		x, y := float64(r.Rect.Min.X), float64(r.Rect.Min.Y)
		if r.Sprite == lib.SpritePlayer {
			shown := v.player.Shown()
			x, y = math.Round(shown.X), math.Round(shown.Y)
		}
		drawSprite(screen, v.sprites.Get(r.Sprite), x, y, r.Rect.Dx(), r.Rect.Dy())
	}
	v.status.Draw(screen)
	v.hint.Draw(screen)
}
