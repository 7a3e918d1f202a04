package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pwiecz/hex_skirmish/lib"
)

// CombatScreen shows the shooter and the target side by side in the combat modes.
type CombatScreen struct {
	session *lib.Session
	sprites *Sprites
	banner  *Label
	chance  *Label
	hint    *Label
	fire    *Button
	back    *Button
}

func NewCombatScreen(session *lib.Session, sprites *Sprites, fonts *Fonts) *CombatScreen {
	w, h := float64(session.Config.WindowWidth), float64(session.Config.WindowHeight)
	buttonX, buttonY := int(w/2)-80, int(h*3/4)
	s := &CombatScreen{
		session: session,
		sprites: sprites,
		banner:  NewLabel("", w/2, h/6, fonts.Bold(32)),
		chance:  NewLabel("", w/2, h/6+48, fonts.Regular(18)),
		hint:    NewLabel("TAB TO RETURN TO THE MAP", w/2, h-32, fonts.Regular(14)),
		fire:    NewButton("FIRE", image.Rect(buttonX, buttonY, buttonX+160, buttonY+40), fonts.Bold(18)),
		back:    NewButton("BACK TO MAP", image.Rect(buttonX, buttonY+52, buttonX+160, buttonY+92), fonts.Regular(16))}
	for _, label := range []*Label{s.banner, s.chance, s.hint} {
		label.SetAlign(text.AlignCenter)
	}
	return s
}

// Commands turns clicks on the screen's buttons into session commands.
func (s *CombatScreen) Commands(in lib.Input) []lib.Key {
	var commands []lib.Key
	if s.session.Mode == lib.CombatPreshot && s.fire.Update(in) {
		commands = append(commands, lib.KeyFire)
	}
	if s.back.Update(in) {
		commands = append(commands, lib.KeyToggleMode)
	}
	return commands
}

func (s *CombatScreen) Update() error {
	mode := s.session.Mode
	s.banner.SetText(mode.Scene().Banner)
	s.banner.SetTextColor(bannerColor(mode))
	s.chance.SetText(fmt.Sprintf("DISTANCE %d  HIT CHANCE %.0f%%",
		lib.TileDistance(s.session.Player.Tile(), s.session.Enemy.Tile()),
		s.session.HitChance()*100))
	return nil
}

func (s *CombatScreen) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := float32(s.session.Config.WindowWidth), float32(s.session.Config.WindowHeight)
	vector.FillRect(screen, 0, h/2, w, h/2, gridColor, false)
	for _, r := range s.session.DrawList(lib.Point{}) {
		drawSprite(screen, s.sprites.Get(r.Sprite), float64(r.Rect.Min.X), float64(r.Rect.Min.Y), r.Rect.Dx(), r.Rect.Dy())
	}
	s.banner.Draw(screen)
	s.chance.Draw(screen)
	s.hint.Draw(screen)
	if s.session.Mode == lib.CombatPreshot {
		s.fire.Draw(screen)
	}
	s.back.Draw(screen)
}
