package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pwiecz/hex_skirmish/lib"
)

type keyBinding struct {
	key     ebiten.Key
	command lib.Key
}

var keyBindings = []keyBinding{
	{ebiten.KeyTab, lib.KeyToggleMode},
	{ebiten.KeyEnter, lib.KeyToggleMode},
	{ebiten.KeySpace, lib.KeyFire},
	{ebiten.KeyBackspace, lib.KeyCancel},
	{ebiten.KeyEqual, lib.KeyFaster},
	{ebiten.KeyKPAdd, lib.KeyFaster},
	{ebiten.KeyMinus, lib.KeySlower},
	{ebiten.KeyKPSubtract, lib.KeySlower},
	{ebiten.KeyW, lib.KeyStepUp},
	{ebiten.KeyS, lib.KeyStepDown},
	{ebiten.KeyQ, lib.KeyStepUpLeft},
	{ebiten.KeyE, lib.KeyStepUpRight},
	{ebiten.KeyA, lib.KeyStepDownLeft},
	{ebiten.KeyD, lib.KeyStepDownRight},
}

// Keys handled by the front end itself.
const (
	keyQuit       = ebiten.KeyEscape
	keyFullscreen = ebiten.KeyF11
	keyCopyStatus = ebiten.KeyC
)

// commandsFor maps the keys pressed in this frame to session commands, in binding order.
// A command bound to several pressed keys is reported once.
func commandsFor(justPressed func(ebiten.Key) bool) []lib.Key {
	var commands []lib.Key
	seen := make(map[lib.Key]bool)
	for _, binding := range keyBindings {
		if seen[binding.command] || !justPressed(binding.key) {
			continue
		}
		seen[binding.command] = true
		commands = append(commands, binding.command)
	}
	return commands
}

// readInput samples the mouse and keyboard for one frame.
func readInput() lib.Input {
	x, y := ebiten.CursorPosition()
	return lib.Input{
		Cursor:  lib.Point{X: float64(x), Y: float64(y)},
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Keys:    commandsFor(inpututil.IsKeyJustPressed)}
}
