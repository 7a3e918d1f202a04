package ui

import (
	"image/color"

	"github.com/pwiecz/hex_skirmish/lib"
)

var (
	backgroundColor = color.RGBA{0x1d, 0x23, 0x1a, 0xff}
	groundColor     = color.RGBA{0x7a, 0x9a, 0x3c, 0xff}
	gridColor       = color.RGBA{0x4f, 0x66, 0x26, 0xff}
	highlightColor  = color.RGBA{0xf4, 0xd3, 0x5e, 0xff}
	targetColor     = color.RGBA{0xe0, 0x4f, 0x3a, 0xff}
	birchBarkColor  = color.RGBA{0xee, 0xee, 0xe4, 0xff}
	birchLeafColor  = color.RGBA{0xb5, 0xd6, 0x5a, 0xff}
	treeTrunkColor  = color.RGBA{0x6b, 0x44, 0x23, 0xff}
	treeLeafColor   = color.RGBA{0x2e, 0x5a, 0x1c, 0xff}
	playerColor     = color.RGBA{0x3a, 0x6e, 0xd8, 0xff}
	enemyColor      = color.RGBA{0xc8, 0x32, 0x32, 0xff}
	tokenRimColor   = color.RGBA{0xf8, 0xf8, 0xf8, 0xff}
	textColor       = color.RGBA{0xf0, 0xf0, 0xe8, 0xff}
	panelColor      = color.RGBA{0x10, 0x12, 0x0e, 0xc0}
)

// bannerColor is the color of the combat banner in the given mode.
func bannerColor(mode lib.Mode) color.Color {
	switch mode {
	case lib.CombatHit:
		return birchLeafColor
	case lib.CombatMiss:
		return targetColor
	}
	return textColor
}
