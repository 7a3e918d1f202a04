package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pwiecz/hex_skirmish/lib"
)

var (
	mapStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	combatStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 4)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	groundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("64"))
	birchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	treeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	enemyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	hitStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	missStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Each tile takes cellWidth characters; odd columns are shifted half a tile (one line) down.
const cellWidth = 4

// glyph returns the unstyled symbol of a tile and the style to draw it with.
func glyph(s *lib.Session, tile lib.Tile) (string, lipgloss.Style) {
	switch {
	case tile.Coord == s.Player.Tile():
		return "@", playerStyle
	case tile.Coord == s.Enemy.Tile():
		return "E", enemyStyle
	}
	if target, ok := s.TargetTile(); ok && target == tile.Coord {
		return "x", targetStyle
	}
	switch tile.Decoration {
	case lib.Birch:
		return "b", birchStyle
	case lib.Tree:
		return "T", treeStyle
	}
	return ".", groundStyle
}

// renderMap draws the tile map as staggered text columns.
func renderMap(s *lib.Session, cursor lib.OffsetCoords) string {
	maxRow, maxCol := 0, 0
	tiles := s.Map.SortedTiles()
	for _, tile := range tiles {
		pos := lib.OffsetOf(tile.Coord)
		maxRow, maxCol = max(maxRow, pos.Row), max(maxCol, pos.Col)
	}
	lines := make([][]string, 2*maxRow+2)
	for i := range lines {
		lines[i] = make([]string, maxCol+1)
	}
	for _, tile := range tiles {
		pos := lib.OffsetOf(tile.Coord)
		symbol, style := glyph(s, tile)
		if pos == cursor {
			style = style.Inherit(cursorStyle)
		}
		lines[2*pos.Row+lib.Parity(pos.Col)][pos.Col] = style.Render(" " + symbol + " ")
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range line {
			if cell == "" {
				cell = strings.Repeat(" ", cellWidth-1)
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
	}
	return mapStyle.Render(b.String())
}

// renderCombat draws the combat panel of the current mode.
func renderCombat(s *lib.Session) string {
	scene := s.Mode.Scene()
	banner := titleStyle.Render(scene.Banner)
	switch s.Mode {
	case lib.CombatHit:
		banner = hitStyle.Render(scene.Banner)
	case lib.CombatMiss:
		banner = missStyle.Render(scene.Banner)
	}
	shooter, target := " ", " "
	if scene.ShowShooter {
		shooter = playerStyle.Render("@")
	}
	if scene.ShowTarget {
		target = enemyStyle.Render("E")
	}
	distance := lib.TileDistance(s.Player.Tile(), s.Enemy.Tile())
	body := lipgloss.JoinVertical(lipgloss.Center,
		banner,
		"",
		shooter+strings.Repeat(" ", 2*distance+4)+target,
		"",
		statusStyle.Render(fmt.Sprintf("distance %d, hit chance %.0f%%", distance, s.HitChance()*100)))
	return combatStyle.Render(body)
}
