package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pwiecz/hex_skirmish/lib"
)

const tickInterval = time.Second / 60

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model drives a lib.Session from the terminal. Input collected between ticks is
// handed to the session on the next tick, like the ebiten front end does once per frame.
type model struct {
	session    *lib.Session
	cursor     lib.OffsetCoords
	pending    []lib.Key
	clicked    bool
	lastEvents []lib.Event
	help       help.Model
}

func newModel(session *lib.Session) model {
	return model{
		session: session,
		cursor:  session.Player.Pos,
		help:    help.New()}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) moveCursor(d lib.OffsetCoords) model {
	next := lib.OffsetCoords{Row: m.cursor.Row + d.Row, Col: m.cursor.Col + d.Col}
	if m.session.Map.Contains(next.Key()) {
		m.cursor = next
	}
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.CursorUp):
			m = m.moveCursor(lib.OffsetCoords{Row: -1})
		case key.Matches(msg, keys.CursorDown):
			m = m.moveCursor(lib.OffsetCoords{Row: 1})
		case key.Matches(msg, keys.CursorLeft):
			m = m.moveCursor(lib.OffsetCoords{Col: -1})
		case key.Matches(msg, keys.CursorRight):
			m = m.moveCursor(lib.OffsetCoords{Col: 1})
		case key.Matches(msg, keys.MoveTo):
			m.clicked = true
		}
		for _, k := range sessionKeys {
			if key.Matches(msg, *k.binding) {
				m.pending = append(m.pending, k.command)
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		in := lib.Input{Keys: m.pending, Clicked: m.clicked}
		if m.clicked {
			in.Cursor = lib.TileCenter(m.session.Layout(), m.cursor.Key())
		}
		if events := m.session.Update(in); len(events) > 0 {
			m.lastEvents = slices.Clone(events)
		}
		m.pending = nil
		m.clicked = false
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	var body string
	if m.session.Mode.Scene().ShowMap {
		body = renderMap(m.session, m.cursor)
	} else {
		body = renderCombat(m.session)
	}
	events := make([]string, len(m.lastEvents))
	for i, e := range m.lastEvents {
		events[i] = e.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("HEX SKIRMISH  %v", m.session.Mode)),
		body,
		statusStyle.Render(m.session.Status()),
		statusStyle.Render("cursor "+m.cursor.String()+"  last: "+strings.Join(events, " ")),
		m.help.View(keys))
}
