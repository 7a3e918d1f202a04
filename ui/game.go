package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pwiecz/hex_skirmish/lib"
)

type SubGame interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// commandSource is implemented by screens whose own widgets issue session commands.
type commandSource interface {
	Commands(in lib.Input) []lib.Key
}

type Game struct {
	session      *lib.Session
	logger       *log.Logger
	debug        bool
	subGame      SubGame
	mapView      *MapView
	combatScreen *CombatScreen

	otoContext  *oto.Context
	audioPlayer *AudioPlayer
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(session *lib.Session, logger *log.Logger, debug bool) (*Game, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	sprites := NewSprites(session.Layout())
	game := &Game{
		session:      session,
		logger:       logger,
		debug:        debug,
		mapView:      NewMapView(session, sprites, fonts),
		combatScreen: NewCombatScreen(session, sprites, fonts)}
	game.onModeChanged()
	return game, nil
}

func (g *Game) onModeChanged() {
	if g.session.Mode.Scene().ShowMap {
		g.subGame = g.mapView
	} else {
		g.subGame = g.combatScreen
	}
}

func (g *Game) initAudio() {
	opts := &oto.NewContextOptions{}
	opts.SampleRate = 44100
	opts.ChannelCount = 2
	opts.Format = oto.FormatUnsignedInt8
	context, ready, err := oto.NewContext(opts)
	if err != nil {
		g.logger.Warn("cannot create Oto context", "err", err)
		g.audioPlayer = NewAudioPlayer(nil)
		return
	}
	<-ready
	g.otoContext = context
	g.audioPlayer = NewAudioPlayer(g.otoContext)
}

// handleFrontEndKeys handles keys that don't reach the session.
func (g *Game) handleFrontEndKeys() {
	if inpututil.IsKeyJustPressed(keyFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(keyCopyStatus) {
		status := g.session.Status()
		if err := clipboard.WriteAll(status); err != nil {
			g.logger.Warn("cannot copy status to clipboard", "err", err)
		} else {
			g.logger.Info("status copied to clipboard", "status", status)
		}
	}
}

func (g *Game) Update() error {
	if g.audioPlayer == nil {
		g.initAudio()
	}
	g.handleFrontEndKeys()
	in := readInput()
	// Escape stops the player first and quits only when there is nothing to stop.
	if inpututil.IsKeyJustPressed(keyQuit) {
		if !g.session.Player.Moving() {
			g.audioPlayer.Close()
			return ebiten.Termination
		}
		in.Keys = append(in.Keys, lib.KeyCancel)
	}
	if source, ok := g.subGame.(commandSource); ok {
		in.Keys = append(in.Keys, source.Commands(in)...)
	}
	g.mapView.SetCursor(in.Cursor)
	mode := g.session.Mode
	events := g.session.Update(in)
	g.audioPlayer.Update()
	g.audioPlayer.PlayEvents(events)
	if g.session.Mode != mode {
		g.onModeChanged()
	}
	if g.subGame != nil {
		return g.subGame.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.subGame != nil {
		g.subGame.Draw(screen)
	} else {
		screen.Fill(backgroundColor)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f FPS %.0f tick %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.session.Tick()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.session.Config.WindowWidth, g.session.Config.WindowHeight
}
