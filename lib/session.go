package lib

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Key is one of the few keyboard commands the game understands.
type Key int

const (
	KeyToggleMode Key = iota
	KeyFire
	KeyCancel
	KeyFaster
	KeySlower
	KeyStepUp
	KeyStepDown
	KeyStepUpLeft
	KeyStepUpRight
	KeyStepDownLeft
	KeyStepDownRight
)

var stepKeys = map[Key]Direction{
	KeyStepUp:        Up,
	KeyStepDown:      Down,
	KeyStepUpLeft:    UpLeft,
	KeyStepUpRight:   UpRight,
	KeyStepDownLeft:  DownLeft,
	KeyStepDownRight: DownRight,
}

// Input is everything the session needs to know about one frame of user input.
type Input struct {
	Cursor  Point
	Clicked bool
	Keys    []Key
}

// Event reports something that happened during an update, e.g. for playing sounds.
type Event int

const (
	EventStepped Event = iota
	EventArrived
	EventExhausted
	EventBlocked
	EventModeChanged
	EventShotHit
	EventShotMiss
)

func (e Event) String() string {
	switch e {
	case EventStepped:
		return "STEPPED"
	case EventArrived:
		return "ARRIVED"
	case EventExhausted:
		return "EXHAUSTED"
	case EventBlocked:
		return "BLOCKED"
	case EventModeChanged:
		return "MODE-CHANGED"
	case EventShotHit:
		return "SHOT-HIT"
	case EventShotMiss:
		return "SHOT-MISS"
	}
	panic(fmt.Errorf("Unknown event: %d", int(e)))
}

// Session holds the whole state of a running game. The front end owns it and
// calls Update once per frame.
type Session struct {
	Config Config
	Map    *TileMap
	Player *Actor
	Enemy  *Actor
	Mode   Mode

	stepper     Stepper
	rnd         *rand.Rand
	logger      *log.Logger
	tick        int
	ticksToStep int
	targetTile  CubeCoordinate
	lastRoll    float64
	events      []Event
}

func NewSession(cfg Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	cfg.ResolveSeed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tileMap, err := Generate(cfg.GenConfig())
	if err != nil {
		return nil, err
	}
	counts := tileMap.DecorationCounts()
	logger.Info("tile map generated",
		"seed", cfg.Seed,
		"tiles", tileMap.Len(),
		"decoration", cfg.Decoration,
		"birch", counts[Birch],
		"tree", counts[Tree])

	rows, cols := cfg.MapSize()
	s := &Session{
		Config:  cfg,
		Map:     tileMap,
		Player:  NewActor("player", OffsetCoords{Row: 0, Col: 0}, cfg.Layout),
		Enemy:   NewActor("enemy", OffsetCoords{Row: cols - 1, Col: rows - 1}, cfg.Layout),
		Mode:    MapMode,
		stepper: Stepper{Geometry: cfg.Geometry, Map: tileMap},
		rnd:     rand.New(rand.NewSource(cfg.Seed + 1)),
		logger:  logger}
	return s, nil
}

func (s *Session) Layout() Layout {
	return s.Config.Layout
}

func (s *Session) Tick() int {
	return s.tick
}

// Highlighted returns the tile under the cursor.
func (s *Session) Highlighted(cursor Point) (CubeCoordinate, bool) {
	return HighlightedTile(s.Map, s.Config.Layout, cursor, s.Config.CursorOffset)
}

// TargetTile is the destination of the player's current movement.
func (s *Session) TargetTile() (CubeCoordinate, bool) {
	return s.targetTile, s.Player.Moving()
}

// HitChance is the chance of the player hitting the enemy from where they stand now.
func (s *Session) HitChance() float64 {
	return s.Config.HitChance.At(TileDistance(s.Player.Tile(), s.Enemy.Tile()))
}

// Update processes one frame: input first, then at most one movement step.
// A click only orders movement if the frame started on the map, so a click that
// switched the mode is not also taken as a move order.
// The returned events are valid until the next call.
func (s *Session) Update(in Input) []Event {
	s.events = s.events[:0]
	startMode := s.Mode
	for _, key := range in.Keys {
		s.handleKey(key)
	}
	if in.Clicked && startMode == MapMode {
		s.handleClick(in.Cursor)
	}
	s.tick++
	s.advance()
	return s.events
}

// MoveTo orders the player to walk towards the given tile.
func (s *Session) MoveTo(tile CubeCoordinate) {
	target := s.Config.Geometry.Target(s.Config.Layout, tile)
	s.Player.SetTarget(target, s.Config.StepBudget)
	s.targetTile = tile
	s.ticksToStep = 0
	s.logger.Debug("movement ordered", "from", s.Player.Tile(), "to", tile, "budget", s.Config.StepBudget)
}

func (s *Session) handleClick(cursor Point) {
	if s.Mode != MapMode {
		return
	}
	tile, ok := s.Highlighted(cursor)
	if !ok {
		s.logger.Debug("click outside of the map", "cursor", cursor)
		return
	}
	s.MoveTo(tile)
}

func (s *Session) handleKey(key Key) {
	switch key {
	case KeyToggleMode:
		s.setMode(s.Mode.ToggleMode())
		if s.Mode.InCombat() {
			s.Player.ClearTarget()
		}
	case KeyFire:
		if s.Mode != CombatPreshot {
			return
		}
		s.lastRoll = s.rnd.Float64()
		chance := s.HitChance()
		s.setMode(s.Mode.ResolveShot(s.lastRoll, chance))
		if s.Mode == CombatHit {
			s.events = append(s.events, EventShotHit)
		} else {
			s.events = append(s.events, EventShotMiss)
		}
		s.logger.Info("shot resolved", "roll", fmt.Sprintf("%.2f", s.lastRoll), "chance", fmt.Sprintf("%.2f", chance), "result", s.Mode)
	case KeyCancel:
		s.Player.ClearTarget()
	case KeyFaster:
		s.Config.Speed = s.Config.Speed.Faster()
	case KeySlower:
		s.Config.Speed = s.Config.Speed.Slower()
	default:
		d, ok := stepKeys[key]
		if !ok || s.Mode != MapMode {
			return
		}
		if s.stepper.StepDirection(s.Player, d) {
			s.events = append(s.events, EventStepped)
		} else {
			s.events = append(s.events, EventBlocked)
		}
	}
}

func (s *Session) setMode(mode Mode) {
	if mode == s.Mode {
		return
	}
	s.logger.Debug("mode changed", "from", s.Mode, "to", mode)
	s.Mode = mode
	s.events = append(s.events, EventModeChanged)
}

func (s *Session) advance() {
	if !s.Player.Moving() {
		return
	}
	if s.ticksToStep > 0 {
		s.ticksToStep--
		return
	}
	s.ticksToStep = s.Config.Speed.TicksPerStep() - 1
	switch outcome := s.stepper.Advance(s.Player); outcome {
	case Moved:
		s.events = append(s.events, EventStepped)
	case Arrived:
		s.events = append(s.events, EventArrived)
		s.logger.Debug("arrived", "tile", s.Player.Tile())
	case Exhausted:
		s.events = append(s.events, EventExhausted)
		s.logger.Debug("step budget exhausted", "tile", s.Player.Tile())
	case Blocked:
		s.events = append(s.events, EventBlocked)
		s.logger.Debug("movement blocked", "tile", s.Player.Tile())
	}
}

// Status is a one-line human readable summary of the session.
func (s *Session) Status() string {
	return fmt.Sprintf("seed=%d tick=%d mode=%v player=%v enemy=%v distance=%d hit=%.0f%% speed=%v moving=%t",
		s.Config.Seed, s.tick, s.Mode,
		s.Player.Pos, s.Enemy.Pos,
		TileDistance(s.Player.Tile(), s.Enemy.Tile()),
		s.HitChance()*100, s.Config.Speed, s.Player.Moving())
}
