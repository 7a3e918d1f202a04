package lib

import (
	"fmt"
	"math"
)

// Direction of a single tile step on the odd-q grid.
type Direction int

const (
	Down      Direction = 0
	Up        Direction = 1
	DownRight Direction = 2
	UpRight   Direction = 3
	DownLeft  Direction = 4
	UpLeft    Direction = 5
)

var Directions = [6]Direction{Down, Up, DownRight, UpRight, DownLeft, UpLeft}

func (d Direction) String() string {
	switch d {
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	case DownRight:
		return "DOWN-RIGHT"
	case UpRight:
		return "UP-RIGHT"
	case DownLeft:
		return "DOWN-LEFT"
	case UpLeft:
		return "UP-LEFT"
	}
	panic(fmt.Errorf("Unknown direction: %d", int(d)))
}

// Sibling is the diagonal with the same horizontal and the opposite vertical component.
func (d Direction) Sibling() (Direction, bool) {
	switch d {
	case DownRight:
		return UpRight, true
	case UpRight:
		return DownRight, true
	case DownLeft:
		return UpLeft, true
	case UpLeft:
		return DownLeft, true
	}
	return d, false
}

type offsetStep struct {
	dRow, dCol int
}

// Row and column change of a step, indexed by direction and by the parity of the current column.
// Odd columns sit half a row lower than even ones.
var offsetSteps = [6][2]offsetStep{
	Down:      {{1, 0}, {1, 0}},
	Up:        {{-1, 0}, {-1, 0}},
	DownRight: {{0, 1}, {1, 1}},
	UpRight:   {{-1, 1}, {0, 1}},
	DownLeft:  {{0, -1}, {1, -1}},
	UpLeft:    {{-1, -1}, {0, -1}},
}

func (o OffsetCoords) Step(d Direction) OffsetCoords {
	step := offsetSteps[d][Parity(o.Col)]
	return OffsetCoords{Row: o.Row + step.dRow, Col: o.Col + step.dCol}
}

// StepGeometry holds the pixel distances used to classify and perform steps.
type StepGeometry struct {
	ColumnStep   float64 // horizontal distance between neighbouring columns
	RowStep      float64 // vertical distance between tiles of one column
	AlignWindow  float64 // horizontal distance under which the target counts as straight above/below
	CenterOffset Point   // sprite center relative to its anchor
	ArrivalBox   Point   // half-extents of the box around the target counted as arrival
}

func DefaultStepGeometry() StepGeometry {
	return StepGeometry{
		ColumnStep:   75,
		RowStep:      100,
		AlignWindow:  50,
		CenterOffset: Point{20, 47},
		ArrivalBox:   Point{75, 50}}
}

// Target is the point an actor walks towards to stop on the given tile. It lies in the
// tile's own column, so the arrival box never catches a neighbouring column.
func (g StepGeometry) Target(l Layout, tile CubeCoordinate) Point {
	return HexToPixel(l, tile).Add(Point{0, g.CenterOffset.Y})
}

func (g StepGeometry) Delta(d Direction) Point {
	half := g.RowStep / 2
	switch d {
	case Down:
		return Point{0, g.RowStep}
	case Up:
		return Point{0, -g.RowStep}
	case DownRight:
		return Point{g.ColumnStep, half}
	case UpRight:
		return Point{g.ColumnStep, -half}
	case DownLeft:
		return Point{-g.ColumnStep, half}
	case UpLeft:
		return Point{-g.ColumnStep, -half}
	}
	panic(fmt.Errorf("Unknown direction: %d", int(d)))
}

type StepOutcome int

const (
	Idle      StepOutcome = 0 // no target
	Moved     StepOutcome = 1
	Arrived   StepOutcome = 2
	Exhausted StepOutcome = 3 // step budget used up before arriving
	Blocked   StepOutcome = 4 // next tile is not on the map
)

func (o StepOutcome) String() string {
	switch o {
	case Idle:
		return "IDLE"
	case Moved:
		return "MOVED"
	case Arrived:
		return "ARRIVED"
	case Exhausted:
		return "EXHAUSTED"
	case Blocked:
		return "BLOCKED"
	}
	panic(fmt.Errorf("Unknown step outcome: %d", int(o)))
}

// Actor is a token on the grid. Pixel is the anchor the sprite is drawn at and Pos
// the tile it stands on; every move updates both.
type Actor struct {
	Name  string
	Pixel Point
	Pos   OffsetCoords

	target    Point
	hasTarget bool
	stepsLeft int
}

func NewActor(name string, pos OffsetCoords, l Layout) *Actor {
	return &Actor{
		Name:  name,
		Pixel: HexToPixel(l, pos.Key()),
		Pos:   pos}
}

func (a *Actor) Tile() CubeCoordinate {
	return a.Pos.Key()
}

// Consistent reports whether the pixel position matches the logical one.
func (a *Actor) Consistent(l Layout) bool {
	p := HexToPixel(l, a.Tile())
	return math.Abs(p.X-a.Pixel.X) < 0.5 && math.Abs(p.Y-a.Pixel.Y) < 0.5
}

// SetTarget starts a movement of at most budget tile steps towards target.
func (a *Actor) SetTarget(target Point, budget int) {
	a.target = target
	a.hasTarget = true
	a.stepsLeft = budget
}

func (a *Actor) ClearTarget() {
	a.hasTarget = false
	a.stepsLeft = 0
}

func (a *Actor) Target() (Point, bool) {
	return a.target, a.hasTarget
}

func (a *Actor) StepsLeft() int {
	return a.stepsLeft
}

func (a *Actor) Moving() bool {
	return a.hasTarget
}

func (a *Actor) apply(d Direction, g StepGeometry) {
	a.Pixel = a.Pixel.Add(g.Delta(d))
	a.Pos = a.Pos.Step(d)
}

// Stepper moves actors one tile at a time. With a non-nil Map actors never leave the map.
type Stepper struct {
	Geometry StepGeometry
	Map      *TileMap
}

func (s Stepper) AtTarget(from, target Point) bool {
	g := s.Geometry
	return math.Abs(target.X-from.X) < g.ArrivalBox.X && math.Abs(target.Y-from.Y) < g.ArrivalBox.Y
}

// Classify picks the direction of the next step from "from" towards "target".
func (s Stepper) Classify(from, target Point) Direction {
	g := s.Geometry
	midY := from.Y + g.CenterOffset.Y
	midX := from.X + g.CenterOffset.X
	if math.Abs(target.X-from.X) < g.AlignWindow {
		if target.Y > midY {
			return Down
		}
		if target.Y < midY {
			return Up
		}
	}
	if target.Y > midY {
		if target.X > midX {
			return DownRight
		}
		return DownLeft
	}
	if target.X > midX {
		return UpRight
	}
	return UpLeft
}

func (s Stepper) passable(pos OffsetCoords, d Direction) (Direction, bool) {
	if s.Map == nil || s.Map.Contains(pos.Step(d).Key()) {
		return d, true
	}
	if sibling, ok := d.Sibling(); ok && s.Map.Contains(pos.Step(sibling).Key()) {
		return sibling, true
	}
	return d, false
}

// Advance performs at most one step of the actor's current movement.
func (s Stepper) Advance(a *Actor) StepOutcome {
	if !a.hasTarget {
		return Idle
	}
	if s.AtTarget(a.Pixel, a.target) {
		a.ClearTarget()
		return Arrived
	}
	if a.stepsLeft <= 0 {
		a.ClearTarget()
		return Exhausted
	}
	d, ok := s.passable(a.Pos, s.Classify(a.Pixel, a.target))
	if !ok {
		a.ClearTarget()
		return Blocked
	}
	a.apply(d, s.Geometry)
	a.stepsLeft--
	return Moved
}

// Run moves the actor towards target until it arrives or stops, returning the number of steps taken.
func (s Stepper) Run(a *Actor, target Point, budget int) (int, StepOutcome) {
	a.SetTarget(target, budget)
	steps := 0
	for {
		outcome := s.Advance(a)
		if outcome != Moved {
			return steps, outcome
		}
		steps++
	}
}

// StepDirection moves the actor by a single tile, cancelling any movement in progress.
func (s Stepper) StepDirection(a *Actor, d Direction) bool {
	a.ClearTarget()
	if s.Map != nil && !s.Map.Contains(a.Pos.Step(d).Key()) {
		return false
	}
	a.apply(d, s.Geometry)
	return true
}
