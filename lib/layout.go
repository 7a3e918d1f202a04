package lib

import (
	"fmt"
	"image"
	"math"
)

var sqrt3 = math.Sqrt(3)

type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) String() string    { return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y) }

// FractionalCoordinate is an intermediate result of projecting a pixel onto the grid.
type FractionalCoordinate struct {
	Q, R, S float64
}

// Orientation holds the forward (F) and inverse (B) projection matrices and
// the angle of the first corner in multiples of 60 degrees.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	StartAngle     float64
}

var FlatOrientation = Orientation{
	F0: 3.0 / 2.0, F1: 0, F2: sqrt3 / 2, F3: sqrt3,
	B0: 2.0 / 3.0, B1: 0, B2: -1.0 / 3.0, B3: sqrt3 / 3,
	StartAngle: 0}

var PointyOrientation = Orientation{
	F0: sqrt3, F1: sqrt3 / 2, F2: 0, F3: 3.0 / 2.0,
	B0: sqrt3 / 3, B1: -1.0 / 3.0, B2: 0, B3: 2.0 / 3.0,
	StartAngle: 0.5}

type Projection int

const (
	// ProjectionOddQ treats (q, r) as (column, row) and shifts odd columns down by half
	// a row, so that the tile map lines up with an offset-column tile grid.
	ProjectionOddQ Projection = 0
	// ProjectionAxial is the plain axial transform through the orientation matrix.
	ProjectionAxial Projection = 1
)

func (p Projection) String() string {
	switch p {
	case ProjectionOddQ:
		return "ODD-Q"
	case ProjectionAxial:
		return "AXIAL"
	}
	panic(fmt.Errorf("Unknown projection: %d", int(p)))
}

// Default flat-top tile size: 75px between columns and 100px between rows.
var DefaultTileSize = Point{50, 100 / sqrt3}

type Layout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
	Projection  Projection
}

func DefaultLayout() Layout {
	return Layout{
		Orientation: FlatOrientation,
		Size:        DefaultTileSize,
		Projection:  ProjectionOddQ}
}

// TileExtent is the size of the rectangle a tile is drawn into.
func (l Layout) TileExtent() Point {
	return Point{2 * l.Size.X, sqrt3 * l.Size.Y}
}

// CenterOffset is the vector from a tile's anchor (its projected point) to its center.
// Subtracting it from a cursor position makes the cursor comparable with tile anchors.
func (l Layout) CenterOffset() Point {
	e := l.TileExtent()
	return Point{e.X / 2, e.Y / 2}
}

// HexToPixel returns the anchor (top-left corner of the tile rectangle) of the tile.
func HexToPixel(l Layout, h CubeCoordinate) Point {
	o := l.Orientation
	var x, y float64
	switch l.Projection {
	case ProjectionOddQ:
		x = l.Size.X * o.F0 * float64(h.q)
		y = l.Size.Y * (o.F2*float64(Parity(h.q)) + o.F3*float64(h.r))
	default:
		x = (o.F0*float64(h.q) + o.F1*float64(h.r)) * l.Size.X
		y = (o.F2*float64(h.q) + o.F3*float64(h.r)) * l.Size.Y
	}
	return Point{x + l.Origin.X, y + l.Origin.Y}
}

// PixelToHex projects an anchor-space point back onto the grid. Under ProjectionOddQ
// the result is in geometric cube coordinates (see OffsetCoords.Cube), not in tile map
// keys; use PixelToTile to get the key of the tile containing the point.
func PixelToHex(l Layout, p Point) FractionalCoordinate {
	o := l.Orientation
	pt := Point{(p.X - l.Origin.X) / l.Size.X, (p.Y - l.Origin.Y) / l.Size.Y}
	var q, r float64
	switch l.Projection {
	case ProjectionOddQ:
		q = pt.X / o.F0
		r = (pt.Y - o.F2*q) / o.F3
	default:
		q = o.B0*pt.X + o.B1*pt.Y
		r = o.B2*pt.X + o.B3*pt.Y
	}
	return FractionalCoordinate{q, r, -q - r}
}

// HexRound snaps a fractional coordinate to the nearest tile. The component with
// the largest rounding error is recomputed from the other two: q only when its error is
// strictly the largest, r when its error exceeds the error of s, s otherwise.
func HexRound(f FractionalCoordinate) CubeCoordinate {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)
	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)
	if dq > dr && dq > ds {
		q = -r - s
	} else if dr > ds {
		r = -q - s
	} else {
		s = -q - r
	}
	return NewCube(int(q), int(r), int(s))
}

// PixelToTile returns the tile map key of the tile whose anchor is nearest to p.
func PixelToTile(l Layout, p Point) CubeCoordinate {
	c := HexRound(PixelToHex(l, p))
	if l.Projection == ProjectionOddQ {
		return OffsetFromCube(c).Key()
	}
	return c
}

func TileCenter(l Layout, h CubeCoordinate) Point {
	return HexToPixel(l, h).Add(l.CenterOffset())
}

// TileRect is the pixel rectangle a tile is drawn into.
func TileRect(l Layout, h CubeCoordinate) image.Rectangle {
	anchor := HexToPixel(l, h)
	extent := l.TileExtent()
	x0, y0 := int(math.Round(anchor.X)), int(math.Round(anchor.Y))
	return image.Rect(x0, y0, x0+int(math.Round(extent.X)), y0+int(math.Round(extent.Y)))
}

// HexCorners returns the six corners of the tile outline, clockwise in screen space.
func HexCorners(l Layout, h CubeCoordinate) [6]Point {
	center := TileCenter(l, h)
	var corners [6]Point
	for i := 0; i < 6; i++ {
		angle := 2 * math.Pi * (l.Orientation.StartAngle + float64(i)) / 6
		corners[i] = Point{
			center.X + l.Size.X*math.Cos(angle),
			center.Y + l.Size.Y*math.Sin(angle)}
	}
	return corners
}
