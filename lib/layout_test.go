package lib

import (
	"image"
	"math"
	"testing"
)

func TestHexToPixelOddQClosedForm(t *testing.T) {
	l := DefaultLayout()
	for q := -4; q <= 4; q++ {
		for r := -4; r <= 4; r++ {
			p := HexToPixel(l, NewAxial(q, r))
			x := l.Size.X * 1.5 * float64(q)
			y := l.Size.Y * (math.Sqrt(3)/2*float64(Mod(q, 2)) + math.Sqrt(3)*float64(r))
			if math.Abs(p.X-x) > 1e-9 || math.Abs(p.Y-y) > 1e-9 {
				t.Errorf("Expecting (%f,%f) for (%d,%d), got %v", x, y, q, r, p)
			}
		}
	}
	// 75px between columns, 100px between rows, odd columns half a row lower.
	p := HexToPixel(l, NewAxial(3, 2))
	if math.Abs(p.X-225) > 1e-9 || math.Abs(p.Y-250) > 1e-9 {
		t.Errorf("Expecting (225,250), got %v", p)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	layouts := map[string]Layout{
		"odd-q":        DefaultLayout(),
		"odd-q-origin": {Orientation: FlatOrientation, Size: Point{30, 30}, Origin: Point{12, -40}, Projection: ProjectionOddQ},
		"axial-flat":   {Orientation: FlatOrientation, Size: DefaultTileSize, Projection: ProjectionAxial},
		"axial-pointy": {Orientation: PointyOrientation, Size: Point{20, 25}, Origin: Point{5, 5}, Projection: ProjectionAxial},
	}
	for name, l := range layouts {
		for q := -8; q <= 8; q++ {
			for r := -8; r <= 8; r++ {
				h := NewAxial(q, r)
				if back := PixelToTile(l, HexToPixel(l, h)); back != h {
					t.Errorf("%s: expecting %v after round trip, got %v", name, h, back)
				}
			}
		}
	}
}

func TestHexRoundTieBreak(t *testing.T) {
	for _, tc := range []struct {
		name     string
		frac     FractionalCoordinate
		expected CubeCoordinate
	}{
		// Largest error only in q: q is recomputed.
		{"q largest", FractionalCoordinate{0.45, 0.3, -0.75}, NewCube(1, 0, -1)},
		// Largest error only in r: r is recomputed.
		{"r largest", FractionalCoordinate{0.3, 0.45, -0.75}, NewCube(0, 1, -1)},
		// Largest error only in s: s is recomputed.
		{"s largest", FractionalCoordinate{-0.75, 0.3, 0.45}, NewCube(-1, 0, 1)},
		// q and r tie: q does not strictly exceed r, so r is recomputed.
		{"q r tie", FractionalCoordinate{0.4, 0.4, -0.8}, NewCube(0, 1, -1)},
		// q and s tie: neither q nor r is strictly largest, so s is recomputed.
		{"q s tie", FractionalCoordinate{0.4, -0.8, 0.4}, NewCube(0, -1, 1)},
		// r and s tie: s is recomputed.
		{"r s tie", FractionalCoordinate{-0.8, 0.4, 0.4}, NewCube(-1, 0, 1)},
	} {
		if c := HexRound(tc.frac); c != tc.expected {
			t.Errorf("%s: expecting %v, got %v", tc.name, tc.expected, c)
		}
	}
}

func TestPixelToHexNearTileCenters(t *testing.T) {
	l := DefaultLayout()
	for q := 0; q < 6; q++ {
		for r := 0; r < 6; r++ {
			h := NewAxial(q, r)
			anchor := HexToPixel(l, h)
			for _, d := range []Point{{0, 0}, {-20, -20}, {20, 20}, {-20, 20}, {20, -20}, {30, 0}, {0, -40}} {
				if c := PixelToTile(l, anchor.Add(d)); c != h {
					t.Errorf("Expecting %v for offset %v from its anchor, got %v", h, d, c)
				}
			}
		}
	}
}

func TestTileRectAndCorners(t *testing.T) {
	l := DefaultLayout()
	h := NewAxial(1, 1)
	if rect := TileRect(l, h); rect != image.Rect(75, 150, 175, 250) {
		t.Errorf("Expecting rectangle (75,150)-(175,250), got %v", rect)
	}
	center := TileCenter(l, h)
	if math.Abs(center.X-125) > 1e-9 || math.Abs(center.Y-200) > 1e-9 {
		t.Errorf("Expecting center (125,200), got %v", center)
	}
	for i, corner := range HexCorners(l, h) {
		dx, dy := (corner.X-center.X)/l.Size.X, (corner.Y-center.Y)/l.Size.Y
		if math.Abs(dx*dx+dy*dy-1) > 1e-9 {
			t.Errorf("Corner %d %v is not on the tile outline", i, corner)
		}
	}
	// Flat-top: first corner points right.
	if first := HexCorners(l, h)[0]; math.Abs(first.X-175) > 1e-9 || math.Abs(first.Y-200) > 1e-9 {
		t.Errorf("Expecting first corner at (175,200), got %v", first)
	}
}
