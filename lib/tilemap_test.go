package lib

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestGenerateProducesUniqueTiles(t *testing.T) {
	m, err := Generate(GenConfig{Rows: 5, Cols: 10, Seed: 42})
	if err != nil {
		t.Fatal("Error generating map,", err)
	}
	if m.Len() != 50 {
		t.Fatalf("Expecting 50 tiles, got %d", m.Len())
	}
	seen := make(map[CubeCoordinate]struct{})
	for tile := range m.Tiles() {
		c := tile.Coord
		if c.Q()+c.R()+c.S() != 0 {
			t.Errorf("Invalid coordinate %v", c)
		}
		if c.Q() < 0 || c.Q() >= 5 || c.R() < 0 || c.R() >= 10 {
			t.Errorf("Coordinate %v out of generated range", c)
		}
		if _, ok := seen[c]; ok {
			t.Errorf("Duplicate tile %v", c)
		}
		seen[c] = struct{}{}
	}
	if len(seen) != 50 {
		t.Errorf("Expecting 50 distinct tiles, got %d", len(seen))
	}
	total := 0
	for _, count := range m.DecorationCounts() {
		total += count
	}
	if total != 50 {
		t.Errorf("Decoration counts add up to %d", total)
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	for _, kind := range []DecorationKind{UniformDecoration, NoiseDecoration} {
		cfg := GenConfig{Rows: 8, Cols: 8, Seed: 1234, Decoration: kind}
		m0, err := Generate(cfg)
		if err != nil {
			t.Fatal(err)
		}
		m1, err := Generate(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for tile := range m0.Tiles() {
			other, ok := m1.Get(tile.Coord)
			if !ok || other != tile {
				t.Errorf("%v: tile %v differs between runs, %v", kind, tile, other)
			}
		}
	}
}

func TestDecorationDistribution(t *testing.T) {
	m, err := Generate(GenConfig{Rows: 100, Cols: 100, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	counts := m.DecorationCounts()
	n := float64(m.Len())
	if birch := float64(counts[Birch]) / n; math.Abs(birch-0.1) > 0.02 {
		t.Errorf("Expecting about 10%% birches, got %.3f", birch)
	}
	if tree := float64(counts[Tree]) / n; math.Abs(tree-0.2) > 0.03 {
		t.Errorf("Expecting about 20%% trees, got %.3f", tree)
	}
	if none := float64(counts[NoDecoration]) / n; math.Abs(none-0.7) > 0.03 {
		t.Errorf("Expecting about 70%% bare tiles, got %.3f", none)
	}
}

func TestDecorationThresholds(t *testing.T) {
	for _, tc := range []struct {
		v        float64
		expected Decoration
	}{
		{0, NoDecoration}, {0.7, NoDecoration}, {0.71, Tree}, {0.9, Tree}, {0.91, Birch}, {0.999, Birch},
	} {
		if d := DecorationFor(tc.v); d != tc.expected {
			t.Errorf("Expecting %v for %f, got %v", tc.expected, tc.v, d)
		}
	}
}

func TestNoiseSourceRange(t *testing.T) {
	s := NewNoiseSource(99)
	for q := -20; q < 20; q++ {
		for r := -20; r < 20; r++ {
			if v := s.Sample(NewAxial(q, r)); v < 0 || v >= 1 {
				t.Fatalf("Sample %f at (%d,%d) out of [0,1)", v, q, r)
			}
		}
	}
}

func TestGenerateRejectsInvalidSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		m, err := Generate(GenConfig{Rows: size[0], Cols: size[1], Seed: 1})
		if !errors.Is(err, ErrInvalidMapSize) {
			t.Errorf("Expecting ErrInvalidMapSize for %v, got %v", size, err)
		}
		if m != nil {
			t.Errorf("Expecting no map for %v", size)
		}
	}
}

func TestInsertRejectsDuplicates(t *testing.T) {
	m := NewTileMap(2)
	if err := m.Insert(Tile{Coord: NewAxial(1, 1)}); err != nil {
		t.Fatal(err)
	}
	err := m.Insert(Tile{Coord: NewAxial(1, 1), Decoration: Tree})
	if !errors.Is(err, ErrDuplicateTile) {
		t.Errorf("Expecting ErrDuplicateTile, got %v", err)
	}
	if tile, _ := m.Get(NewAxial(1, 1)); tile.Decoration != NoDecoration || m.Len() != 1 {
		t.Errorf("Duplicate insert modified the map, %v, %d tiles", tile, m.Len())
	}
}

func TestTilesIsRestartable(t *testing.T) {
	m, err := GenerateWith(3, 4, NewUniformSource(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatal(err)
	}
	for pass := 0; pass < 3; pass++ {
		n := 0
		for range m.Tiles() {
			n++
		}
		if n != 12 {
			t.Errorf("Pass %d: expecting 12 tiles, got %d", pass, n)
		}
	}
	sorted := m.SortedTiles()
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1].Coord, sorted[i].Coord
		if a.R() > b.R() || (a.R() == b.R() && a.Q() >= b.Q()) {
			t.Errorf("Tiles %v and %v out of order", a, b)
		}
	}
}

func TestHighlightedTile(t *testing.T) {
	m, err := Generate(GenConfig{Rows: 5, Cols: 10, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	l := DefaultLayout()
	offset := l.CenterOffset()
	for tile := range m.Tiles() {
		center := TileCenter(l, tile.Coord)
		for _, d := range []Point{{0, 0}, {-20, -20}, {20, 20}, {20, -20}, {-20, 20}} {
			c, ok := HighlightedTile(m, l, center.Add(d), offset)
			if !ok || c != tile.Coord {
				t.Errorf("Expecting %v under cursor %v, got %v %t", tile.Coord, center.Add(d), c, ok)
			}
		}
	}
	for _, cursor := range []Point{{-300, -300}, {10000, 200}, {200, 5000}, TileCenter(l, NewAxial(7, 2))} {
		if c, ok := HighlightedTile(m, l, cursor, offset); ok {
			t.Errorf("Expecting no tile under %v, got %v", cursor, c)
		}
	}
}

func TestHighlightedTileIsNearestCenter(t *testing.T) {
	m, err := Generate(GenConfig{Rows: 5, Cols: 10, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	l := DefaultLayout()
	offset := l.CenterOffset()
	// Scaling y by Size.X/Size.Y turns the tiles into regular hexagons, whose cells are
	// exactly the points closer to their center than to any other.
	scale := l.Size.X / l.Size.Y
	dist := func(a, b Point) float64 {
		return math.Hypot(a.X-b.X, (a.Y-b.Y)*scale)
	}
	wrong := 0
	for y := 60.0; y < 600; y += 2 {
		for x := 60.0; x < 300; x += 2 {
			cursor := Point{x, y}
			best, second := math.Inf(1), math.Inf(1)
			var nearest CubeCoordinate
			for row := -1; row <= 6; row++ {
				for col := -1; col <= 11; col++ {
					key := OffsetCoords{Row: row, Col: col}.Key()
					d := dist(cursor, TileCenter(l, key))
					if d < best {
						best, second, nearest = d, best, key
					} else if d < second {
						second = d
					}
				}
			}
			if second-best < 1e-6 {
				continue
			}
			c, ok := HighlightedTile(m, l, cursor, offset)
			if ok != m.Contains(nearest) || (ok && c != nearest) {
				if wrong < 10 {
					t.Errorf("Expecting %v under cursor %v, got %v %t", OffsetOf(nearest), cursor, OffsetOf(c), ok)
				}
				wrong++
			}
		}
	}
	if wrong > 0 {
		t.Errorf("Expecting every cursor to highlight its nearest tile, %d did not", wrong)
	}
	// Right of the center of (row 1, col 0) the cursor is already over (row 0, col 1).
	if c, ok := HighlightedTile(m, l, Point{83.75, 95}, offset); !ok || c != (OffsetCoords{Row: 0, Col: 1}).Key() {
		t.Errorf("Expecting (row 0, col 1) under (83.75,95), got %v %t", OffsetOf(c), ok)
	}
}
