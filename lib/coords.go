package lib

import "fmt"

// OffsetCoords address a tile by row and column on an "odd-q" grid: flat-top hexes
// where odd columns are shifted down by half a row.
type OffsetCoords struct {
	Row, Col int
}

// Key returns the tile map key of the tile. Under the odd-q projection the map stores
// tiles under (q=col, r=row) and the layout applies the column shift when projecting.
func (o OffsetCoords) Key() CubeCoordinate {
	return NewAxial(o.Col, o.Row)
}

// OffsetOf is the inverse of OffsetCoords.Key.
func OffsetOf(key CubeCoordinate) OffsetCoords {
	return OffsetCoords{Row: key.r, Col: key.q}
}

// Cube converts offset coords to geometric cube coordinates, in which two tiles are
// adjacent on screen exactly when their distance is 1.
func (o OffsetCoords) Cube() CubeCoordinate {
	q := o.Col
	r := o.Row - (o.Col-Parity(o.Col))/2
	return NewAxial(q, r)
}

func OffsetFromCube(c CubeCoordinate) OffsetCoords {
	return OffsetCoords{
		Row: c.r + (c.q-Parity(c.q))/2,
		Col: c.q}
}

// TileDistance is the number of tile steps between two tile map keys.
func TileDistance(a, b CubeCoordinate) int {
	return Distance(OffsetOf(a).Cube(), OffsetOf(b).Cube())
}

func (o OffsetCoords) String() string {
	return fmt.Sprintf("(row %d, col %d)", o.Row, o.Col)
}
