package lib

import (
	"errors"
	"fmt"
)

var ErrInvalidCube = errors.New("cube coordinates must sum to zero")

// CubeCoordinate addresses a single hex tile. Q+R+S is always zero.
// Fields are unexported so that the invariant can only be established by the constructors.
type CubeCoordinate struct {
	q, r, s int
}

// NewAxial builds a coordinate from two components, deriving the third one.
func NewAxial(q, r int) CubeCoordinate {
	return CubeCoordinate{q, r, -q - r}
}

// ParseCube validates a full triple.
func ParseCube(q, r, s int) (CubeCoordinate, error) {
	if q+r+s != 0 {
		return CubeCoordinate{}, fmt.Errorf("(%d,%d,%d): %w", q, r, s, ErrInvalidCube)
	}
	return CubeCoordinate{q, r, s}, nil
}

// NewCube is like ParseCube, but a violating triple is a programming error and panics.
func NewCube(q, r, s int) CubeCoordinate {
	c, err := ParseCube(q, r, s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CubeCoordinate) Q() int { return c.q }
func (c CubeCoordinate) R() int { return c.r }
func (c CubeCoordinate) S() int { return c.s }

func (c CubeCoordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.q, c.r, c.s)
}

func Add(a, b CubeCoordinate) CubeCoordinate {
	return CubeCoordinate{a.q + b.q, a.r + b.r, a.s + b.s}
}

func Sub(a, b CubeCoordinate) CubeCoordinate {
	return CubeCoordinate{a.q - b.q, a.r - b.r, a.s - b.s}
}

// Length is the number of tile steps from the origin.
func Length(c CubeCoordinate) int {
	return (Abs(c.q) + Abs(c.r) + Abs(c.s)) / 2
}

func Distance(a, b CubeCoordinate) int {
	return Length(Sub(a, b))
}

// Cube directions, counter-clockwise starting from +q.
var cubeDirections = [6]CubeCoordinate{
	{1, 0, -1}, {1, -1, 0}, {0, -1, 1},
	{-1, 0, 1}, {-1, 1, 0}, {0, 1, -1}}

func CubeDirection(i int) CubeCoordinate {
	return cubeDirections[Mod(i, 6)]
}

func (c CubeCoordinate) Neighbor(i int) CubeCoordinate {
	return Add(c, CubeDirection(i))
}

func (c CubeCoordinate) Neighbors() [6]CubeCoordinate {
	var result [6]CubeCoordinate
	for i, dir := range cubeDirections {
		result[i] = Add(c, dir)
	}
	return result
}
