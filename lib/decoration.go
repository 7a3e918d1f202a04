package lib

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Decoration is an optional visual tag of a tile.
type Decoration int

const (
	NoDecoration Decoration = 0
	Birch        Decoration = 1
	Tree         Decoration = 2
)

func (d Decoration) String() string {
	switch d {
	case NoDecoration:
		return "NONE"
	case Birch:
		return "BIRCH"
	case Tree:
		return "TREE"
	}
	panic(fmt.Errorf("Unknown decoration: %d", int(d)))
}

// Draws above these thresholds get a decoration.
const (
	BirchThreshold = 0.9
	TreeThreshold  = 0.7
)

// DecorationFor maps a draw from [0,1) to a decoration.
func DecorationFor(v float64) Decoration {
	if v > BirchThreshold {
		return Birch
	}
	if v > TreeThreshold {
		return Tree
	}
	return NoDecoration
}

// DecorationSource produces the [0,1) draw deciding the decoration of a tile.
type DecorationSource interface {
	Sample(key CubeCoordinate) float64
}

type DecorationKind int

const (
	UniformDecoration DecorationKind = 0
	NoiseDecoration   DecorationKind = 1
)

func (k DecorationKind) String() string {
	switch k {
	case UniformDecoration:
		return "UNIFORM"
	case NoiseDecoration:
		return "NOISE"
	}
	panic(fmt.Errorf("Unknown decoration kind: %d", int(k)))
}

func NewDecorationSource(kind DecorationKind, rnd *rand.Rand) DecorationSource {
	switch kind {
	case NoiseDecoration:
		return NewNoiseSource(rnd.Int63())
	default:
		return &UniformSource{rnd}
	}
}

// UniformSource draws independent uniform values, ignoring the tile.
type UniformSource struct {
	rnd *rand.Rand
}

func NewUniformSource(rnd *rand.Rand) *UniformSource {
	return &UniformSource{rnd}
}

func (s *UniformSource) Sample(CubeCoordinate) float64 {
	return s.rnd.Float64()
}

// NoiseSource samples simplex noise at the tile position, so that vegetation grows in clumps.
type NoiseSource struct {
	noise     opensimplex.Noise
	frequency float64
	octaves   int
}

func NewNoiseSource(seed int64) *NoiseSource {
	return &NoiseSource{
		noise:     opensimplex.NewNormalized(seed),
		frequency: 0.35,
		octaves:   3}
}

func (s *NoiseSource) Sample(key CubeCoordinate) float64 {
	// Sample in the plane of the rendered grid so that neighbours on screen get similar values.
	x := 1.5 * float64(key.q)
	y := sqrt3*float64(key.r) + sqrt3/2*float64(Parity(key.q))
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	frequency := s.frequency
	for i := 0; i < s.octaves; i++ {
		total += s.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return Clamp(total/maxVal, 0, math.Nextafter(1, 0))
}
