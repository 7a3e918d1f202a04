package lib

import "fmt"

// Mode is the state of the screen state machine.
type Mode int

const (
	MapMode       Mode = 0
	CombatPreshot Mode = 1
	CombatHit     Mode = 2
	CombatMiss    Mode = 3
)

func (m Mode) String() string {
	switch m {
	case MapMode:
		return "MAP"
	case CombatPreshot:
		return "COMBAT"
	case CombatHit:
		return "HIT"
	case CombatMiss:
		return "MISS"
	}
	panic(fmt.Errorf("Unknown mode: %d", int(m)))
}

func (m Mode) InCombat() bool {
	return m != MapMode
}

// ToggleMode switches between the map and the combat screen. Leaving combat from any
// of its states goes back to the map.
func (m Mode) ToggleMode() Mode {
	if m == MapMode {
		return CombatPreshot
	}
	return MapMode
}

// ResolveShot decides the outcome of a shot taken in CombatPreshot. roll is a draw from [0,1).
// In any other mode it does nothing.
func (m Mode) ResolveShot(roll, hitChance float64) Mode {
	if m != CombatPreshot {
		return m
	}
	if roll < hitChance {
		return CombatHit
	}
	return CombatMiss
}

// Scene describes what gets drawn in a mode.
type Scene struct {
	ShowMap     bool
	ShowCombat  bool
	ShowShooter bool // shooter sprite in the combat panel
	ShowTarget  bool // target sprite in the combat panel
	Banner      string
}

var scenes = [4]Scene{
	MapMode:       {ShowMap: true},
	CombatPreshot: {ShowCombat: true, ShowShooter: true, ShowTarget: true, Banner: "PRESS SPACE TO FIRE"},
	CombatHit:     {ShowCombat: true, ShowShooter: true, Banner: "HIT!"},
	CombatMiss:    {ShowCombat: true, ShowShooter: true, ShowTarget: true, Banner: "MISSED"},
}

func (m Mode) Scene() Scene {
	return scenes[m]
}

// HitChance is the placeholder probability of hitting a target at the given tile distance.
type HitChance struct {
	Base    float64
	Falloff float64 // chance lost per tile of distance
}

func DefaultHitChance() HitChance {
	return HitChance{Base: 0.9, Falloff: 0.08}
}

func (h HitChance) At(distance int) float64 {
	return Clamp(h.Base-h.Falloff*float64(distance), 0.05, 0.95)
}
