package ui

import "github.com/pwiecz/hex_skirmish/lib"

type Animation interface {
	Update()
	Done() bool
	Position() lib.Point
}

var _ Animation = (*TokenAnimation)(nil)

// TokenAnimation slides a token between two pixel positions.
type TokenAnimation struct {
	xy0, xy1 lib.Point
	frames   int
	elapsed  int
}

func NewTokenAnimation(xy0, xy1 lib.Point, frames int) *TokenAnimation {
	if frames <= 0 {
		panic("frames must be positive")
	}
	return &TokenAnimation{
		xy0:    xy0,
		xy1:    xy1,
		frames: frames}
}

func (a *TokenAnimation) Update() {
	if a.elapsed < a.frames {
		a.elapsed++
	}
}

func (a *TokenAnimation) Done() bool {
	return a.elapsed >= a.frames
}

func (a *TokenAnimation) Position() lib.Point {
	alpha := float64(a.elapsed) / float64(a.frames)
	return lib.Point{
		X: a.xy0.X + (a.xy1.X-a.xy0.X)*alpha,
		Y: a.xy0.Y + (a.xy1.Y-a.xy0.Y)*alpha}
}

// Target is where the animation ends.
func (a *TokenAnimation) Target() lib.Point {
	return a.xy1
}

// tokenTracker follows an actor's pixel position and animates every change of it.
type tokenTracker struct {
	shown     lib.Point
	animation *TokenAnimation
}

func newTokenTracker(xy lib.Point) *tokenTracker {
	return &tokenTracker{shown: xy}
}

// Update animates towards xy over the given number of frames if xy moved.
func (t *tokenTracker) Update(xy lib.Point, frames int) {
	target := t.shown
	if t.animation != nil {
		target = t.animation.Target()
	}
	if xy != target {
		t.animation = NewTokenAnimation(t.shown, xy, max(frames, 1))
	}
	if t.animation != nil {
		t.animation.Update()
		t.shown = t.animation.Position()
		if t.animation.Done() {
			t.animation = nil
		}
	}
}

func (t *tokenTracker) Shown() lib.Point {
	return t.shown
}

func (t *tokenTracker) Animating() bool {
	return t.animation != nil
}
