package ui

import (
	"testing"

	"github.com/pwiecz/hex_skirmish/lib"
)

func TestTokenAnimation(t *testing.T) {
	a := NewTokenAnimation(lib.Point{X: 0, Y: 0}, lib.Point{X: 0, Y: 100}, 4)
	for i := 1; i <= 4; i++ {
		if a.Done() {
			t.Fatalf("Animation finished after %d frames", i-1)
		}
		a.Update()
		if p := a.Position(); p.Y != float64(25*i) {
			t.Errorf("Expecting y=%d after %d frames, got %v", 25*i, i, p)
		}
	}
	if !a.Done() {
		t.Error("Expecting the animation to be done")
	}
	a.Update()
	if p := a.Position(); p != (lib.Point{X: 0, Y: 100}) {
		t.Errorf("Animation moved past its end to %v", p)
	}
}

func TestTokenTrackerFollowsMoves(t *testing.T) {
	tracker := newTokenTracker(lib.Point{X: 0, Y: 0})
	tracker.Update(lib.Point{X: 0, Y: 0}, 6)
	if tracker.Animating() {
		t.Error("Tracker should not animate a token that didn't move")
	}
	tracker.Update(lib.Point{X: 75, Y: 50}, 2)
	if shown := tracker.Shown(); shown.X <= 0 || shown.X >= 75 {
		t.Errorf("Expecting the token halfway, got %v", shown)
	}
	// A move in the middle of an animation starts from the shown position.
	tracker.Update(lib.Point{X: 75, Y: 150}, 2)
	if shown := tracker.Shown(); shown.Y <= 25 || shown.Y >= 150 {
		t.Errorf("Expecting the token between the moves, got %v", shown)
	}
	tracker.Update(lib.Point{X: 75, Y: 150}, 2)
	if tracker.Animating() || tracker.Shown() != (lib.Point{X: 75, Y: 150}) {
		t.Errorf("Expecting the token at its destination, got %v", tracker.Shown())
	}
}
