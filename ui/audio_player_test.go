package ui

import (
	"testing"

	"github.com/pwiecz/hex_skirmish/lib"
)

func TestToneSweep(t *testing.T) {
	tone := Tone{Channel: 1, From: 100, To: 60, Frames: 4}
	for elapsed, expected := range []byte{100, 90, 80, 70, 60, 60} {
		if f := tone.At(elapsed); f != expected {
			t.Errorf("Expecting frequency %d after %d frames, got %d", expected, elapsed, f)
		}
	}
}

func TestEveryEventHasATone(t *testing.T) {
	for e := lib.EventStepped; e <= lib.EventShotMiss; e++ {
		tone, ok := toneFor(e)
		if !ok {
			t.Errorf("No tone for %v", e)
			continue
		}
		if tone.Channel < 0 || tone.Channel >= 4 || tone.Frames <= 0 {
			t.Errorf("Invalid tone %v for %v", tone, e)
		}
	}
}

func TestSilentPlayerTracksTones(t *testing.T) {
	p := NewAudioPlayer(nil)
	p.PlayEvents([]lib.Event{lib.EventShotHit})
	channel := eventTones[lib.EventShotHit].Channel
	if !p.Playing(channel) {
		t.Fatal("Expecting the shot tone to play")
	}
	for i := 0; i < eventTones[lib.EventShotHit].Frames; i++ {
		p.Update()
	}
	if p.Playing(channel) {
		t.Error("Expecting the shot tone to finish")
	}
	p.Close()
}
