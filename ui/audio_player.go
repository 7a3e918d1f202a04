package ui

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/pwiecz/hex_skirmish/lib"
)

// Tone is a square wave sweeping linearly from one frequency to another on a single channel.
type Tone struct {
	Channel  int
	From, To byte
	Frames   int
}

// At returns the frequency after the given number of frames.
func (t Tone) At(elapsed int) byte {
	if t.Frames <= 0 || elapsed >= t.Frames {
		return t.To
	}
	from, to := int(t.From), int(t.To)
	return byte(from + (to-from)*elapsed/t.Frames)
}

var eventTones = map[lib.Event]Tone{
	lib.EventStepped:     {Channel: 0, From: 70, To: 63, Frames: 4},
	lib.EventArrived:     {Channel: 1, From: 90, To: 110, Frames: 8},
	lib.EventExhausted:   {Channel: 1, From: 60, To: 40, Frames: 12},
	lib.EventBlocked:     {Channel: 0, From: 30, To: 30, Frames: 6},
	lib.EventModeChanged: {Channel: 2, From: 120, To: 150, Frames: 6},
	lib.EventShotHit:     {Channel: 3, From: 200, To: 110, Frames: 24},
	lib.EventShotMiss:    {Channel: 3, From: 50, To: 35, Frames: 18},
}

func toneFor(event lib.Event) (Tone, bool) {
	tone, ok := eventTones[event]
	return tone, ok
}

// A trivial player generating strictly rectangular waves of given frequency on 4 channels.
type AudioPlayer struct {
	player  *oto.Player
	source  *audioSource
	tones   [4]Tone
	elapsed [4]int
}

type audioSource struct {
	mutex       sync.Mutex
	currentPos  int
	frequencies [4]byte
	origBuf     []byte
	buf         []byte
}

func (p *audioSource) Read(buf []byte) (int, error) {
	if len(p.buf) == 0 {
		p.buf = p.origBuf
		p.mutex.Lock()
		freq := p.frequencies
		p.mutex.Unlock()
		for i := 0; i < len(p.buf); i++ {
			channel := (p.currentPos + i) % 4
			if freq[channel] == 0 {
				p.buf[i] = 128
			} else {
				channelPos := (p.currentPos + i) / 4
				channelLength := 44100 / int(freq[channel])
				if channelPos%channelLength < channelLength/2 {
					p.buf[i] = 96
				} else {
					p.buf[i] = 160
				}
			}
		}
		p.currentPos += len(p.buf)
	}
	n := copy(buf, p.buf)
	p.buf = p.buf[n:]
	return n, nil
}

func (p *audioSource) SetFrequency(channel int, freq byte) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.frequencies[channel] = freq
}

// NewAudioPlayer returns a silent player if context is nil.
func NewAudioPlayer(context *oto.Context) *AudioPlayer {
	if context == nil {
		return &AudioPlayer{}
	}
	s := &audioSource{
		origBuf: make([]byte, 4096)}
	p := &AudioPlayer{
		source: s,
		player: context.NewPlayer(s)}
	p.player.Play()
	return p
}

func (p *AudioPlayer) SetFrequency(channel int, freq byte) {
	if p.source == nil {
		return
	}
	p.source.SetFrequency(channel, freq)
}

// Play starts the tone, replacing whatever was playing on its channel.
func (p *AudioPlayer) Play(tone Tone) {
	p.tones[tone.Channel] = tone
	p.elapsed[tone.Channel] = 0
	p.SetFrequency(tone.Channel, tone.At(0))
}

// PlayEvents plays the tones of the events of a single frame.
func (p *AudioPlayer) PlayEvents(events []lib.Event) {
	for _, event := range events {
		if tone, ok := toneFor(event); ok {
			p.Play(tone)
		}
	}
}

// Update advances the playing tones by one frame.
func (p *AudioPlayer) Update() {
	for channel := range p.tones {
		tone := p.tones[channel]
		if tone.Frames == 0 {
			continue
		}
		p.elapsed[channel]++
		if p.elapsed[channel] >= tone.Frames {
			p.tones[channel] = Tone{}
			p.SetFrequency(channel, 0)
		} else {
			p.SetFrequency(channel, tone.At(p.elapsed[channel]))
		}
	}
}

func (p *AudioPlayer) Playing(channel int) bool {
	return p.tones[channel].Frames > 0
}

func (p *AudioPlayer) Close() {
	if p.player == nil {
		return
	}
	p.player.Pause()
}
