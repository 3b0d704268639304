// Package audio plays short tones for engine events. Audio is optional:
// when the speaker cannot be opened every call is a no-op.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"smooth-snake/game"
)

const sampleRate = beep.SampleRate(44100)

// tone is a sine burst
type tone struct {
	freq     float64
	duration time.Duration
}

var cues = map[game.EventKind][]tone{
	game.EventFoodEaten: {{freq: 880, duration: 50 * time.Millisecond}},
	game.EventGameOver: {
		{freq: 440, duration: 120 * time.Millisecond},
		{freq: 330, duration: 120 * time.Millisecond},
		{freq: 220, duration: 240 * time.Millisecond},
	},
}

// Player is the sink for event sounds
type Player interface {
	Play(events []game.Event)
}

// Mute drops every event
type Mute struct{}

func (Mute) Play([]game.Event) {}

type Speaker struct{}

// NewSpeaker opens the default output device
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

func (sp *Speaker) Play(events []game.Event) {
	for _, ev := range events {
		streamer, err := sequence(cues[ev.Kind])
		if err != nil || streamer == nil {
			continue
		}
		speaker.Play(streamer)
	}
}

// sequence chains the tones into one streamer, nil for no tones
func sequence(tones []tone) (beep.Streamer, error) {
	if len(tones) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}
	return beep.Seq(parts...), nil
}

// CueLength is the number of samples an event's cue plays for
func CueLength(kind game.EventKind) int {
	n := 0
	for _, t := range cues[kind] {
		n += sampleRate.N(t.duration)
	}
	return n
}
