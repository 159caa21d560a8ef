package main

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a game event with a sound.
type Cue int

const (
	CueClear Cue = iota
	CueReveal
	CueGameOver
	CueVictory
)

// Player plays cues.
type Player interface {
	Play(Cue)
}

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueClear:    {{660, 80 * time.Millisecond}},
	CueReveal:   {{523.25, 90 * time.Millisecond}, {783.99, 140 * time.Millisecond}},
	CueGameOver: {{220, 200 * time.Millisecond}, {165, 300 * time.Millisecond}},
	CueVictory:  {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {1046.5, 250 * time.Millisecond}},
}

// Sounds plays cues as short sine melodies through a shared mixer.
type Sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSounds() *Sounds {
	return &Sounds{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (s *Sounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything still queued.
func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Play queues the melody for cue. It is a no-op before Init succeeds.
func (s *Sounds) Play(cue Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer, err := melody(cueNotes[cue])
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

var errNoNotes = errors.New("no notes")

func melody(notes []note) (beep.Streamer, error) {
	if len(notes) == 0 {
		return nil, errNoNotes
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -3}, nil
}
