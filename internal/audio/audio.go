// Package audio plays the procedurally generated sound cues: a short bubble
// when the snake eats and a falling figure when a round ends.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/underwater-snake/internal/core"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueEaten Cue = iota + 1
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEaten:
		return "eaten"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ForEvent maps a game event to its cue.
func ForEvent(e core.Event) (Cue, bool) {
	switch e.Kind {
	case core.EventScored:
		return CueEaten, true
	case core.EventRoundOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close() error
}

// Nop is a Player that stays silent. Used for --mute, SSH sessions, and
// machines without an audio device.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// Oto plays cues on the local audio device.
type Oto struct {
	ctx     *oto.Context
	ready   chan struct{}
	volume  float64
	samples map[Cue][]byte
	wg      sync.WaitGroup
}

// NewOto opens the audio device. Only one Oto may exist per process.
func NewOto(volume float64) (*Oto, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}
	return &Oto{
		ctx:     ctx,
		ready:   ready,
		volume:  min(max(volume, 0), 1),
		samples: map[Cue][]byte{
			CueEaten:    synthesize(CueEaten),
			CueGameOver: synthesize(CueGameOver),
		},
	}, nil
}

// Play starts the cue and returns immediately. Cues requested before the
// device is ready are dropped.
func (o *Oto) Play(c Cue) {
	select {
	case <-o.ready:
	default:
		return
	}
	data := o.samples[c]
	if len(data) == 0 {
		return
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		player := o.ctx.NewPlayer(&sampleReader{data: data})
		player.SetVolume(o.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Close waits for playing cues to finish.
func (o *Oto) Close() error {
	o.wg.Wait()
	return nil
}

// New returns an Oto player when enabled, falling back to Nop when the
// device cannot be opened. The error is returned alongside the fallback so
// callers can log it.
func New(enabled bool, volume float64) (Player, error) {
	if !enabled || volume <= 0 {
		return Nop{}, nil
	}
	p, err := NewOto(volume)
	if err != nil {
		return Nop{}, err
	}
	return p, nil
}
