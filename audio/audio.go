// Package audio plays short procedurally synthesized sound effects. There
// are no asset files; every effect is rendered into a float32 stereo buffer
// on demand and handed to oto.
package audio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float samples (oto.FormatFloat32LE)
)

// Kind identifies a sound effect.
type Kind int

const (
	// Eat plays when the snake picks up food.
	Eat Kind = iota
	// Collision plays when the snake hits itself or an obstacle.
	Collision
)

// System owns the oto context. Play is safe to call before the audio device
// is ready; effects are simply dropped until it is.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
}

// NewSystem opens the audio device. volume scales all effects and is clamped
// to [0,1].
func NewSystem(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("opening audio context: %w", err)
	}
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	return &System{ctx: ctx, ready: ready, volume: volume}, nil
}

// Play renders the effect and plays it on a background goroutine. The
// effects are short enough that overlapping players are fine.
func (s *System) Play(kind Kind) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := generate(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := s.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Close is a no-op today; oto contexts have no close, but callers shut the
// system down through here so the seam exists.
func (s *System) Close() {}

func generate(kind Kind) []byte {
	switch kind {
	case Eat:
		return genEat()
	case Collision:
		return genCollision()
	}
	return nil
}
