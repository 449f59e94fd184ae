// Package audio turns collision counts into short percussive clicks.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	clickDuration = 18 * time.Millisecond
	clickAttack   = 1 * time.Millisecond
	clickRelease  = 14 * time.Millisecond
	clickTone     = 1400.0

	// maxVoices bounds overlapping clicks; extra clicks are dropped
	maxVoices = 6
	// fullVolumeHits is the collision count that plays at full volume
	fullVolumeHits = 8
)

// NewClick builds one click: a noise transient over a short sine body
// hits scales the volume up to fullVolumeHits
func NewClick(rate beep.SampleRate, hits int, seed uint64) beep.Streamer {
	noise := NewOscillator(0, clickDuration, WaveNoise, rate, seed)
	body := NewOscillator(clickTone, clickDuration, WaveSine, rate, seed)
	mixed := beep.Mix(
		newVolume(noise, 0.4),
		newVolume(body, 0.6),
	)
	shaped := NewEnvelope(mixed, clickDuration, clickAttack, clickRelease, rate)

	vol := float64(min(hits, fullVolumeHits)) / fullVolumeHits
	return newVolume(shaped, vol*0.5)
}

// Clicker plays collision clicks through the speaker
// All methods are safe to call before Initialize and after Cleanup
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	seed        uint64
}

// NewClicker creates an uninitialized clicker
func NewClicker() *Clicker {
	return &Clicker{
		mixer:   &beep.Mixer{},
		enabled: true,
	}
}

// Initialize opens the speaker
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup stops all clicks and closes the speaker
func (c *Clicker) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// SetEnabled mutes or unmutes clicks
func (c *Clicker) SetEnabled(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = on
}

// Enabled reports whether clicks are audible
func (c *Clicker) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Click plays one click scaled by the number of collisions in the last tick
// Returns false when nothing was queued
func (c *Clicker) Click(hits int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.enabled || hits <= 0 {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if c.mixer.Len() >= maxVoices {
		return false
	}
	c.seed++
	c.mixer.Add(NewClick(sampleRate, hits, c.seed))
	return true
}
