// Package engine runs the selected effect against a published settings
// snapshot, one tick at a time.
package engine

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/ledps/config"
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/effect"
	"github.com/lixenwraith/ledps/registry"
	"github.com/lixenwraith/ledps/render"
	"github.com/lixenwraith/ledps/vmath"
)

// Stats is a point-in-time view of the simulation, safe to read from any goroutine
type Stats struct {
	Effect     string
	Tick       uint32
	Live       int
	Capacity   int
	Collisions int
}

// System owns the particle pool, frame buffers and the running effect
// Tick must be called from a single goroutine; SetAttractor, Stats and the
// settings store may be used concurrently
type System struct {
	store    *config.Store
	settings *config.Settings // Snapshot the current buffers were built from
	rejected *config.Settings // Last snapshot that failed to apply

	scene  effect.Scene
	effect effect.Effect
	canvas *render.Canvas

	attractor atomic.Uint64 // Packed x<<32 | y, sub-pixel units

	statEffect     atomic.Pointer[string]
	statTick       atomic.Uint32
	statLive       atomic.Int32
	statCapacity   atomic.Int32
	statCollisions atomic.Int32
}

// NewSystem builds a system for the store's current snapshot
func NewSystem(store *config.Store) (*System, error) {
	s := &System{store: store}
	if err := s.apply(store.Load()); err != nil {
		return nil, err
	}
	return s, nil
}

// apply rebuilds whatever the new snapshot invalidates
// Nothing is modified when the effect cannot be created
func (s *System) apply(cfg *config.Settings) error {
	prev := s.settings
	switchEffect := prev == nil || prev.Effect != cfg.Effect
	resize := prev == nil || prev.Width != cfg.Width || prev.Height != cfg.Height || prev.Capacity != cfg.Capacity

	var next effect.Effect
	if switchEffect {
		e, err := registry.New(cfg.Effect)
		if err != nil {
			return fmt.Errorf("apply settings: %w", err)
		}
		next = e
	}

	if resize {
		s.scene.Area = cfg.Area()
		s.scene.Pool = core.NewPool(cfg.Capacity)
		s.scene.Heat = render.NewHeatField(cfg.Width, cfg.Height)
		s.canvas = render.NewCanvas(cfg.Width, cfg.Height)
		s.SetAttractor(s.scene.Area.SpanX()/2, s.scene.Area.SpanY()/2)
		s.statCapacity.Store(int32(cfg.Capacity))
	}
	if prev == nil || prev.Seed != cfg.Seed {
		s.scene.RNG = vmath.NewFastRand(cfg.Seed)
	}
	if next != nil {
		s.effect = next
		name := next.Name()
		s.statEffect.Store(&name)
		if prev != nil {
			log.Printf("engine: effect %s -> %s", prev.Effect, cfg.Effect)
		}
	}

	s.settings = cfg
	s.scene.Settings = cfg
	if switchEffect || resize {
		s.restart()
	}
	return nil
}

// restart clears particles and effect state without touching settings
func (s *System) restart() {
	s.scene.Pool.Clear()
	s.scene.Heat.Reset()
	s.scene.Tick = 0
	s.scene.Collisions = 0
	s.effect.Reset(&s.scene)
}

// Reset clears all particles and reseeds the random source
func (s *System) Reset() {
	s.scene.RNG = vmath.NewFastRand(s.settings.Seed)
	s.restart()
	s.publish()
}

// Tick picks up the latest settings snapshot, advances the effect by one
// step, renders and flushes the frame to sink (nil skips the flush)
// A snapshot that fails to apply is reported once; the previous settings
// keep running
func (s *System) Tick(sink render.Sink) error {
	var err error
	if cfg := s.store.Load(); cfg != s.settings && cfg != s.rejected {
		if err = s.apply(cfg); err != nil {
			s.rejected = cfg
			log.Printf("engine: %v", err)
		}
	}

	sc := &s.scene
	sc.Attractor.X, sc.Attractor.Y = s.attractorPos()
	s.effect.Update(sc)
	s.effect.Render(sc, s.canvas)
	if sink != nil {
		s.canvas.Flush(sink)
	}
	sc.Tick++
	s.publish()
	return err
}

func (s *System) publish() {
	s.statTick.Store(s.scene.Tick)
	s.statLive.Store(int32(s.scene.Pool.Live()))
	s.statCollisions.Store(int32(s.scene.Collisions))
}

// SetAttractor moves the attractor, clamped into the area on the next tick
func (s *System) SetAttractor(x, y int32) {
	s.attractor.Store(uint64(uint32(x))<<32 | uint64(uint32(y)))
}

// attractorPos returns the attractor position clamped into the current area
func (s *System) attractorPos() (x, y int32) {
	v := s.attractor.Load()
	x, y = int32(uint32(v>>32)), int32(uint32(v))
	area := s.scene.Area
	return vmath.Clamp32(x, 0, area.MaxX()), vmath.Clamp32(y, 0, area.MaxY())
}

// Stats returns the counters published by the last tick
func (s *System) Stats() Stats {
	st := Stats{
		Tick:       s.statTick.Load(),
		Live:       int(s.statLive.Load()),
		Capacity:   int(s.statCapacity.Load()),
		Collisions: int(s.statCollisions.Load()),
	}
	if name := s.statEffect.Load(); name != nil {
		st.Effect = *name
	}
	return st
}

// Canvas returns the frame buffer; only valid on the ticking goroutine
func (s *System) Canvas() *render.Canvas {
	return s.canvas
}

// Area returns the current simulation area; only valid on the ticking goroutine
func (s *System) Area() core.Area {
	return s.scene.Area
}
