// Package effect combines emitters, integrators and renderers into runnable
// LED effects.
package effect

import (
	"github.com/lixenwraith/ledps/config"
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/emitter"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/physics"
	"github.com/lixenwraith/ledps/render"
	"github.com/lixenwraith/ledps/vmath"
)

// Scene is the simulation state an effect runs against for one tick
type Scene struct {
	Pool     *core.Pool
	Area     core.Area
	RNG      *vmath.FastRand
	Heat     *render.HeatField
	Settings *config.Settings // Snapshot for the current tick, read only
	Tick     uint32

	// Attractor position in sub-pixel units; other fields unused
	Attractor core.Particle

	// Collisions handled during the last Update
	Collisions int
}

// Effect is one particle program
type Effect interface {
	Name() string
	// Reset prepares effect state for a freshly cleared pool
	Reset(s *Scene)
	// Update emits and advances particles by one tick
	Update(s *Scene)
	// Render draws the current particle state into canvas
	Render(s *Scene, canvas *render.Canvas)
}

// emit acquires up to n free slots and initializes each with fn
// Returns the number emitted; stops early when the pool is full
func (s *Scene) emit(n int, fn func(p *core.Particle)) int {
	emitted := 0
	for emitted < n {
		h, ok := s.Pool.Acquire()
		if !ok {
			break
		}
		fn(s.Pool.At(h))
		emitted++
	}
	return emitted
}

// source builds a point source from the emitter settings
func (s *Scene) source() emitter.PointSource {
	cfg := &s.Settings.Emitter
	return emitter.PointSource{
		MinLife: cfg.MinLife,
		MaxLife: cfg.MaxLife,
		Var:     cfg.Var,
		Source: core.Particle{
			Hue:   cfg.Hue,
			Sat:   cfg.Sat,
			Flags: core.Flags{Collide: s.Settings.Physics.Collide},
		},
	}
}

func (s *Scene) friction(p *core.Particle) {
	if f := s.Settings.Physics.Friction; f < 256 {
		physics.Friction(p, f)
	}
}

// cull kills flagged particles when the preset asks for it
func (s *Scene) cull(p *core.Particle) {
	if p.Flags.OutOfBounds && s.Settings.Physics.Kill {
		p.Kill()
	}
}

func (s *Scene) collide(force bool) {
	s.Collisions = 0
	if force || s.Settings.Physics.Collide {
		s.Collisions = physics.DetectCollisions(s.Pool.Particles(), s.Settings.Physics.Hardness)
	}
}

func (s *Scene) gravityOptions() physics.GravityOptions {
	ph := &s.Settings.Physics
	return physics.GravityOptions{
		WrapX:    ph.WrapX,
		BounceX:  ph.BounceX,
		BounceY:  ph.BounceY,
		Hardness: ph.Hardness,
	}
}

// renderSplat clears canvas and splats every live particle
func renderSplat(s *Scene, canvas *render.Canvas) {
	canvas.Clear()
	render.Render(s.Pool.Particles(), canvas, render.RenderOptions{
		WrapX: s.Settings.Physics.WrapX,
		WrapY: s.Settings.Physics.WrapY,
	})
}

// launchSpeed is the upward velocity whose gravity arc peaks at height
// sub-pixel units: v^2 = 2*h/GravityCounter
func launchSpeed(height int32) int32 {
	if height <= 0 {
		return 0
	}
	return int32(vmath.Isqrt(uint32(2 * height / parameter.GravityCounter)))
}
