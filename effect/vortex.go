package effect

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/emitter"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/physics"
	"github.com/lixenwraith/ledps/render"
	"github.com/lixenwraith/ledps/vmath"
)

// vortexRing is the emission distance from the attractor
const vortexRing = 4 * parameter.Radius

// Vortex emits tangentially from a ring rotating around the attractor,
// which pulls particles in and optionally swallows them
type Vortex struct {
	angle    uint8
	counters []uint8 // Attraction remainders, one per pool slot
}

func (*Vortex) Name() string { return "vortex" }

func (v *Vortex) Reset(s *Scene) {
	v.angle = 0
	v.counters = make([]uint8, s.Pool.Cap())
}

func (v *Vortex) Update(s *Scene) {
	cfg := s.Settings
	e := s.source()
	// Near circular orbit speed at the ring for the default strength
	speed := cfg.Emitter.Speed >> 2

	s.emit(cfg.Emitter.Rate, func(p *core.Particle) {
		v.angle += parameter.VortexSpin
		ox, oy := vmath.Polar(v.angle, vortexRing)
		e.Source.X = vmath.Clamp32(s.Attractor.X+ox, 0, s.Area.MaxX())
		e.Source.Y = vmath.Clamp32(s.Attractor.Y+oy, 0, s.Area.MaxY())
		e.Source.Hue = cfg.Emitter.Hue + v.angle>>2
		emitter.Angle(&e, p, v.angle+vmath.AngleQuarter, speed, s.RNG)
	})

	move := physics.MoveOptions{
		KillOutOfBounds: cfg.Physics.Kill,
		WrapX:           cfg.Physics.WrapX,
		WrapY:           cfg.Physics.WrapY,
	}
	parts := s.Pool.Particles()
	for i := range parts {
		p := &parts[i]
		if !p.Alive() {
			continue
		}
		physics.Attract(p, &s.Attractor, &v.counters[i], cfg.Physics.Strength, cfg.Physics.Swallow)
		s.friction(p)
		physics.Move(p, s.Area, move)
		if !p.Alive() {
			v.counters[i] = 0
		}
	}
	s.collide(false)
}

func (*Vortex) Render(s *Scene, canvas *render.Canvas) {
	renderSplat(s, canvas)
}
