package effect

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/emitter"
	"github.com/lixenwraith/ledps/physics"
	"github.com/lixenwraith/ledps/render"
	"github.com/lixenwraith/ledps/vmath"
)

// Fire feeds flames along the bottom row into the heat field renderer
type Fire struct{}

func (*Fire) Name() string { return "fire" }

func (*Fire) Reset(s *Scene) {
	s.Heat.Reset()
}

func (*Fire) Update(s *Scene) {
	cfg := s.Settings
	e := s.source()
	e.VY = vmath.SatInt8(max(int32(cfg.Emitter.Speed>>2), 1))

	span := int(s.Area.SpanX())
	s.emit(cfg.Emitter.Rate, func(p *core.Particle) {
		e.Source.X = int32(s.RNG.Intn(span))
		emitter.Flame(&e, p, s.RNG)
		// Jitter can push a flame born at the edge outside the matrix
		p.X = vmath.Clamp32(p.X, 0, s.Area.MaxX())
	})

	physics.FireUpdate(s.Pool.Particles(), s.Area, physics.FireOptions{
		WrapX:   cfg.Physics.WrapX,
		Cooling: cfg.Fire.Cooling,
		Phase:   uint8(s.Tick),
	})
	s.Collisions = 0
}

func (*Fire) Render(s *Scene, canvas *render.Canvas) {
	render.RenderFire(s.Pool.Particles(), s.Heat, canvas, render.FireRenderOptions{
		WrapX:   s.Settings.Physics.WrapX,
		Cooling: s.Settings.Fire.Decay,
	})
}
