package effect

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/emitter"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/physics"
	"github.com/lixenwraith/ledps/render"
	"github.com/lixenwraith/ledps/vmath"
)

// Fireworks launches rockets that burst into a ring of sparks at their apex
// or when their fuse runs out
// Rockets are marked with Flags.Aux1
type Fireworks struct {
	bursts []core.Particle
}

func (*Fireworks) Name() string { return "fireworks" }

func (f *Fireworks) Reset(*Scene) {
	f.bursts = f.bursts[:0]
}

func (f *Fireworks) Update(s *Scene) {
	cfg := s.Settings
	if s.Tick%parameter.FireworkInterval == 0 {
		f.launch(s)
	}

	opts := physics.GravityOptions{Hardness: cfg.Physics.Hardness}
	parts := s.Pool.Particles()
	for i := range parts {
		p := &parts[i]
		if !p.Alive() {
			continue
		}
		physics.Gravity(p, s.Area, opts)
		if p.Flags.Aux1 {
			if p.Alive() && p.VY > 0 && p.TTL > 1 {
				continue
			}
			f.bursts = append(f.bursts, *p)
			p.Kill()
			continue
		}
		s.friction(p)
		s.cull(p)
	}

	for i := range f.bursts {
		f.burst(s, &f.bursts[i])
	}
	f.bursts = f.bursts[:0]
	s.collide(false)
}

func (f *Fireworks) launch(s *Scene) {
	span := s.Area.SpanX()
	e := s.source()
	e.MinLife = parameter.FireworkFuseMin
	e.MaxLife = parameter.FireworkFuseMax
	e.Var = s.Settings.Emitter.Var >> 2
	e.Source.X = span/4 + int32(s.RNG.Intn(int(span/2)+1))
	e.Source.Hue = uint8(s.RNG.Next())
	e.VY = vmath.SatInt8(launchSpeed(s.Area.SpanY() * 3 / 4))

	s.emit(1, func(p *core.Particle) {
		emitter.Fountain(&e, p, s.RNG)
		p.Flags.Aux1 = true
	})
}

func (f *Fireworks) burst(s *Scene, rocket *core.Particle) {
	e := s.source()
	e.Source.X = rocket.X
	e.Source.Y = rocket.Y
	e.Source.Hue = rocket.Hue
	speed := s.Settings.Emitter.Speed >> 1

	k := 0
	s.emit(parameter.FireworkSparks, func(p *core.Particle) {
		emitter.Angle(&e, p, uint8(k*vmath.AngleSteps/parameter.FireworkSparks), speed, s.RNG)
		k++
	})
}

func (*Fireworks) Render(s *Scene, canvas *render.Canvas) {
	renderSplat(s, canvas)
}
