package effect

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/emitter"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/physics"
	"github.com/lixenwraith/ledps/render"
	"github.com/lixenwraith/ledps/vmath"
)

// ballDrop is the tick interval between dropped balls
const ballDrop = 8

// BallPit drops colliding balls from the top into a walled pit
type BallPit struct{}

func (*BallPit) Name() string { return "ballpit" }

func (*BallPit) Reset(*Scene) {}

func (*BallPit) Update(s *Scene) {
	cfg := s.Settings
	if s.Tick%ballDrop == 0 {
		e := s.source()
		// Balls outlive sparks by a wide margin
		e.MinLife = sat16(uint32(cfg.Emitter.MinLife) * 8)
		e.MaxLife = sat16(uint32(cfg.Emitter.MaxLife) * 8)
		e.Source.Flags.Collide = true
		e.Source.Y = s.Area.MaxY()
		e.Source.Hue = uint8(s.RNG.Next())
		s.emit(1, func(p *core.Particle) {
			e.Source.X = int32(s.RNG.Intn(int(s.Area.SpanX())))
			emitter.Fountain(&e, p, s.RNG)
		})
	}

	opts := physics.GravityOptions{BounceX: true, BounceY: true, Hardness: cfg.Physics.Hardness}
	parts := s.Pool.Particles()
	for i := range parts {
		p := &parts[i]
		if !p.Alive() {
			continue
		}
		physics.Gravity(p, s.Area, opts)
		if p.Y < parameter.Radius {
			physics.Friction(p, parameter.BallPitSettle)
		}
	}
	s.collide(true)

	// Overlap pushes must not leave balls outside the pit walls
	for i := range parts {
		p := &parts[i]
		if p.Alive() {
			p.X = vmath.Clamp32(p.X, 0, s.Area.MaxX())
			p.Y = vmath.Clamp32(p.Y, 0, s.Area.MaxY())
		}
	}
}

func (*BallPit) Render(s *Scene, canvas *render.Canvas) {
	renderSplat(s, canvas)
}

func sat16(v uint32) uint16 {
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
