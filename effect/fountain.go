package effect

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/emitter"
	"github.com/lixenwraith/ledps/physics"
	"github.com/lixenwraith/ledps/render"
	"github.com/lixenwraith/ledps/vmath"
)

// Fountain sprays from the bottom center under gravity with floor and wall
// bounce; hue drifts over time
type Fountain struct{}

func (*Fountain) Name() string { return "fountain" }

func (*Fountain) Reset(*Scene) {}

func (*Fountain) Update(s *Scene) {
	cfg := s.Settings
	e := s.source()
	e.Source.X = s.Area.SpanX() / 2
	e.Source.Hue = cfg.Emitter.Hue + uint8(s.Tick>>2)
	// Peak at most at 80% of the matrix height
	e.VY = vmath.SatInt8(min(int32(cfg.Emitter.Speed), launchSpeed(s.Area.SpanY()*4/5)))

	s.emit(cfg.Emitter.Rate, func(p *core.Particle) {
		emitter.Fountain(&e, p, s.RNG)
	})

	opts := s.gravityOptions()
	parts := s.Pool.Particles()
	for i := range parts {
		p := &parts[i]
		if !p.Alive() {
			continue
		}
		physics.Gravity(p, s.Area, opts)
		s.friction(p)
		s.cull(p)
	}
	s.collide(false)
}

func (*Fountain) Render(s *Scene, canvas *render.Canvas) {
	renderSplat(s, canvas)
}
