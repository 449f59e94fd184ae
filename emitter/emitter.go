// Package emitter initializes particle slots from a point source template.
package emitter

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/vmath"
)

// PointSource is an emission template
// One source outlives every particle it creates
type PointSource struct {
	MinLife uint16        // Minimum TTL of emitted particles (inclusive)
	MaxLife uint16        // Maximum TTL of emitted particles (inclusive)
	Source  core.Particle // Base position, color and collide flag
	Var     uint8         // Random velocity variation
	VX, VY  int8          // Nominal emission velocity
}

// life draws a TTL uniformly from [MinLife, MaxLife]
func (e *PointSource) life(rng *vmath.FastRand) uint16 {
	if e.MaxLife <= e.MinLife {
		return e.MinLife
	}
	return e.MinLife + uint16(rng.Intn(int(e.MaxLife-e.MinLife)+1))
}

// stamp copies identity from the source and resets per-particle state
func (e *PointSource) stamp(p *core.Particle, rng *vmath.FastRand) {
	p.TTL = e.life(rng)
	p.Hue = e.Source.Hue
	p.Sat = e.Source.Sat
	p.Flags = core.Flags{Collide: e.Source.Flags.Collide}
}

// Flame emits rising embers: dominant vertical velocity, horizontal spread
func Flame(e *PointSource, p *core.Particle, rng *vmath.FastRand) {
	e.stamp(p, rng)
	p.X = e.Source.X + rng.Jitter(e.Var)
	p.Y = e.Source.Y
	p.VX = vmath.SatInt8(int32(e.VX) + rng.Jitter(e.Var))
	p.VY = vmath.SatInt8(int32(e.VY) + rng.Jitter(e.Var>>2))
}

// Fountain emits from the source position with wide jitter on both axes
func Fountain(e *PointSource, p *core.Particle, rng *vmath.FastRand) {
	e.stamp(p, rng)
	p.X = e.Source.X
	p.Y = e.Source.Y
	p.VX = vmath.SatInt8(int32(e.VX) + rng.Jitter(e.Var))
	p.VY = vmath.SatInt8(int32(e.VY) + rng.Jitter(e.Var))
}

// Angle emits along angle (0..255 = one turn) at speed; Var jitters the speed only
func Angle(e *PointSource, p *core.Particle, angle, speed uint8, rng *vmath.FastRand) {
	e.stamp(p, rng)
	p.X = e.Source.X
	p.Y = e.Source.Y

	s := vmath.Clamp32(int32(speed)+rng.Jitter(e.Var), 0, 255)
	vx, vy := vmath.Polar(angle, s)
	p.VX = vmath.SatInt8(vx)
	p.VY = vmath.SatInt8(vy)
}
