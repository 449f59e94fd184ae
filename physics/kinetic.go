package physics

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/vmath"
)

// Attract pulls p toward attractor with a force of 64*strength/dist in 1/16
// velocity units per call
// Forces below one velocity unit accumulate in counter (low nibble X, high
// nibble Y) and release a single unit step when the nibble overflows, so weak
// pulls act periodically instead of rounding to zero
// With swallow set, a particle inside parameter.HardRadius is killed
func Attract(p *core.Particle, attractor *core.Particle, counter *uint8, strength uint8, swallow bool) {
	if !p.Alive() {
		return
	}

	dx := attractor.X - p.X
	dy := attractor.Y - p.Y
	distSq := int64(dx)*int64(dx) + int64(dy)*int64(dy)

	if swallow && distSq < parameter.HardRadiusSq {
		p.Kill()
		return
	}
	if distSq < parameter.AttractMinDist*parameter.AttractMinDist {
		distSq = parameter.AttractMinDist * parameter.AttractMinDist
	}

	scaled := int64(strength) << parameter.AttractForceShift
	fx := int32(scaled * int64(dx) / distSq)
	fy := int32(scaled * int64(dy) / distSq)

	xacc := *counter & 0x0F
	yacc := *counter >> 4
	p.VX, xacc = accumulate(p.VX, fx, xacc)
	p.VY, yacc = accumulate(p.VY, fy, yacc)
	*counter = yacc<<4 | xacc
}

// accumulate applies force f (1/16 units) to v, carrying sub-unit remainders in acc
func accumulate(v int8, f int32, acc uint8) (int8, uint8) {
	mag := vmath.Abs32(f)
	if mag >= 16 {
		return vmath.SatInt8(int32(v) + f/16), acc
	}
	next := int32(acc) + mag
	if next > 15 {
		return vmath.SatInt8(int32(v) + vmath.Sign32(f)), uint8(next - 16)
	}
	return v, uint8(next)
}

// Friction scales velocity by coefficient/256 (Q0.8), truncating toward zero
// so velocity decays to 0 without flipping sign
func Friction(p *core.Particle, coefficient int32) {
	if !p.Alive() {
		return
	}
	p.VX = vmath.SatInt8(int32(p.VX) * coefficient / 256)
	p.VY = vmath.SatInt8(int32(p.VY) * coefficient / 256)
}

// ApplyImpulse adds a velocity delta (momentum transfer), saturating
func ApplyImpulse(p *core.Particle, vx, vy int32) {
	p.VX = vmath.SatInt8(int32(p.VX) + vx)
	p.VY = vmath.SatInt8(int32(p.VY) + vy)
}
