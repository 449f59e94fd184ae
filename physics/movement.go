package physics

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/vmath"
)

// MoveOptions configures Move; the zero value neither wraps nor kills
type MoveOptions struct {
	KillOutOfBounds bool // Kill instead of only flagging particles that leave the area
	WrapX           bool // Wrap horizontally instead of leaving the area
	WrapY           bool // Wrap vertically instead of leaving the area
}

// GravityOptions configures Gravity
type GravityOptions struct {
	WrapX    bool  // Wrap horizontally when not bouncing
	BounceX  bool  // Reflect off the left/right walls
	BounceY  bool  // Reflect off the floor/ceiling
	Hardness uint8 // Restitution for bounces, 255 = elastic
}

// advance consumes one tick of life and returns the integrated position
func advance(p *core.Particle) (x, y int32) {
	p.TTL--
	p.Flags.OutOfBounds = false
	return p.X + int32(p.VX), p.Y + int32(p.VY)
}

// leave handles an axis exit that is neither wrapped nor bounced
func leave(p *core.Particle, kill bool) {
	p.Flags.OutOfBounds = true
	if kill {
		p.Kill()
	}
}

// Move integrates velocity into position and applies boundary policy per axis
func Move(p *core.Particle, area core.Area, opts MoveOptions) {
	if !p.Alive() {
		return
	}
	x, y := advance(p)

	if x < 0 || x > area.MaxX() {
		if opts.WrapX {
			x = vmath.Wrap32(x, area.SpanX())
		} else {
			leave(p, opts.KillOutOfBounds)
		}
	}
	if y < 0 || y > area.MaxY() {
		if opts.WrapY {
			y = vmath.Wrap32(y, area.SpanY())
		} else {
			leave(p, opts.KillOutOfBounds)
		}
	}

	p.X, p.Y = x, y
}

// Bounce integrates velocity and reflects off all four walls
// Reflected velocity is scaled by hardness/255; position is clamped inside
func Bounce(p *core.Particle, area core.Area, hardness uint8) {
	if !p.Alive() {
		return
	}
	x, y := advance(p)
	reflect(&x, &p.VX, area.MaxX(), hardness)
	reflect(&y, &p.VY, area.MaxY(), hardness)
	p.X, p.Y = x, y
}

// Gravity accelerates downward every parameter.GravityCounter calls, then
// integrates and resolves walls: bounce before wrap before flagging
func Gravity(p *core.Particle, area core.Area, opts GravityOptions) {
	if !p.Alive() {
		return
	}

	vy := int32(p.VY)
	if p.Flags.Step(parameter.GravityCounter) {
		vy--
	}
	if vy < -parameter.MaxGravitySpeed {
		vy = -parameter.MaxGravitySpeed
	}
	p.VY = int8(vy)

	x, y := advance(p)

	switch {
	case opts.BounceX:
		reflect(&x, &p.VX, area.MaxX(), opts.Hardness)
	case x < 0 || x > area.MaxX():
		if opts.WrapX {
			x = vmath.Wrap32(x, area.SpanX())
		} else {
			leave(p, false)
		}
	}

	if opts.BounceY {
		reflect(&y, &p.VY, area.MaxY(), opts.Hardness)
	} else if y < 0 || y > area.MaxY() {
		leave(p, false)
	}

	p.X, p.Y = x, y
}

// reflect bounces one axis off [0, limit]
// Only velocity heading into the wall is reflected so a particle resting on
// the wall is not flipped back and forth
func reflect(pos *int32, vel *int8, limit int32, hardness uint8) bool {
	v := int32(*vel)
	switch {
	case *pos <= 0:
		*pos = 0
		if v < 0 {
			*vel = restitution(v, hardness)
			return true
		}
	case *pos >= limit:
		*pos = limit
		if v > 0 {
			*vel = restitution(v, hardness)
			return true
		}
	}
	return false
}

// restitution negates v and scales it by hardness/255, truncating toward zero
func restitution(v int32, hardness uint8) int8 {
	return vmath.SatInt8(-v * int32(hardness) / 255)
}
