package physics

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/vmath"
)

// FireOptions configures FireUpdate
type FireOptions struct {
	WrapX   bool  // Flames leaving a side re-enter on the other
	Cooling uint8 // Extra life lost per tick is 1 + Cooling>>5
	Phase   uint8 // Turbulence phase; callers advance it once per tick
}

// FireUpdate moves flame particles: they rise with their emitted velocity,
// drift sideways on a turbulence field and burn out faster with more cooling
// Leaving the top kills a flame; leaving a side wraps or kills
func FireUpdate(parts []core.Particle, area core.Area, opts FireOptions) {
	burn := 1 + uint16(opts.Cooling>>parameter.FireCoolingShift)
	maxX, maxY := area.MaxX(), area.MaxY()

	for i := range parts {
		p := &parts[i]
		if !p.Alive() {
			continue
		}
		if p.TTL <= burn {
			p.Kill()
			continue
		}
		p.TTL -= burn
		p.Flags.OutOfBounds = false

		phase := opts.Phase + uint8(p.PixelY())*16 + uint8(p.PixelX())
		drift := int32(p.VX) + vmath.Noise8(phase)/parameter.FireTurbulenceDivisor
		p.VX = int8(vmath.Clamp32(drift, -parameter.MaxFireDrift, parameter.MaxFireDrift))

		x := p.X + int32(p.VX)
		y := p.Y + int32(p.VY)

		if y > maxY || y < 0 {
			p.Flags.OutOfBounds = true
			p.Kill()
			continue
		}
		if x < 0 || x > maxX {
			if opts.WrapX {
				x = vmath.Wrap32(x, area.SpanX())
			} else {
				p.Flags.OutOfBounds = true
				p.Kill()
				continue
			}
		}
		p.X, p.Y = x, y
	}
}
