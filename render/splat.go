package render

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
)

// RenderOptions configures Render
type RenderOptions struct {
	WrapX bool // Neighbors past the left/right edge wrap instead of clipping
	WrapY bool // Neighbors past the bottom/top edge wrap instead of clipping
}

// splat holds the four pixels a particle covers and their weights
// Corner order: (x0,y0), (x1,y0), (x1,y1), (x0,y1)
type splat struct {
	x0, y0, x1, y1 int
	w              [4]uint32 // Weights summing to 1<<SurfaceShift
}

// newSplat locates a particle between pixel centers
// A particle exactly on a pixel center lands entirely in that pixel
func newSplat(px, py int32) splat {
	x, dx := shiftHalf(px)
	y, dy := shiftHalf(py)
	ix := uint32(parameter.Radius) - dx
	iy := uint32(parameter.Radius) - dy
	return splat{
		x0: x, y0: y, x1: x + 1, y1: y + 1,
		w: [4]uint32{
			ix * iy, // (x0,y0)
			dx * iy, // (x1,y0)
			dx * dy, // (x1,y1)
			ix * dy, // (x0,y1)
		},
	}
}

// shiftHalf splits a sub-pixel coordinate into the left/bottom pixel of the
// covering pair and the fraction toward the next pixel
func shiftHalf(v int32) (int, uint32) {
	pix := int(v >> parameter.RadiusShift)
	frac := uint32(v & (parameter.Radius - 1))
	if frac < parameter.HalfRadius {
		return pix - 1, frac + parameter.HalfRadius
	}
	return pix, frac - parameter.HalfRadius
}

// resolve maps a neighbor coordinate into [0, n) or reports it clipped
func resolve(v, n int, wrap bool) (int, bool) {
	if v >= 0 && v < n {
		return v, true
	}
	if !wrap {
		return 0, false
	}
	if v < 0 {
		return v + n, true
	}
	return v - n, true
}

// each calls fn for every visible corner with its scaled intensity
func (s *splat) each(w, h int, scale uint32, wrapX, wrapY bool, fn func(x, y int, v uint32)) {
	xs := [4]int{s.x0, s.x1, s.x1, s.x0}
	ys := [4]int{s.y0, s.y0, s.y1, s.y1}
	for i := 0; i < 4; i++ {
		v := (s.w[i] * scale) >> parameter.SurfaceShift
		if v == 0 {
			continue
		}
		x, okx := resolve(xs[i], w, wrapX)
		y, oky := resolve(ys[i], h, wrapY)
		if okx && oky {
			fn(x, y, v)
		}
	}
}

// Brightness derives a particle's brightness from its remaining life
// Particles fade over their last 255 ticks
func Brightness(p *core.Particle) uint8 {
	if p.TTL > 255 {
		return 255
	}
	return uint8(p.TTL)
}

// Render splats every live, in-bounds particle into canvas with bilinear
// anti-aliasing, blending additively
func Render(parts []core.Particle, canvas *Canvas, opts RenderOptions) {
	w, h := canvas.Width(), canvas.Height()
	for i := range parts {
		p := &parts[i]
		if !p.Alive() || p.Flags.OutOfBounds {
			continue
		}
		bright := uint32(Brightness(p))
		if bright == 0 {
			continue
		}
		hue, sat := p.Hue, p.Sat
		s := newSplat(p.X, p.Y)
		s.each(w, h, bright, opts.WrapX, opts.WrapY, func(x, y int, v uint32) {
			canvas.Add(x, y, HSV{H: hue, S: sat, V: uint8(v)})
		})
	}
}
