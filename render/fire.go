package render

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/vmath"
)

// FireRenderOptions configures RenderFire
type FireRenderOptions struct {
	WrapX   bool  // Heat splats and diffusion wrap left/right
	Cooling uint8 // Heat removed from every cell per frame after diffusion
}

// HeatField is a per-pixel heat grid (row 0 at the bottom) that persists
// between frames
type HeatField struct {
	width, height int
	cells         []uint8
	scratch       []uint8 // Diffusion target, swapped with cells each pass
}

// NewHeatField allocates a cold width x height field
func NewHeatField(width, height int) *HeatField {
	return &HeatField{
		width:   width,
		height:  height,
		cells:   make([]uint8, width*height),
		scratch: make([]uint8, width*height),
	}
}

// Heat returns the heat at (col, row); zero outside the field
func (f *HeatField) Heat(col, row int) uint8 {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		return 0
	}
	return f.cells[row*f.width+col]
}

// AddHeat injects heat into a cell, saturating at 255
// Out-of-range cells are ignored
func (f *HeatField) AddHeat(col, row int, heat uint32) {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		return
	}
	idx := row*f.width + col
	sum := uint32(f.cells[idx]) + heat
	if sum > 255 {
		sum = 255
	}
	f.cells[idx] = uint8(sum)
}

// Reset cools every cell to zero
func (f *HeatField) Reset() {
	clear(f.cells)
}

// Diffuse spreads heat upward and sideways, then removes cooling from each cell
// Kernel: (2*self + below + left + right) / 5; missing neighbors count as zero
func (f *HeatField) Diffuse(cooling uint8, wrapX bool) {
	w, h := f.width, f.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 2 * uint32(f.cells[y*w+x])
			if y > 0 {
				sum += uint32(f.cells[(y-1)*w+x])
			}
			if lx, ok := resolve(x-1, w, wrapX); ok {
				sum += uint32(f.cells[y*w+lx])
			}
			if rx, ok := resolve(x+1, w, wrapX); ok {
				sum += uint32(f.cells[y*w+rx])
			}
			f.scratch[y*w+x] = vmath.SatUint8(int32(sum/5) - int32(cooling))
		}
	}
	f.cells, f.scratch = f.scratch, f.cells
}

// firePalette stops from black through red, orange and yellow to white
var firePalette = [16]HSV{
	{0, 255, 0},
	{0, 255, 24},
	{0, 255, 56},
	{0, 255, 96},
	{2, 255, 136},
	{6, 255, 176},
	{10, 255, 210},
	{16, 255, 240},
	{22, 255, 255},
	{28, 255, 255},
	{34, 250, 255},
	{42, 235, 255},
	{50, 200, 255},
	{56, 150, 255},
	{62, 90, 255},
	{64, 0, 255},
}

// FirePalette maps heat to a color, interpolating between palette stops
func FirePalette(heat uint8) HSV {
	last := len(firePalette) - 1
	pos := int32(heat) * int32(last)
	i := int(pos / 255)
	if i >= last {
		return firePalette[last]
	}
	frac := pos % 255
	a, b := firePalette[i], firePalette[i+1]
	return HSV{
		H: lerp8(a.H, b.H, frac),
		S: lerp8(a.S, b.S, frac),
		V: lerp8(a.V, b.V, frac),
	}
}

func lerp8(a, b uint8, frac int32) uint8 {
	return uint8(int32(a) + (int32(b)-int32(a))*frac/255)
}

// RenderFire deposits particle heat into field, diffuses and cools it, then
// paints the palette color of every cell into canvas
// Particle hue and saturation are ignored; color comes from the field alone
func RenderFire(parts []core.Particle, field *HeatField, canvas *Canvas, opts FireRenderOptions) {
	for i := range parts {
		p := &parts[i]
		if !p.Alive() || p.Flags.OutOfBounds {
			continue
		}
		heat := uint32(p.TTL) * parameter.FireHeatScale
		if heat > 255 {
			heat = 255
		}
		s := newSplat(p.X, p.Y)
		s.each(field.width, field.height, heat, opts.WrapX, false, func(x, y int, v uint32) {
			field.AddHeat(x, y, v)
		})
	}

	field.Diffuse(opts.Cooling, opts.WrapX)

	for y := 0; y < field.height; y++ {
		for x := 0; x < field.width; x++ {
			canvas.Set(x, y, FirePalette(field.cells[y*field.width+x]))
		}
	}
}
