package render

import "github.com/lixenwraith/ledps/vmath"

// HSV is a pixel color as delivered to LED drivers
type HSV struct {
	H, S, V uint8
}

// Black is the cleared pixel
var Black = HSV{}

// Sink receives finished frames; (0,0) is the top-left display pixel
// Only coordinates inside the canvas size are ever written
type Sink interface {
	SetPixel(x, y int, c HSV)
}

// Canvas is a fixed-size HSV frame in particle coordinates (row 0 at the bottom)
type Canvas struct {
	width, height int
	pixels        []HSV
}

// NewCanvas allocates a cleared width x height frame
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]HSV, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Clear blanks every pixel
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// At returns the pixel at (x, y) in particle coordinates; black when outside
func (c *Canvas) At(x, y int) HSV {
	if !c.inside(x, y) {
		return Black
	}
	return c.pixels[y*c.width+x]
}

// Set overwrites a pixel; out-of-range writes are dropped
func (c *Canvas) Set(x, y int, col HSV) {
	if !c.inside(x, y) {
		return
	}
	c.pixels[y*c.width+x] = col
}

// Add blends col additively into (x, y)
// Brightness saturates; hue and saturation move toward col in proportion to
// its share of the combined brightness, hue along the shorter arc
func (c *Canvas) Add(x, y int, col HSV) {
	if col.V == 0 || !c.inside(x, y) {
		return
	}
	idx := y*c.width + x
	dst := c.pixels[idx]
	if dst.V == 0 {
		c.pixels[idx] = col
		return
	}

	total := int32(dst.V) + int32(col.V)
	dh := int32(int8(col.H - dst.H)) // signed shortest-arc difference
	ds := int32(col.S) - int32(dst.S)

	c.pixels[idx] = HSV{
		H: dst.H + uint8(dh*int32(col.V)/total),
		S: uint8(int32(dst.S) + ds*int32(col.V)/total),
		V: vmath.AddUint8(dst.V, col.V),
	}
}

// Flush writes every pixel to sink, flipping rows so row 0 lands at the bottom
func (c *Canvas) Flush(sink Sink) {
	for y := 0; y < c.height; y++ {
		row := c.height - 1 - y
		base := y * c.width
		for x := 0; x < c.width; x++ {
			sink.SetPixel(x, row, c.pixels[base+x])
		}
	}
}
