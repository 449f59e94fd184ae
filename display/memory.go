package display

import "github.com/lixenwraith/ledps/render"

// Memory is an in-process sink holding the last flushed frame in display
// order (row 0 at the top)
type Memory struct {
	width, height int
	pixels        []render.HSV
	writes        int
}

// NewMemory allocates a width x height frame
func NewMemory(width, height int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		pixels: make([]render.HSV, width*height),
	}
}

// SetPixel implements render.Sink; out-of-range writes are dropped
func (m *Memory) SetPixel(x, y int, c render.HSV) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.pixels[y*m.width+x] = c
	m.writes++
}

// At returns the stored pixel
func (m *Memory) At(x, y int) render.HSV {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return render.Black
	}
	return m.pixels[y*m.width+x]
}

// Writes returns the number of accepted SetPixel calls
func (m *Memory) Writes() int {
	return m.writes
}

// Lit counts pixels with nonzero brightness
func (m *Memory) Lit() int {
	n := 0
	for _, p := range m.pixels {
		if p.V > 0 {
			n++
		}
	}
	return n
}

// RGBA renders the frame into a packed RGBA byte slice (len = w*h*4)
func (m *Memory) RGBA(dst []byte) []byte {
	need := m.width * m.height * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]
	for i, p := range m.pixels {
		c := ToRGB(p)
		dst[i*4] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = 0xFF
	}
	return dst
}
