package engine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/ledps/core"
)

// Sweep moves a point back and forth across an area with eased motion
// X spans the full width; Y travels the middle half at a different period
// so the path does not repeat every pass
type Sweep struct {
	tx, ty       *gween.Tween
	x0, x1       float32
	y0, y1       float32
	durX, durY   float32
	lastX, lastY float32
}

// NewSweep starts at the left edge, one X pass lasting period seconds
func NewSweep(area core.Area, period float32) *Sweep {
	s := &Sweep{
		x0:   0,
		x1:   float32(area.MaxX()),
		y0:   float32(area.SpanY() / 4),
		y1:   float32(area.SpanY() * 3 / 4),
		durX: period,
		durY: period * 0.7,
	}
	s.tx = gween.New(s.x0, s.x1, s.durX, ease.InOutSine)
	s.ty = gween.New(s.y0, s.y1, s.durY, ease.InOutSine)
	s.lastX, s.lastY = s.x0, s.y0
	return s
}

// Update advances the sweep by dt seconds and returns the sub-pixel position
func (s *Sweep) Update(dt float32) (x, y int32) {
	vx, doneX := s.tx.Update(dt)
	if doneX {
		s.x0, s.x1 = s.x1, s.x0
		s.tx = gween.New(s.x0, s.x1, s.durX, ease.InOutSine)
	}
	vy, doneY := s.ty.Update(dt)
	if doneY {
		s.y0, s.y1 = s.y1, s.y0
		s.ty = gween.New(s.y0, s.y1, s.durY, ease.InOutSine)
	}
	s.lastX, s.lastY = vx, vy
	return int32(vx), int32(vy)
}

// Position returns the last computed position
func (s *Sweep) Position() (x, y int32) {
	return int32(s.lastX), int32(s.lastY)
}
