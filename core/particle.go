package core

import "github.com/lixenwraith/ledps/parameter"

// Flags holds per-particle behavior toggles and a 4-bit counter
// The counter is only reachable through accessors so it stays in 0..15
type Flags struct {
	OutOfBounds bool // Position left the simulation area on the last update
	Collide     bool // Particle takes part in pairwise collisions
	Aux1        bool // Reserved per-particle toggle
	Aux2        bool // Reserved per-particle toggle

	counter uint8
}

// Counter returns the 4-bit counter value
func (f *Flags) Counter() uint8 {
	return f.counter
}

// SetCounter stores v masked to 4 bits
func (f *Flags) SetCounter(v uint8) {
	f.counter = v & parameter.CounterMask
}

// Step advances the counter and reports true once every period calls
// The counter resets to 0 on that call; period is clamped to 1..16
func (f *Flags) Step(period uint8) bool {
	if period <= 1 {
		f.counter = 0
		return true
	}
	if period > parameter.CounterMask+1 {
		period = parameter.CounterMask + 1
	}
	next := f.counter + 1
	if next >= period {
		f.counter = 0
		return true
	}
	f.counter = next & parameter.CounterMask
	return false
}

// Particle is one simulated point
// Position is in sub-pixel units (parameter.Radius per pixel), velocity in
// sub-pixel units per tick
type Particle struct {
	X, Y   int32
	VX, VY int8
	TTL    uint16
	Hue    uint8
	Sat    uint8
	Flags  Flags
}

// Alive reports whether the particle still has lifetime left
func (p *Particle) Alive() bool {
	return p.TTL > 0
}

// Kill ends the particle; its slot becomes reusable
func (p *Particle) Kill() {
	p.TTL = 0
}

// PixelX returns the display column the particle occupies
func (p *Particle) PixelX() int {
	return int(p.X >> parameter.RadiusShift)
}

// PixelY returns the display row (from the bottom) the particle occupies
func (p *Particle) PixelY() int {
	return int(p.Y >> parameter.RadiusShift)
}
