package core

// Handle indexes a slot in a Pool
type Handle int

// Pool is a fixed-capacity particle arena
// All storage is allocated in NewPool; dead slots (TTL == 0) are found lazily
type Pool struct {
	parts []Particle
	next  int // Scan start for the next Acquire
}

// NewPool allocates capacity particle slots, all dead
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{parts: make([]Particle, capacity)}
}

// Cap returns the number of slots
func (p *Pool) Cap() int {
	return len(p.parts)
}

// Particles exposes the full slot array, dead slots included
func (p *Pool) Particles() []Particle {
	return p.parts
}

// At returns the particle in slot h
func (p *Pool) At(h Handle) *Particle {
	return &p.parts[h]
}

// Acquire returns a dead slot, scanning round-robin from the last acquired slot
// The slot is zeroed; returns false when every slot is alive
func (p *Pool) Acquire() (Handle, bool) {
	n := len(p.parts)
	for i := 0; i < n; i++ {
		idx := p.next + i
		if idx >= n {
			idx -= n
		}
		if p.parts[idx].TTL == 0 {
			p.parts[idx] = Particle{}
			p.next = idx + 1
			if p.next >= n {
				p.next = 0
			}
			return Handle(idx), true
		}
	}
	return 0, false
}

// Live counts particles with remaining lifetime
func (p *Pool) Live() int {
	count := 0
	for i := range p.parts {
		if p.parts[i].TTL > 0 {
			count++
		}
	}
	return count
}

// Clear kills every particle and resets the scan cursor
func (p *Pool) Clear() {
	for i := range p.parts {
		p.parts[i] = Particle{}
	}
	p.next = 0
}
