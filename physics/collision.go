package physics

import (
	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
	"github.com/lixenwraith/ledps/vmath"
)

// DetectCollisions tests every unordered pair of live colliding particles and
// resolves those closer than parameter.HardRadius
// Returns the number of pairs handled. O(n²) over the slice
func DetectCollisions(parts []core.Particle, hardness uint8) int {
	handled := 0
	for i := range parts {
		a := &parts[i]
		if !a.Alive() || !a.Flags.Collide {
			continue
		}
		for j := i + 1; j < len(parts); j++ {
			b := &parts[j]
			if !b.Alive() || !b.Flags.Collide {
				continue
			}
			// Box reject before the squared distance
			dx := b.X - a.X
			if dx >= parameter.HardRadius || dx <= -parameter.HardRadius {
				continue
			}
			dy := b.Y - a.Y
			if dy >= parameter.HardRadius || dy <= -parameter.HardRadius {
				continue
			}
			if dx*dx+dy*dy < parameter.HardRadiusSq {
				HandleCollision(a, b, hardness)
				handled++
			}
		}
	}
	return handled
}

// HandleCollision resolves one overlapping pair
// Normal velocity components are exchanged with restitution hardness/255
// (255 swaps them, 0 equalizes them), tangential components are kept, and the
// overlap is split evenly along the contact normal
// Coincident particles use +X from p1 toward p2 as the normal
// Every division truncates toward zero, so swapping arguments only mirrors the result
func HandleCollision(p1, p2 *core.Particle, hardness uint8) {
	dx := int64(p2.X - p1.X)
	dy := int64(p2.Y - p1.Y)
	distSq := dx*dx + dy*dy
	if distSq == 0 {
		dx, dy, distSq = 1, 0, 1
	}

	rvx := int64(p2.VX) - int64(p1.VX)
	rvy := int64(p2.VY) - int64(p1.VY)
	dot := dx*rvx + dy*rvy

	// Approaching along the normal
	if dot < 0 {
		num := dot * (255 + int64(hardness))
		den := distSq * 510
		ix := int32(num * dx / den)
		iy := int32(num * dy / den)
		ApplyImpulse(p1, ix, iy)
		ApplyImpulse(p2, -ix, -iy)
	}

	if distSq >= parameter.HardRadiusSq {
		return
	}
	dist := int64(vmath.Isqrt(uint32(distSq)))
	if dist == 0 {
		dist = 1
	}
	overlap := parameter.HardRadius - dist
	push := (overlap + 1) / 2
	sx := int32(push * dx / dist)
	sy := int32(push * dy / dist)
	p1.X -= sx
	p1.Y -= sy
	p2.X += sx
	p2.Y += sy
}
