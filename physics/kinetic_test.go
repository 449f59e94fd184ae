package physics

import (
	"testing"

	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
)

func TestFrictionHalves(t *testing.T) {
	for _, start := range []int8{100, -100, 127, -128, 1, -1} {
		p := core.Particle{VX: start, VY: start, TTL: 10}
		prev := int32(start)
		for i := 0; i < 10; i++ {
			Friction(&p, 128)
			got := int32(p.VX)
			if want := prev / 2; got != want {
				t.Fatalf("start %d step %d: VX = %d, want %d", start, i, got, want)
			}
			if got != 0 && (got < 0) != (start < 0) {
				t.Fatalf("start %d: sign flipped to %d", start, got)
			}
			prev = got
		}
		if p.VX != 0 || p.VY != 0 {
			t.Errorf("start %d: did not converge, VX=%d VY=%d", start, p.VX, p.VY)
		}
	}
}

func TestFrictionSkipsDead(t *testing.T) {
	p := core.Particle{VX: 50}
	Friction(&p, 128)
	if p.VX != 50 {
		t.Error("dead particle slowed")
	}
}

func TestAttractPullsTowardAttractor(t *testing.T) {
	attractor := core.Particle{X: 512, Y: 512}
	var counter uint8

	// Close enough for whole-unit force
	p := core.Particle{X: 512 + 2*parameter.Radius, Y: 512, TTL: 100}
	Attract(&p, &attractor, &counter, 255, false)
	if p.VX >= 0 {
		t.Errorf("VX = %d, want negative pull", p.VX)
	}
	if p.VY != 0 {
		t.Errorf("VY = %d, want 0 on the axis", p.VY)
	}
}

func TestAttractWeakForceAccumulates(t *testing.T) {
	attractor := core.Particle{X: 0, Y: 0}
	var counter uint8
	// Force below one unit per call: 64*40/1280 = 2/16 units
	p := core.Particle{X: 0, Y: 20 * parameter.Radius, TTL: 1000}

	Attract(&p, &attractor, &counter, 40, false)
	if p.VY != 0 {
		t.Fatalf("first weak call changed VY to %d", p.VY)
	}
	for i := 0; i < 20; i++ {
		Attract(&p, &attractor, &counter, 40, false)
	}
	if p.VY >= 0 {
		t.Errorf("accumulated pull missing, VY = %d", p.VY)
	}
	if counter&0x0F != 0 {
		t.Errorf("X accumulator moved on a pure Y pull: %#x", counter)
	}
}

func TestAttractSwallow(t *testing.T) {
	attractor := core.Particle{X: 1000, Y: 1000}
	var counter uint8

	inside := core.Particle{X: 1000 + parameter.HardRadius - 1, Y: 1000, TTL: 50}
	Attract(&inside, &attractor, &counter, 100, true)
	if inside.Alive() {
		t.Error("particle inside hard radius survived swallow")
	}

	orbit := core.Particle{X: 1000 + parameter.HardRadius - 1, Y: 1000, TTL: 50}
	Attract(&orbit, &attractor, &counter, 100, false)
	if !orbit.Alive() {
		t.Error("particle killed without swallow")
	}
}

func TestFireUpdateRisesAndBurns(t *testing.T) {
	area := core.Area{Width: 8, Height: 8}
	parts := []core.Particle{
		{X: 256, Y: 10, VY: 12, TTL: 100},
		{X: 256, Y: area.MaxY() - 2, VY: 12, TTL: 100}, // exits top
		{X: 256, Y: 10, VY: 12, TTL: 1},                // burns out
	}
	FireUpdate(parts, area, FireOptions{Cooling: 64})

	if parts[0].Y != 22 {
		t.Errorf("flame Y = %d, want 22", parts[0].Y)
	}
	if parts[0].TTL != 97 {
		t.Errorf("TTL = %d, want 97 with cooling 64", parts[0].TTL)
	}
	if parts[0].VX < -parameter.MaxFireDrift || parts[0].VX > parameter.MaxFireDrift {
		t.Errorf("drift %d beyond bound", parts[0].VX)
	}
	if parts[1].Alive() {
		t.Error("flame leaving the top survived")
	}
	if parts[2].Alive() {
		t.Error("flame with exhausted life survived")
	}
}

func TestFireUpdateWrapX(t *testing.T) {
	area := core.Area{Width: 8, Height: 8}
	for phase := 0; phase < 256; phase++ {
		parts := []core.Particle{{X: area.MaxX(), Y: 100, VX: 4, VY: 1, TTL: 100}}
		FireUpdate(parts, area, FireOptions{WrapX: true, Phase: uint8(phase)})
		if !parts[0].Alive() {
			t.Fatalf("phase %d: wrapped flame died", phase)
		}
		if parts[0].X < 0 || parts[0].X > area.MaxX() {
			t.Fatalf("phase %d: X = %d outside area", phase, parts[0].X)
		}
	}
}
