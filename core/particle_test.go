package core

import (
	"testing"

	"github.com/lixenwraith/ledps/parameter"
)

func TestFlagsCounterMasked(t *testing.T) {
	var f Flags
	f.SetCounter(0xFF)
	if got := f.Counter(); got != 0x0F {
		t.Errorf("SetCounter(0xFF) stored %d, want 15", got)
	}
	f.SetCounter(3)
	if got := f.Counter(); got != 3 {
		t.Errorf("Counter() = %d, want 3", got)
	}
}

func TestFlagsStepPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period uint8
		calls  int
		fires  int
	}{
		{"every call", 1, 10, 10},
		{"gravity cadence", parameter.GravityCounter, 10, 10 / parameter.GravityCounter},
		{"period 3", 3, 9, 3},
		{"max period", 16, 32, 2},
		{"oversized period clamps", 200, 32, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flags
			fired := 0
			for i := 0; i < tt.calls; i++ {
				if f.Step(tt.period) {
					fired++
				}
				if f.Counter() > parameter.CounterMask {
					t.Fatalf("counter escaped 4 bits: %d", f.Counter())
				}
			}
			if fired != tt.fires {
				t.Errorf("fired %d times, want %d", fired, tt.fires)
			}
		})
	}
}

func TestParticlePixel(t *testing.T) {
	p := Particle{X: 3*parameter.Radius + 10, Y: parameter.Radius - 1, TTL: 1}
	if p.PixelX() != 3 || p.PixelY() != 0 {
		t.Errorf("pixel = (%d,%d), want (3,0)", p.PixelX(), p.PixelY())
	}
	if !p.Alive() {
		t.Error("expected alive")
	}
	p.Kill()
	if p.Alive() {
		t.Error("expected dead after Kill")
	}
}

func TestAreaBounds(t *testing.T) {
	a := Area{Width: 16, Height: 8}
	if a.MaxX() != 16*64-1 || a.MaxY() != 8*64-1 {
		t.Errorf("max = (%d,%d)", a.MaxX(), a.MaxY())
	}
	if !a.Contains(0, 0) || !a.Contains(a.MaxX(), a.MaxY()) {
		t.Error("corners must be inside")
	}
	if a.Contains(-1, 0) || a.Contains(0, a.MaxY()+1) {
		t.Error("outside points reported inside")
	}
}

func TestPoolAcquireReusesDeadSlots(t *testing.T) {
	p := NewPool(3)
	var hs []Handle
	for i := 0; i < 3; i++ {
		h, ok := p.Acquire()
		if !ok {
			t.Fatalf("acquire %d failed", i)
		}
		p.At(h).TTL = 10
		hs = append(hs, h)
	}
	if _, ok := p.Acquire(); ok {
		t.Fatal("acquire on full pool succeeded")
	}
	if p.Live() != 3 {
		t.Errorf("Live() = %d, want 3", p.Live())
	}

	p.At(hs[1]).Kill()
	h, ok := p.Acquire()
	if !ok || h != hs[1] {
		t.Errorf("Acquire() = %d,%v, want %d,true", h, ok, hs[1])
	}
	if p.At(h).TTL != 0 || p.At(h).Flags.Counter() != 0 {
		t.Error("acquired slot not zeroed")
	}

	p.Clear()
	if p.Live() != 0 {
		t.Errorf("Live() after Clear = %d", p.Live())
	}
}
