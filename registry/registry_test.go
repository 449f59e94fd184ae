package registry

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/ledps/effect"
)

func TestRegisterAndNew(t *testing.T) {
	RegisterEffect("test-fountain", func() effect.Effect { return &effect.Fountain{} })

	e, err := New("test-fountain")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Name() != "fountain" {
		t.Errorf("Name() = %q, want fountain", e.Name())
	}
	if !slices.Contains(EffectNames(), "test-fountain") {
		t.Error("registered name missing from EffectNames")
	}
	if !slices.IsSorted(EffectNames()) {
		t.Error("EffectNames not sorted")
	}
}

func TestNewReturnsFreshInstances(t *testing.T) {
	RegisterEffect("test-vortex", func() effect.Effect { return &effect.Vortex{} })
	a, _ := New("test-vortex")
	b, _ := New("test-vortex")
	if a == b {
		t.Error("factory returned a shared instance")
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("no-such-effect"); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("New(unknown) error = %v, want ErrUnknownEffect", err)
	}
}

func TestCycleWraps(t *testing.T) {
	names := []string{"ballpit", "fire", "fountain"}
	tests := []struct {
		current string
		dir     int
		want    string
	}{
		{"fire", 1, "fountain"},
		{"fountain", 1, "ballpit"},
		{"ballpit", -1, "fountain"},
		{"fire", -4, "ballpit"},
		{"unknown", 1, "ballpit"},
		{"unknown", -1, "fountain"},
	}
	for _, tt := range tests {
		if got := cycle(names, tt.current, tt.dir); got != tt.want {
			t.Errorf("cycle(%q, %d) = %q, want %q", tt.current, tt.dir, got, tt.want)
		}
	}
	if got := cycle(nil, "fire", 1); got != "fire" {
		t.Errorf("cycle on empty registry = %q, want unchanged", got)
	}
}

func TestCycleRegistered(t *testing.T) {
	RegisterEffect("test-cycle", func() effect.Effect { return &effect.Fire{} })
	names := EffectNames()
	i := slices.Index(names, "test-cycle")
	want := names[(i+1)%len(names)]
	if got := Cycle("test-cycle", 1); got != want {
		t.Errorf("Cycle = %q, want %q", got, want)
	}
}
