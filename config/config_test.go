package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
effect = "fire"
width = 16

[physics]
hardness = 255
wrap_x = true

[emitter]
min_life = 10
max_life = 20

[fire]
cooling = 90
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Effect != "fire" || s.Width != 16 {
		t.Errorf("top level = %q %d, want fire 16", s.Effect, s.Width)
	}
	if s.Height != Default().Height {
		t.Errorf("Height = %d, want default %d", s.Height, Default().Height)
	}
	if s.Physics.Hardness != 255 || !s.Physics.WrapX {
		t.Errorf("physics = %+v", s.Physics)
	}
	if !s.Physics.BounceY {
		t.Error("omitted bool lost its default")
	}
	if s.Emitter.MinLife != 10 || s.Emitter.MaxLife != 20 {
		t.Errorf("life = [%d, %d], want [10, 20]", s.Emitter.MinLife, s.Emitter.MaxLife)
	}
	if s.Fire.Cooling != 90 {
		t.Errorf("Cooling = %d, want 90", s.Fire.Cooling)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero width", "width = 0", ErrInvalidArea},
		{"huge height", "height = 4096", ErrInvalidArea},
		{"no capacity", "capacity = 0", ErrInvalidCapacity},
		{"inverted life", "[emitter]\nmin_life = 50\nmax_life = 10", ErrInvalidLife},
		{"immortal", "[emitter]\nmin_life = 0", ErrInvalidLife},
		{"rate over capacity", "capacity = 4\n[emitter]\nrate = 5", ErrInvalidRate},
		{"negative friction", "[physics]\nfriction = -128", ErrInvalidFriction},
		{"typo", "[physics]\nhardnes = 3", ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.data, err, tt.want)
			}
		})
	}
}

func TestParseRejectsOverflow(t *testing.T) {
	if _, err := Parse([]byte("[physics]\nhardness = 300")); err == nil {
		t.Error("hardness 300 accepted into uint8")
	}
	if _, err := Parse([]byte("width = ")); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(`effect = "vortex"`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Effect != "vortex" {
		t.Errorf("Effect = %q, want vortex", s.Effect)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LEDPS_EFFECT":   "fireworks",
		"LEDPS_SEED":     "0x10",
		"LEDPS_HARDNESS": "999", // ignored
	}
	s := Default()
	ApplyEnv(s, func(k string) string { return env[k] })

	if s.Effect != "fireworks" {
		t.Errorf("Effect = %q", s.Effect)
	}
	if s.Seed != 16 {
		t.Errorf("Seed = %d, want 16", s.Seed)
	}
	if s.Physics.Hardness != Default().Physics.Hardness {
		t.Errorf("malformed hardness applied: %d", s.Physics.Hardness)
	}
}

func TestStoreSnapshotsAreIsolated(t *testing.T) {
	s := Default()
	st, err := NewStore(s)
	if err != nil {
		t.Fatal(err)
	}
	s.Width = 1
	if st.Load().Width == 1 {
		t.Error("store aliases the caller's settings")
	}

	before := st.Load()
	if err := st.Update(func(n *Settings) { n.Effect = "fire" }); err != nil {
		t.Fatal(err)
	}
	if before.Effect == "fire" {
		t.Error("update mutated a published snapshot")
	}
	if st.Load().Effect != "fire" {
		t.Error("update not published")
	}
}

func TestStoreRejectsInvalid(t *testing.T) {
	st, _ := NewStore(Default())
	bad := Default()
	bad.Capacity = -1
	if _, err := st.Swap(bad); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("Swap error = %v", err)
	}
	if err := st.Update(func(n *Settings) { n.Width = 0 }); !errors.Is(err, ErrInvalidArea) {
		t.Errorf("Update error = %v", err)
	}
	if st.Load().Width != Default().Width {
		t.Error("rejected change was published")
	}
}

func TestStoreConcurrentUpdates(t *testing.T) {
	st, _ := NewStore(Default())
	const writers = 64

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Update(func(n *Settings) { n.Capacity++ })
		}()
	}
	wg.Wait()

	if got, want := st.Load().Capacity, Default().Capacity+writers; got != want {
		t.Errorf("Capacity = %d, want %d", got, want)
	}
}
