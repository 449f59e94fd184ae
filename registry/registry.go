package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/lixenwraith/ledps/effect"
)

// ErrUnknownEffect is returned by New for unregistered names
var ErrUnknownEffect = errors.New("unknown effect")

// EffectFactory creates a fresh effect instance with its own state
type EffectFactory func() effect.Effect

var (
	effectsMu sync.RWMutex
	effects   = make(map[string]EffectFactory)
)

// RegisterEffect adds an effect factory by name, replacing any previous entry
func RegisterEffect(name string, factory EffectFactory) {
	effectsMu.Lock()
	defer effectsMu.Unlock()
	effects[name] = factory
}

// GetEffect retrieves an effect factory by name
func GetEffect(name string) (EffectFactory, bool) {
	effectsMu.RLock()
	defer effectsMu.RUnlock()
	f, ok := effects[name]
	return f, ok
}

// New instantiates the named effect
func New(name string) (effect.Effect, error) {
	f, ok := GetEffect(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return f(), nil
}

// EffectNames returns all registered effect names in sorted order
func EffectNames() []string {
	effectsMu.RLock()
	defer effectsMu.RUnlock()
	names := make([]string, 0, len(effects))
	for name := range effects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Cycle returns the registered name dir steps away from current, wrapping
// around the sorted list; an unregistered current starts before the first
// entry. Returns current when nothing is registered
func Cycle(current string, dir int) string {
	return cycle(EffectNames(), current, dir)
}

func cycle(names []string, current string, dir int) string {
	n := len(names)
	if n == 0 {
		return current
	}
	i := slices.Index(names, current)
	if i < 0 && dir < 0 {
		i = 0
	}
	return names[((i+dir)%n+n)%n]
}
