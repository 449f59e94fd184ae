package manifest

import (
	"github.com/lixenwraith/ledps/effect"
	"github.com/lixenwraith/ledps/registry"
)

// RegisterEffects registers all built-in effect factories with the registry
// Must be called before an engine selects an effect by name
func RegisterEffects() {
	registry.RegisterEffect("fountain", func() effect.Effect {
		return &effect.Fountain{}
	})
	registry.RegisterEffect("fire", func() effect.Effect {
		return &effect.Fire{}
	})
	registry.RegisterEffect("vortex", func() effect.Effect {
		return &effect.Vortex{}
	})
	registry.RegisterEffect("ballpit", func() effect.Effect {
		return &effect.BallPit{}
	})
	registry.RegisterEffect("fireworks", func() effect.Effect {
		return &effect.Fireworks{}
	})
}
