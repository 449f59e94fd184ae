// Package config loads effect presets and publishes them to the tick loop.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ledps/core"
	"github.com/lixenwraith/ledps/parameter"
)

var (
	ErrInvalidArea     = errors.New("invalid matrix size")
	ErrInvalidCapacity = errors.New("invalid particle capacity")
	ErrInvalidFriction = errors.New("invalid friction coefficient")
	ErrInvalidLife     = errors.New("invalid life range")
	ErrInvalidRate     = errors.New("invalid emission rate")
	ErrUnknownKey      = errors.New("unknown key")
)

// Physics holds operator parameters shared by all effects
type Physics struct {
	Hardness uint8 `toml:"hardness"`
	Strength uint8 `toml:"strength"`
	Friction int32 `toml:"friction"` // Q0.8, 256 disables
	WrapX    bool  `toml:"wrap_x"`
	WrapY    bool  `toml:"wrap_y"`
	BounceX  bool  `toml:"bounce_x"`
	BounceY  bool  `toml:"bounce_y"`
	Kill     bool  `toml:"kill"` // Kill particles leaving the matrix
	Swallow  bool  `toml:"swallow"`
	Collide  bool  `toml:"collide"`
}

// Emitter holds spawn parameters
type Emitter struct {
	Rate    int    `toml:"rate"`
	MinLife uint16 `toml:"min_life"`
	MaxLife uint16 `toml:"max_life"`
	Var     uint8  `toml:"var"`
	Speed   uint8  `toml:"speed"`
	Hue     uint8  `toml:"hue"`
	Sat     uint8  `toml:"sat"`
}

// Fire holds fire integrator and renderer parameters
type Fire struct {
	Cooling uint8 `toml:"cooling"`
	Decay   uint8 `toml:"decay"`
}

// Settings is an immutable snapshot once published through a Store
type Settings struct {
	Effect   string `toml:"effect"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Capacity int    `toml:"capacity"`
	Seed     uint64 `toml:"seed"`

	Physics Physics `toml:"physics"`
	Emitter Emitter `toml:"emitter"`
	Fire    Fire    `toml:"fire"`
}

// Default returns settings for the default fountain preset
func Default() *Settings {
	return &Settings{
		Effect:   parameter.DefaultEffect,
		Width:    parameter.DefaultWidth,
		Height:   parameter.DefaultHeight,
		Capacity: parameter.DefaultCapacity,
		Seed:     parameter.DefaultSeed,
		Physics: Physics{
			Hardness: parameter.DefaultHardness,
			Strength: parameter.DefaultStrength,
			Friction: parameter.DefaultFriction,
			BounceX:  true,
			BounceY:  true,
			Kill:     true,
		},
		Emitter: Emitter{
			Rate:    parameter.DefaultRate,
			MinLife: parameter.DefaultMinLife,
			MaxLife: parameter.DefaultMaxLife,
			Var:     parameter.DefaultVar,
			Speed:   parameter.DefaultSpeed,
			Hue:     parameter.DefaultHue,
			Sat:     parameter.DefaultSat,
		},
		Fire: Fire{
			Cooling: parameter.DefaultCooling,
			Decay:   parameter.DefaultDecay,
		},
	}
}

// Parse decodes a TOML preset over the defaults and validates the result
func Parse(data []byte) (*Settings, error) {
	s := Default()
	md, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0])
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses a preset file
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ApplyEnv overrides selected keys from LEDPS_* environment variables
// Malformed values are ignored
func ApplyEnv(s *Settings, getenv func(string) string) {
	if v := getenv("LEDPS_EFFECT"); v != "" {
		s.Effect = v
	}
	if v := getenv("LEDPS_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 0, 64); err == nil {
			s.Seed = seed
		}
	}
	if v := getenv("LEDPS_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Capacity = n
		}
	}
	if v := getenv("LEDPS_HARDNESS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			s.Physics.Hardness = uint8(n)
		}
	}
}

// Validate checks ranges the TOML types cannot express
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > parameter.MaxMatrixSide || s.Height > parameter.MaxMatrixSide {
		return fmt.Errorf("%w: %dx%d", ErrInvalidArea, s.Width, s.Height)
	}
	if s.Capacity <= 0 || s.Capacity > parameter.MaxParticles {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, s.Capacity)
	}
	if s.Physics.Friction < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFriction, s.Physics.Friction)
	}
	if s.Emitter.MinLife == 0 || s.Emitter.MaxLife < s.Emitter.MinLife {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidLife, s.Emitter.MinLife, s.Emitter.MaxLife)
	}
	if s.Emitter.Rate < 0 || s.Emitter.Rate > s.Capacity {
		return fmt.Errorf("%w: %d", ErrInvalidRate, s.Emitter.Rate)
	}
	return nil
}

// Clone returns an independent copy
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

// Area returns the simulation area
func (s *Settings) Area() core.Area {
	return core.Area{Width: s.Width, Height: s.Height}
}
