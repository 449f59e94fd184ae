package parameter

// Effect defaults, used when a preset file omits a key
const (
	DefaultEffect   = "fountain"
	DefaultWidth    = 32
	DefaultHeight   = 16
	DefaultCapacity = 256
	DefaultSeed     = 0x5EED

	// DefaultRate is particles emitted per tick
	DefaultRate = 3

	DefaultHardness = 200
	DefaultStrength = 60
	// DefaultFriction is Q0.8; 250 keeps ~98% of velocity per call
	DefaultFriction = 250

	DefaultMinLife = 80
	DefaultMaxLife = 200
	DefaultVar     = 24
	DefaultSpeed   = 60
	DefaultHue     = 140
	DefaultSat     = 255

	// DefaultCooling drives particle burn-down in the fire integrator
	DefaultCooling = 40
	// DefaultDecay is heat removed per cell per frame by the fire renderer
	DefaultDecay = 6
)

// Limits enforced by config validation
const (
	MaxMatrixSide = 256
	// MaxParticles bounds the O(n^2) collision pass
	MaxParticles = 2048
)

// Effect cadence
const (
	// VortexSpin is the angle advance per tick of the vortex jet
	VortexSpin = 3
	// Rocket life range in ticks before it bursts
	FireworkFuseMin = 25
	FireworkFuseMax = 45
	FireworkSparks  = 24 // Sparks per burst
	// FireworkInterval is ticks between launches
	FireworkInterval = 40
	// BallPitSettle is the friction applied on the floor row
	BallPitSettle = 240
)
