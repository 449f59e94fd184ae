package parameter

// Sub-pixel geometry
const (
	// Radius is the number of sub-pixel units per display pixel
	Radius = 64
	// HalfRadius is half a pixel in sub-pixel units
	HalfRadius = Radius / 2
	// RadiusShift converts between pixels and sub-pixel units (1<<RadiusShift == Radius)
	RadiusShift = 6
	// SurfaceShift normalizes a product of two sub-pixel fractions (1<<SurfaceShift == Radius*Radius)
	SurfaceShift = 12
	// HardRadius is the collision proximity distance in sub-pixel units
	HardRadius = 80
	// HardRadiusSq is HardRadius squared, compared against squared distances
	HardRadiusSq = HardRadius * HardRadius
)

// Gravity
const (
	// GravityCounter applies one unit of gravity every n-th update call; 1..4 give good results
	GravityCounter = 2
	// MaxGravitySpeed is the terminal falling speed in sub-pixel units per tick
	MaxGravitySpeed = 40
)

// Attractor
const (
	// AttractMinDist floors the attractor distance to avoid the 1/r singularity
	AttractMinDist = 2 * Radius
	// AttractForceShift scales strength so force is 64*strength/dist in 1/16 velocity units
	AttractForceShift = 6
)

// Fire dynamics
const (
	// MaxFireDrift bounds horizontal turbulence velocity of flame particles
	MaxFireDrift = 4
	// FireTurbulenceDivisor maps Noise8 output to a velocity nudge of at most +-2
	FireTurbulenceDivisor = 48
	// FireCoolingShift converts the cooling setting into extra TTL loss per tick
	FireCoolingShift = 5
	// FireHeatScale multiplies TTL into deposited heat
	FireHeatScale = 4
)

// Flags
const (
	// CounterMask bounds the per-particle counter to 4 bits
	CounterMask = 0x0F
)
