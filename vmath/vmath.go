package vmath

import "math"

// Angle units: one full turn is AngleSteps, so a uint8 angle wraps naturally
const (
	AngleSteps   = 256
	AngleQuarter = AngleSteps / 4

	// TrigScale is the magnitude of Sin8/Cos8 at +-1.0
	TrigScale = 127
)

// --- Saturation ---

// SatInt8 clamps a wide intermediate into the int8 velocity range
func SatInt8(v int32) int8 {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

// SatUint8 clamps to [0, 255]
func SatUint8(v int32) uint8 {
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// AddUint8 is a saturating add
func AddUint8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(s)
}

// Clamp32 limits v to [lo, hi]
func Clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs32 returns absolute value
func Abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign32 returns -1, 0, or 1
func Sign32(x int32) int32 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Wrap32 maps v into [0, n) for n > 0
func Wrap32(v, n int32) int32 {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// --- Distance ---

// Isqrt returns floor(sqrt(n)) using the bitwise digit-by-digit method
// No division, constant iteration count for 32-bit input
func Isqrt(n uint32) uint32 {
	var res uint32
	bit := uint32(1) << 30
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

// --- Randomness ---

// FastRand is a xorshift64 generator; deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Uint8 returns a uniform byte
func (r *FastRand) Uint8() uint8 {
	return uint8(r.Next() >> 56)
}

// Jitter returns a value in [-v/2, v-v/2]; zero when v is zero
func (r *FastRand) Jitter(v uint8) int32 {
	if v == 0 {
		return 0
	}
	return int32(r.Intn(int(v)+1)) - int32(v>>1)
}
