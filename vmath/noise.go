package vmath

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Turbulence LUT parameters; sampled once, hot path is a table lookup
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseSeed   = 0x5EED
	// noiseRing is the radius of the sampling circle in noise space
	noiseRing = 3.0
)

var noiseLUT [AngleSteps]int8

func init() {
	buildNoise(noiseSeed)
}

// buildNoise samples 2D perlin noise around a circle so index 255 flows into 0
// Values are normalized to the full int8 range
func buildNoise(seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)

	var raw [AngleSteps]float64
	peak := 0.0
	for i := 0; i < AngleSteps; i++ {
		rad := 2.0 * math.Pi * float64(i) / AngleSteps
		v := p.Noise2D(math.Cos(rad)*noiseRing, math.Sin(rad)*noiseRing)
		raw[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		peak = 1
	}
	for i, v := range raw {
		noiseLUT[i] = int8(math.Round(v / peak * TrigScale))
	}
}

// Noise8 returns seamless turbulence in [-127, 127] for a 0..255 phase
func Noise8(phase uint8) int32 {
	return int32(noiseLUT[phase])
}
