package vmath

import (
	"math"
)

func init() {
	// Sin LUT calculation; cos is the same table shifted a quarter turn
	for i := 0; i < AngleSteps; i++ {
		rad := 2.0 * math.Pi * float64(i) / AngleSteps
		sinLUT[i] = int8(math.Round(math.Sin(rad) * TrigScale))
	}
}

// sinLUT maps a 0..255 angle to sin scaled by TrigScale
var sinLUT [AngleSteps]int8

// Sin8 returns sine of angle (0..255 = one turn) in [-127, 127]
func Sin8(angle uint8) int32 {
	return int32(sinLUT[angle])
}

// Cos8 returns cosine of angle (0..255 = one turn) in [-127, 127]
func Cos8(angle uint8) int32 {
	return int32(sinLUT[angle+AngleQuarter])
}

// Polar decomposes a speed along an angle into integer components
// Truncates toward zero so opposite angles produce mirrored vectors
func Polar(angle uint8, speed int32) (x, y int32) {
	return Cos8(angle) * speed / TrigScale, Sin8(angle) * speed / TrigScale
}
