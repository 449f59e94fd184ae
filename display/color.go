// Package display provides pixel sinks that show rendered frames.
package display

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ledps/render"
)

// RGB is an 8-bit per channel color
type RGB struct {
	R, G, B uint8
}

// ToRGB converts an LED HSV color (all channels 0..255) to RGB
// Hue 0..255 spans one full turn
func ToRGB(c render.HSV) RGB {
	if c.V == 0 {
		return RGB{}
	}
	col := colorful.Hsv(float64(c.H)*360.0/256.0, float64(c.S)/255.0, float64(c.V)/255.0)
	r, g, b := col.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
