package core

import "github.com/lixenwraith/ledps/parameter"

// Area represents the simulation rectangle in display pixels
// Origin is the bottom-left pixel; Y grows upward
type Area struct {
	Width, Height int // Dimensions (minimum 1x1)
}

// MaxX returns the largest valid sub-pixel X coordinate
func (a Area) MaxX() int32 {
	return int32(a.Width)<<parameter.RadiusShift - 1
}

// MaxY returns the largest valid sub-pixel Y coordinate
func (a Area) MaxY() int32 {
	return int32(a.Height)<<parameter.RadiusShift - 1
}

// SpanX returns the width in sub-pixel units, the modulus used for wrapping
func (a Area) SpanX() int32 {
	return int32(a.Width) << parameter.RadiusShift
}

// SpanY returns the height in sub-pixel units
func (a Area) SpanY() int32 {
	return int32(a.Height) << parameter.RadiusShift
}

// Contains reports whether a sub-pixel position lies inside the area
func (a Area) Contains(x, y int32) bool {
	return x >= 0 && y >= 0 && x <= a.MaxX() && y <= a.MaxY()
}
