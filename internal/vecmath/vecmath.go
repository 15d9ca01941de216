package vecmath

import "math"

// Dist returns the Euclidean distance between (x1,y1) and (x2,y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Rotate rotates the vector (x,y) by angle radians counter-clockwise.
func Rotate(x, y, angle float64) (float64, float64) {
	c, s := math.Cos(angle), math.Sin(angle)
	return x*c - y*s, x*s + y*c
}

// Clamp limits v to [lo, hi]. Callers guarantee lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
