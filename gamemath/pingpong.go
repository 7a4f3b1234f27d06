package gamemath

import "math"

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	r := math.Mod(t, length)
	if r < 0 {
		r += length
	}
	return r
}

// PingPong bounces t back and forth between 0 and length. The result has a
// period of 2*length.
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	t = Repeat(t, length*2)
	return length - math.Abs(t-length)
}

// Lerp returns a + (b-a)*t without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
