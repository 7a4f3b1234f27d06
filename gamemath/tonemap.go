package gamemath

import "github.com/lucasb-eyer/go-colorful"

// ToneMapWhite is the linear value mapped to full brightness. It matches an
// HDR intensity of 3.
const ToneMapWhite = 8.0

// ToneMap compresses a linear HDR colour into displayable sRGB using the
// extended Reinhard curve per channel.
func ToneMap(c colorful.Color) colorful.Color {
	return colorful.LinearRgb(reinhard(c.R), reinhard(c.G), reinhard(c.B)).Clamped()
}

func reinhard(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return x * (1 + x/(ToneMapWhite*ToneMapWhite)) / (1 + x)
}
