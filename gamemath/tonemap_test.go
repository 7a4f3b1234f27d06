package gamemath

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestToneMap(t *testing.T) {
	tests := []struct {
		name string
		in   colorful.Color
	}{
		{"black", colorful.Color{}},
		{"white point", colorful.Color{R: ToneMapWhite, G: ToneMapWhite, B: ToneMapWhite}},
		{"overheat", colorful.Color{R: 8, G: 67.0 / 255 * 8, B: 0}},
		{"beyond white", colorful.Color{R: 40, G: 0.2, B: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneMap(tt.in); !got.IsValid() {
				t.Errorf("ToneMap(%v) = %v, out of gamut", tt.in, got)
			}
		})
	}

	if got := ToneMap(colorful.Color{}); got != (colorful.Color{}) {
		t.Errorf("black mapped to %v", got)
	}
	if got := ToneMap(colorful.Color{R: ToneMapWhite, G: ToneMapWhite, B: ToneMapWhite}); got.R < 0.999 {
		t.Errorf("white point mapped to %v", got)
	}
}

func TestToneMapKeepsOrder(t *testing.T) {
	prev := -1.0
	for _, x := range []float64{0, 0.1, 0.5, 1, 2, 4, 8} {
		got := ToneMap(colorful.Color{R: x}).R
		if got < prev {
			t.Errorf("ToneMap not monotonic at %v: %v < %v", x, got, prev)
		}
		prev = got
	}
}
