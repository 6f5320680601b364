package pastel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	lightenFactor = 1.2
	darkenFactor  = 0.8

	// Blend weights toward white.
	pastelKeep  = 0.7
	pastelWhite = 255 * 0.3
)

// RGB is an 8-bit color value.
type RGB struct {
	R, G, B uint8
}

// FromColorful converts a colorful.Color with channels in [0,1].
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Colorful returns c as a colorful.Color.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex formats c as #RRGGBB with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// Luminance is the relative luminance of c in [0,1].
func (c RGB) Luminance() float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Variations holds the tone variants derived from one color.
type Variations struct {
	Original RGB
	Lighter  RGB
	Darker   RGB
}

// DeriveVariations scales c up (clamped at 255) and down (truncated).
//
// Products are rounded to float32 explicitly so no fused multiply-add can
// change where a value truncates.
func DeriveVariations(c RGB) Variations {
	return Variations{
		Original: c,
		Lighter: RGB{
			R: lighten(c.R),
			G: lighten(c.G),
			B: lighten(c.B),
		},
		Darker: RGB{
			R: darken(c.R),
			G: darken(c.G),
			B: darken(c.B),
		},
	}
}

func lighten(v uint8) uint8 {
	return uint8(min(float32(float32(v)*lightenFactor), 255))
}

func darken(v uint8) uint8 {
	return uint8(float32(float32(v) * darkenFactor))
}

// ToPastel blends every channel 70/30 toward white, truncating the result.
func ToPastel(c RGB) RGB {
	return RGB{
		R: pastelChannel(c.R),
		G: pastelChannel(c.G),
		B: pastelChannel(c.B),
	}
}

func pastelChannel(v uint8) uint8 {
	return uint8(float32(float32(v)*pastelKeep) + pastelWhite)
}
