package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ToColorful returns the color as a go-colorful value for pickers and palette
// tooling.
func (c Color) ToColorful() colorful.Color {
	f := c.ToRGBFloat()
	return colorful.Color{R: float64(f.R), G: float64(f.G), B: float64(f.B)}
}

// FromColorful wraps a go-colorful value as an RGBFloat color.
func FromColorful(c colorful.Color) Color {
	return RGBF(float32(c.R), float32(c.G), float32(c.B))
}

// Hex returns the "#rrggbb" form of the color, clamping out-of-gamut values.
func (c Color) Hex() string {
	return c.ToColorful().Clamped().Hex()
}

// ParseHex parses a "#rrggbb" string into an RGBInt color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color: %w", err)
	}
	return FromColorful(cf).Convert(RGBIntVariant), nil
}
