// Package color implements the polymorphic color value found in Victoria 3
// script files and its textual encoding.
//
// A color may be written in four shapes:
//
//	color = { 255 128 64 }          # untagged RGB (integers or floats)
//	color = rgb { 255 128 64 }      # tagged integer RGB
//	color = hsv { 0.5 0.25 1.0 }    # float HSV, hue in turns
//	color = hsv360 { 180 64 255 }   # integer HSV, hue in degrees
//
// Decoding preserves the shape it read, so a load/edit/save cycle writes the
// same variant back. Conversions between variants are available for callers
// that need a canonical representation.
package color

import "fmt"

// Variant identifies which representation a Color holds.
type Variant uint8

// Color variants.
const (
	RGBIntVariant Variant = iota
	RGBFloatVariant
	HSVIntVariant
	HSVFloatVariant
)

// String returns the variant name as it is written in script files.
func (v Variant) String() string {
	switch v {
	case RGBIntVariant:
		return "rgb"
	case RGBFloatVariant:
		return "rgb float"
	case HSVIntVariant:
		return "hsv360"
	case HSVFloatVariant:
		return "hsv"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ParseVariant maps a variant name to a Variant. It accepts the names
// String returns and "rgb-float".
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "rgb":
		return RGBIntVariant, nil
	case "rgb float", "rgb-float":
		return RGBFloatVariant, nil
	case "hsv360":
		return HSVIntVariant, nil
	case "hsv":
		return HSVFloatVariant, nil
	}
	return 0, fmt.Errorf("color: unknown variant %q, expected rgb, rgb-float, hsv360 or hsv", name)
}

// RGBInt is an RGB color with 8-bit channels.
type RGBInt struct {
	R, G, B uint8
}

// RGBFloat is an RGB color with channels conventionally in [0,1].
type RGBFloat struct {
	R, G, B float32
}

// HSVInt is an HSV color with hue in degrees [0,360] and saturation and value
// in [0,255]. A hue of 360 is kept as written.
type HSVInt struct {
	H    uint16
	S, V uint8
}

// HSVFloat is an HSV color with all components in [0,1]. Hue is measured in
// turns (degrees / 360).
type HSVFloat struct {
	H, S, V float32
}

// Color is a tagged union over the four variants. The zero value is black in
// the RGBInt variant. Colors are plain values and compare with ==.
type Color struct {
	variant  Variant
	rgbInt   RGBInt
	rgbFloat RGBFloat
	hsvInt   HSVInt
	hsvFloat HSVFloat
}

// RGB returns an integer RGB color.
func RGB(r, g, b uint8) Color {
	return RGBInt{R: r, G: g, B: b}.Color()
}

// RGBF returns a float RGB color.
func RGBF(r, g, b float32) Color {
	return RGBFloat{R: r, G: g, B: b}.Color()
}

// HSV360 returns an integer HSV color.
func HSV360(h uint16, s, v uint8) Color {
	return HSVInt{H: h, S: s, V: v}.Color()
}

// HSV returns a float HSV color with hue in turns.
func HSV(h, s, v float32) Color {
	return HSVFloat{H: h, S: s, V: v}.Color()
}

// Color wraps the value in a Color.
func (c RGBInt) Color() Color { return Color{variant: RGBIntVariant, rgbInt: c} }

// Color wraps the value in a Color.
func (c RGBFloat) Color() Color { return Color{variant: RGBFloatVariant, rgbFloat: c} }

// Color wraps the value in a Color.
func (c HSVInt) Color() Color { return Color{variant: HSVIntVariant, hsvInt: c} }

// Color wraps the value in a Color.
func (c HSVFloat) Color() Color { return Color{variant: HSVFloatVariant, hsvFloat: c} }

// Variant returns the active representation.
func (c Color) Variant() Variant {
	return c.variant
}

// RGBInt returns the integer RGB value if that variant is active.
func (c Color) RGBInt() (RGBInt, bool) {
	return c.rgbInt, c.variant == RGBIntVariant
}

// RGBFloat returns the float RGB value if that variant is active.
func (c Color) RGBFloat() (RGBFloat, bool) {
	return c.rgbFloat, c.variant == RGBFloatVariant
}

// HSVInt returns the integer HSV value if that variant is active.
func (c Color) HSVInt() (HSVInt, bool) {
	return c.hsvInt, c.variant == HSVIntVariant
}

// HSVFloat returns the float HSV value if that variant is active.
func (c Color) HSVFloat() (HSVFloat, bool) {
	return c.hsvFloat, c.variant == HSVFloatVariant
}

// AsRGBInt is like RGBInt but reports a *VariantMismatchError.
func (c Color) AsRGBInt() (RGBInt, error) {
	if err := c.expect(RGBIntVariant); err != nil {
		return RGBInt{}, err
	}
	return c.rgbInt, nil
}

// AsRGBFloat is like RGBFloat but reports a *VariantMismatchError.
func (c Color) AsRGBFloat() (RGBFloat, error) {
	if err := c.expect(RGBFloatVariant); err != nil {
		return RGBFloat{}, err
	}
	return c.rgbFloat, nil
}

// AsHSVInt is like HSVInt but reports a *VariantMismatchError.
func (c Color) AsHSVInt() (HSVInt, error) {
	if err := c.expect(HSVIntVariant); err != nil {
		return HSVInt{}, err
	}
	return c.hsvInt, nil
}

// AsHSVFloat is like HSVFloat but reports a *VariantMismatchError.
func (c Color) AsHSVFloat() (HSVFloat, error) {
	if err := c.expect(HSVFloatVariant); err != nil {
		return HSVFloat{}, err
	}
	return c.hsvFloat, nil
}

func (c Color) expect(want Variant) error {
	if c.variant != want {
		return &VariantMismatchError{Want: want, Got: c.variant}
	}
	return nil
}

// Equal reports whether both colors hold the same variant and components.
func (c Color) Equal(o Color) bool {
	return c == o
}

// ApproxEqual compares two colors of any variants in float RGB space, allowing
// each channel to differ by at most eps.
func (c Color) ApproxEqual(o Color, eps float32) bool {
	a, b := c.ToRGBFloat(), o.ToRGBFloat()
	return absf(a.R-b.R) <= eps && absf(a.G-b.G) <= eps && absf(a.B-b.B) <= eps
}

// Convert returns the color re-expressed in the given variant.
func (c Color) Convert(to Variant) Color {
	if c.variant == to {
		return c
	}
	switch to {
	case RGBIntVariant:
		return c.ToRGBInt().Color()
	case RGBFloatVariant:
		return c.ToRGBFloat().Color()
	case HSVIntVariant:
		return c.ToHSVInt().Color()
	default:
		return c.ToHSVFloat().Color()
	}
}

// ToRGBInt converts the color to integer RGB.
func (c Color) ToRGBInt() RGBInt {
	if c.variant == RGBIntVariant {
		return c.rgbInt
	}
	return c.ToRGBFloat().RGBInt()
}

// ToRGBFloat converts the color to float RGB.
func (c Color) ToRGBFloat() RGBFloat {
	switch c.variant {
	case RGBIntVariant:
		return c.rgbInt.RGBFloat()
	case RGBFloatVariant:
		return c.rgbFloat
	default:
		return c.ToHSVFloat().RGBFloat()
	}
}

// ToHSVInt converts the color to integer HSV.
func (c Color) ToHSVInt() HSVInt {
	if c.variant == HSVIntVariant {
		return c.hsvInt
	}
	return c.ToHSVFloat().HSVInt()
}

// ToHSVFloat converts the color to float HSV.
func (c Color) ToHSVFloat() HSVFloat {
	switch c.variant {
	case HSVIntVariant:
		return c.hsvInt.HSVFloat()
	case HSVFloatVariant:
		return c.hsvFloat
	default:
		return c.ToRGBFloat().HSVFloat()
	}
}
