package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/Faultbox/vicky3-mod/pkg/script"
)

// EncodeOptions selects the per-build output conventions.
type EncodeOptions struct {
	// TagRGB writes integer RGB as `rgb { r g b }` instead of `{ r g b }`.
	TagRGB bool
}

// ToValue encodes the color as a script value in the shape of its variant:
//
//	RGBInt    { 255 128 64 }  or  rgb { 255 128 64 } with TagRGB
//	RGBFloat  { 1.0 0.5 0.25 }
//	HSVInt    hsv360 { 180 64 255 }
//	HSVFloat  hsv { 0.5 0.25 1.0 }
//
// Float components always carry a decimal point so an untagged float triple
// is never read back as RGBInt.
func ToValue(c Color, opts EncodeOptions) script.Value {
	switch c.variant {
	case RGBFloatVariant:
		v := c.rgbFloat
		return script.BlockValue(triple(formatFloat(v.R), formatFloat(v.G), formatFloat(v.B)))
	case HSVIntVariant:
		v := c.hsvInt
		return script.Tagged(tagHSV360, triple(formatUint(uint64(v.H)), formatUint(uint64(v.S)), formatUint(uint64(v.V))))
	case HSVFloatVariant:
		v := c.hsvFloat
		return script.Tagged(tagHSV, triple(formatFloat(v.H), formatFloat(v.S), formatFloat(v.V)))
	default:
		v := c.rgbInt
		b := triple(formatUint(uint64(v.R)), formatUint(uint64(v.G)), formatUint(uint64(v.B)))
		if opts.TagRGB {
			return script.Tagged(tagRGB, b)
		}
		return script.BlockValue(b)
	}
}

// Encode returns the token stream for the color; Unmarshal reverses it.
func Encode(c Color, opts EncodeOptions) []Token {
	return TokensOf(ToValue(c, opts))
}

// Format renders the color as script text with the given options.
func (c Color) Format(opts EncodeOptions) string {
	return ToValue(c, opts).String()
}

// String renders the color as script text with default options.
func (c Color) String() string {
	return c.Format(EncodeOptions{})
}

// MarshalText implements encoding.TextMarshaler using the script syntax.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func triple(a, b, c string) *script.Block {
	blk := &script.Block{}
	blk.Append(script.Scalar(a))
	blk.Append(script.Scalar(b))
	blk.Append(script.Scalar(c))
	return blk
}

func formatUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func formatFloat(f float32) string {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
