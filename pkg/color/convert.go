package color

import "math"

// Channel scales used by the int<->float rescales.
const (
	channelMax = 255
	hueMax     = 360
)

// RGBFloat rescales the channels to [0,1].
func (c RGBInt) RGBFloat() RGBFloat {
	return RGBFloat{
		R: float32(c.R) / channelMax,
		G: float32(c.G) / channelMax,
		B: float32(c.B) / channelMax,
	}
}

// RGBInt rescales the channels to [0,255], rounding to nearest.
func (c RGBFloat) RGBInt() RGBInt {
	return RGBInt{
		R: toChannel(c.R),
		G: toChannel(c.G),
		B: toChannel(c.B),
	}
}

// HSVFloat converts to HSV using the 60-degree sector formula.
func (c RGBFloat) HSVFloat() HSVFloat {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	cMax := math.Max(math.Max(r, g), b)
	cMin := math.Min(math.Min(r, g), b)
	delta := cMax - cMin

	var hue float64
	switch {
	case delta == 0:
		hue = 0
	case cMax == r:
		hue = math.Mod((g-b)/delta, 6)
	case cMax == g:
		hue = (b-r)/delta + 2
	default:
		hue = (r-g)/delta + 4
	}
	hue *= 60
	if hue < 0 {
		hue += hueMax
	}

	var saturation float64
	if cMax != 0 {
		saturation = delta / cMax
	}

	return HSVFloat{
		H: float32(hue / hueMax),
		S: float32(saturation),
		V: float32(cMax),
	}
}

// RGBFloat converts to RGB. Hue is scaled from turns to degrees internally.
func (c HSVFloat) RGBFloat() RGBFloat {
	hue := float64(c.H) * hueMax
	s, v := float64(c.S), float64(c.V)

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = chroma, x, 0
	case hue < 120:
		r, g, b = x, chroma, 0
	case hue < 180:
		r, g, b = 0, chroma, x
	case hue < 240:
		r, g, b = 0, x, chroma
	case hue < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGBFloat{
		R: float32(r + m),
		G: float32(g + m),
		B: float32(b + m),
	}
}

// HSVFloat rescales hue to turns and saturation/value to [0,1].
func (c HSVInt) HSVFloat() HSVFloat {
	return HSVFloat{
		H: float32(c.H) / hueMax,
		S: float32(c.S) / channelMax,
		V: float32(c.V) / channelMax,
	}
}

// HSVInt rescales hue to degrees and saturation/value to [0,255].
func (c HSVFloat) HSVInt() HSVInt {
	return HSVInt{
		H: uint16(saturate(float64(c.H)*hueMax, hueMax)),
		S: toChannel(c.S),
		V: toChannel(c.V),
	}
}

func toChannel(f float32) uint8 {
	return uint8(saturate(float64(f)*channelMax, channelMax))
}

// saturate rounds f and clamps it to [0,max]. NaN maps to 0.
func saturate(f, max float64) float64 {
	r := math.Round(f)
	switch {
	case math.IsNaN(r) || r < 0:
		return 0
	case r > max:
		return max
	default:
		return r
	}
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
