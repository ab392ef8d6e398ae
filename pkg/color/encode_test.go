package color

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEncode_Shapes(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		opts EncodeOptions
		want string
	}{
		{"rgb untagged", RGB(255, 128, 64), EncodeOptions{}, "{ 255 128 64 }"},
		{"rgb tagged", RGB(255, 128, 64), EncodeOptions{TagRGB: true}, "rgb { 255 128 64 }"},
		{"rgb float", RGBF(1, 0.5, 0.25), EncodeOptions{}, "{ 1.0 0.5 0.25 }"},
		{"rgb float ignores TagRGB", RGBF(1, 0, 0), EncodeOptions{TagRGB: true}, "{ 1.0 0.0 0.0 }"},
		{"hsv360", HSV360(360, 128, 64), EncodeOptions{}, "hsv360 { 360 128 64 }"},
		{"hsv", HSV(0.5, 0.25, 1), EncodeOptions{}, "hsv { 0.5 0.25 1.0 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Format(tt.opts); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	colors := []Color{
		RGB(0, 0, 0),
		RGB(255, 128, 64),
		RGBF(1, 0, 0),
		RGBF(0.1, 0.2, 0.3),
		RGBF(0.333333, 1e-7, 12.5),
		HSV360(0, 0, 0),
		HSV360(360, 255, 255),
		HSV(1, 0.5, 0.25),
		HSV(0.123456, 0.999, 0),
	}

	for _, opts := range []EncodeOptions{{}, {TagRGB: true}} {
		for _, c := range colors {
			got, err := Unmarshal(Encode(c, opts))
			if err != nil {
				t.Fatalf("Unmarshal(Encode(%v)) failed: %v", c, err)
			}
			if got != c {
				t.Errorf("round trip (TagRGB=%v): expected %v (%s), got %v (%s)",
					opts.TagRGB, c, c.Variant(), got, got.Variant())
			}

			parsed, err := Parse(c.Format(opts))
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", c.Format(opts), err)
			}
			if parsed != c {
				t.Errorf("text round trip: expected %v, got %v", c, parsed)
			}
		}
	}
}

func TestEncode_PreservesVariantThroughEdit(t *testing.T) {
	c, err := Parse("hsv360 { 200 100 50 }")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	v, _ := c.HSVInt()
	v.V = 75
	edited := v.Color()

	if got := edited.String(); got != "hsv360 { 200 100 75 }" {
		t.Errorf("expected hsv360 shape preserved, got %q", got)
	}
}

func TestColor_YAML(t *testing.T) {
	type record struct {
		Name  string `yaml:"name"`
		Color Color  `yaml:"color"`
	}

	in := record{Name: "swedish", Color: HSV(0.6, 0.5, 0.8)}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}

	var out record
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v\n%s", in, out, data)
	}
}
