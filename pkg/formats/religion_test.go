package formats

import (
	"strings"
	"testing"

	"github.com/Faultbox/vicky3-mod/pkg/color"
)

func TestLoadReligions_BOM(t *testing.T) {
	religions, err := LoadReligions("testdata/religions.txt")
	if err != nil {
		t.Fatalf("LoadReligions failed: %v", err)
	}

	prot, ok := religions["protestant"]
	if !ok {
		t.Fatalf("protestant missing, got keys %v", keys(religions))
	}
	if prot.Color != color.HSV360(220, 60, 80) {
		t.Errorf("expected hsv360 220 60 80, got %v", prot.Color)
	}
	if prot.Texture != "gfx/interface/icons/religion_icons/protestant.dds" {
		t.Errorf("unexpected texture %q", prot.Texture)
	}

	sunni := religions["sunni"]
	if sunni.Color != color.RGBF(0.1, 0.6, 0.2) {
		t.Errorf("expected rgb float color, got %v (%s)", sunni.Color, sunni.Color.Variant())
	}
	if len(sunni.Taboos) != 2 || sunni.Taboos[0] != "liquor" {
		t.Errorf("unexpected taboos %v", sunni.Taboos)
	}
}

func TestMarshalReligions(t *testing.T) {
	religions, err := LoadReligions("testdata/religions.txt")
	if err != nil {
		t.Fatalf("LoadReligions failed: %v", err)
	}
	out := string(MarshalReligions(religions, color.EncodeOptions{}))

	for _, want := range []string{
		`texture = "gfx/interface/icons/religion_icons/protestant.dds"`,
		"color = hsv360 { 220 60 80 }",
		"color = { 0.1 0.6 0.2 }",
		"taboos = { liquor wine }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func keys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
