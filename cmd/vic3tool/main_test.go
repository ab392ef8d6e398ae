package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vicky3-mod/internal/game"
	"github.com/Faultbox/vicky3-mod/pkg/color"
	"github.com/Faultbox/vicky3-mod/pkg/formats"
)

func TestParseColorArg(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#0854a0", color.RGB(8, 84, 160)},
		{"8 84 160", color.RGB(8, 84, 160)},
		{"hsv360 { 200 100 50 }", color.HSV360(200, 100, 50)},
	}
	for _, tt := range tests {
		got, err := parseColorArg(tt.in)
		if err != nil {
			t.Fatalf("parseColorArg(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseColorArg(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDescribeColor(t *testing.T) {
	var buf bytes.Buffer
	if err := describeColor(&buf, color.RGB(255, 0, 0), color.EncodeOptions{}); err != nil {
		t.Fatalf("describeColor failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"variant  rgb\n",
		"rgb      { 255 0 0 }\n",
		"hsv360   hsv360 { 0 255 255 }\n",
		"hsv      hsv { 0.0 1.0 1.0 }\n",
		"hex      #ff0000\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestConvertRecords(t *testing.T) {
	data := []byte(`SWE = { color = { 255 0 0 } country_type = recognized tier = kingdom cultures = { swedish } }`)

	out, n, err := convertRecords("country", data, color.HSVIntVariant, color.EncodeOptions{})
	if err != nil {
		t.Fatalf("convertRecords failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 record, got %d", n)
	}

	defs, err := formats.ParseCountryDefinitions(out)
	if err != nil {
		t.Fatalf("converted output does not parse: %v\n%s", err, out)
	}
	if defs["SWE"].Color != color.HSV360(0, 255, 255) {
		t.Errorf("expected hsv360 red, got %v", defs["SWE"].Color)
	}

	if _, _, err := convertRecords("pop", data, color.RGBIntVariant, color.EncodeOptions{}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

type memFiles map[string]string

func (m memFiles) Load(path string) ([]byte, error) {
	return []byte(m[path]), nil
}

func TestExportYAML(t *testing.T) {
	files := memFiles{
		"religions.txt": `protestant = { texture = "p.dds" traits = { christian } color = hsv{ 0.6 0.5 0.8 } }`,
		"countries.txt": `SWE = { color = { 8 84 160 } country_type = recognized tier = kingdom cultures = { swedish } }`,
	}
	src := game.Sources{Religions: []string{"religions.txt"}, CountryDefinitions: []string{"countries.txt"}}
	db, err := game.Load(context.Background(), files, src, game.Options{Workers: 1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var buf bytes.Buffer
	if err := exportYAML(&buf, db); err != nil {
		t.Fatalf("exportYAML failed: %v", err)
	}

	var back struct {
		Religions map[string]struct {
			Color color.Color `yaml:"color"`
		} `yaml:"religions"`
		CountryDefinitions map[string]struct {
			Tier formats.CountryTier `yaml:"tier"`
		} `yaml:"country_definitions"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("exported YAML does not parse: %v\n%s", err, buf.String())
	}
	if back.Religions["protestant"].Color != color.HSV(0.6, 0.5, 0.8) {
		t.Errorf("unexpected exported color %v", back.Religions["protestant"].Color)
	}
	if back.CountryDefinitions["SWE"].Tier != formats.TierKingdom {
		t.Errorf("unexpected exported tier %s", back.CountryDefinitions["SWE"].Tier)
	}
	if !strings.Contains(buf.String(), "tier: kingdom") {
		t.Errorf("expected tier written by name:\n%s", buf.String())
	}
}
