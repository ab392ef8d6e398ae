package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/vicky3-mod/pkg/color"
)

const countryDefinitions = `
SWE = {
	color = { 8 84 160 }
	country_type = recognized
	tier = kingdom
	cultures = { swedish }
	capital = STATE_SVEALAND
}

NEJ = {
	color = hsv360{ 30 200 150 }
	country_type = unrecognized
	tier = city_state
	cultures = { sami }
	is_named_from_capital = yes
}
`

func TestParseCountryDefinitions(t *testing.T) {
	defs, err := ParseCountryDefinitions([]byte(countryDefinitions))
	if err != nil {
		t.Fatalf("ParseCountryDefinitions failed: %v", err)
	}

	swe := defs["SWE"]
	if swe.Tier != TierKingdom || swe.CountryType != "recognized" || swe.Capital != "STATE_SVEALAND" {
		t.Errorf("unexpected SWE definition %+v", swe)
	}
	if swe.IsNamedFromCapital {
		t.Error("is_named_from_capital should default to no")
	}

	nej := defs["NEJ"]
	if nej.Capital != "" || !nej.IsNamedFromCapital || nej.Tier != TierCityState {
		t.Errorf("unexpected NEJ definition %+v", nej)
	}
	if nej.Color != color.HSV360(30, 200, 150) {
		t.Errorf("expected hsv360 color, got %v", nej.Color)
	}
}

func TestParseCountryDefinitions_UnknownTier(t *testing.T) {
	_, err := ParseCountryDefinitions([]byte(`SWE = { color = { 1 2 3 } country_type = recognized tier = duchy cultures = { swedish } }`))
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "tier" || fe.Value != "duchy" {
		t.Errorf("expected tier field error with value duchy, got %v", err)
	}
	for _, name := range []string{"city_state", "grand_principality", "hegemony"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should list %s: %v", name, err)
		}
	}
}

func TestCountryTier_Text(t *testing.T) {
	for i, name := range tierNames {
		tier, err := ParseCountryTier(name)
		if err != nil || tier != CountryTier(i) {
			t.Errorf("ParseCountryTier(%s) = %v, %v", name, tier, err)
		}
		if tier.String() != name {
			t.Errorf("expected %s, got %s", name, tier)
		}
	}

	if _, err := CountryTier(42).MarshalText(); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
}

func TestMarshalCountryDefinitions(t *testing.T) {
	defs, err := ParseCountryDefinitions([]byte(countryDefinitions))
	if err != nil {
		t.Fatalf("ParseCountryDefinitions failed: %v", err)
	}

	out := MarshalCountryDefinitions(defs, color.EncodeOptions{})
	again, err := ParseCountryDefinitions(out)
	if err != nil {
		t.Fatalf("re-parse failed: %v\n%s", err, out)
	}
	for tag, def := range defs {
		got := again[tag]
		if got.Color != def.Color || got.Tier != def.Tier || got.Capital != def.Capital ||
			got.IsNamedFromCapital != def.IsNamedFromCapital {
			t.Errorf("%s changed after round trip: %+v -> %+v", tag, def, got)
		}
	}
	if !strings.Contains(string(out), "color = hsv360 { 30 200 150 }") {
		t.Errorf("expected hsv360 color preserved:\n%s", out)
	}
}

func TestParseCountryTypes(t *testing.T) {
	types, err := ParseCountryTypes([]byte(`
recognized = {
	is_colonizable = no
	is_unrecognized = no
	uses_prestige = yes
	has_events = yes
	has_military = yes
	has_economy = yes
	has_politics = yes
	can_research = yes
	default_rank = minor_power
}
decentralized = {
	is_colonizable = yes
	is_unrecognized = yes
	default_rank = decentralized_power
}
`))
	if err != nil {
		t.Fatalf("ParseCountryTypes failed: %v", err)
	}

	rec := types["recognized"]
	if rec.IsColonizable || !rec.UsesPrestige || !rec.CanResearch || rec.DefaultRank != "minor_power" {
		t.Errorf("unexpected recognized type %+v", rec)
	}
	dec := types["decentralized"]
	if !dec.IsColonizable || dec.HasMilitary {
		t.Errorf("unexpected decentralized type %+v", dec)
	}

	if _, err := ParseCountryTypes([]byte(`x = { default_rank = a has_events = maybe }`)); err == nil {
		t.Error("expected error for invalid boolean")
	}
}

func TestParseCountryRanks(t *testing.T) {
	ranks, err := ParseCountryRanks([]byte(`
great_power = {
	rank_value = 5
	icon_index = 4
	enforce_subject_rank_check = yes
	prestige_relative_threshold = 0.4
	min_generals = 3
	diplo_pact_cost = 0.5
	possible = { always = yes }
}
decentralized_power = {
	rank_value = 0
	icon_index = 0
	can_colonize = no
}
`))
	if err != nil {
		t.Fatalf("ParseCountryRanks failed: %v", err)
	}

	gp := ranks["great_power"]
	if gp.RankValue != 5 || gp.IconIndex != 4 || !gp.EnforceSubjectRankCheck {
		t.Errorf("unexpected great_power %+v", gp)
	}
	if gp.PrestigeRelativeThreshold != 0.4 || gp.DiploPactCost != 0.5 {
		t.Errorf("unexpected thresholds %+v", gp)
	}
	if gp.MinGenerals == nil || *gp.MinGenerals != 3 {
		t.Errorf("expected min_generals 3, got %v", gp.MinGenerals)
	}
	if gp.MaxCommanderRankRandom != nil {
		t.Error("expected unset max_commander_rank_random")
	}
	if !gp.CanColonize {
		t.Error("can_colonize should default to yes")
	}
	if ranks["decentralized_power"].CanColonize {
		t.Error("expected can_colonize = no")
	}
}

func TestParseCountryRanks_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"missing rank value", `r = { icon_index = 1 }`, "rank_value"},
		{"rank value too large", `r = { rank_value = 300 icon_index = 1 }`, "rank_value"},
		{"negative generals", `r = { rank_value = 1 icon_index = 1 min_generals = -2 }`, "min_generals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCountryRanks([]byte(tt.input))
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fe.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, fe.Field)
			}
		})
	}
}
