package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/vicky3-mod/pkg/color"
	"github.com/Faultbox/vicky3-mod/pkg/script"
)

// ErrUnknownTier is wrapped by tier parse failures.
var ErrUnknownTier = errors.New("unknown country tier")

// CountryTier is the size class of a country.
type CountryTier uint8

// Country tiers, smallest first.
const (
	TierCityState CountryTier = iota
	TierPrincipality
	TierGrandPrincipality
	TierKingdom
	TierEmpire
	TierHegemony // only India in the base game
)

var tierNames = []string{
	"city_state",
	"principality",
	"grand_principality",
	"kingdom",
	"empire",
	"hegemony",
}

func (t CountryTier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("CountryTier(%d)", t)
}

// ParseCountryTier maps a script keyword to a tier.
func ParseCountryTier(s string) (CountryTier, error) {
	for i, name := range tierNames {
		if s == name {
			return CountryTier(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q, expected one of %s", ErrUnknownTier, s, strings.Join(tierNames, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (t CountryTier) MarshalText() ([]byte, error) {
	if int(t) >= len(tierNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, t)
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *CountryTier) UnmarshalText(text []byte) error {
	v, err := ParseCountryTier(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// CountryDefinition is a record from common/country_definitions.
type CountryDefinition struct {
	Color              color.Color `yaml:"color"`
	CountryType        string      `yaml:"country_type"`
	Tier               CountryTier `yaml:"tier"`
	Cultures           []string    `yaml:"cultures"`
	Capital            string      `yaml:"capital,omitempty"` // empty when the country has no capital state
	IsNamedFromCapital bool        `yaml:"is_named_from_capital,omitempty"`
}

// ParseCountryDefinitions decodes a country definitions file.
func ParseCountryDefinitions(data []byte) (map[string]*CountryDefinition, error) {
	return parseRecords(data, func(name string, b *script.Block) (*CountryDefinition, error) {
		r := newFieldReader(name, b)
		def := &CountryDefinition{
			Color:              r.color("color"),
			CountryType:        r.str("country_type", true),
			Cultures:           r.strs("cultures", true),
			Capital:            r.str("capital", false),
			IsNamedFromCapital: r.boolean("is_named_from_capital", false),
		}
		if tier := r.str("tier", true); r.err == nil {
			t, err := ParseCountryTier(tier)
			if err != nil {
				v, _ := b.Get("tier")
				r.fail("tier", v, err)
			}
			def.Tier = t
		}
		if r.err != nil {
			return nil, r.err
		}
		return def, nil
	})
}

// LoadCountryDefinitions reads and decodes a country definitions file.
func LoadCountryDefinitions(path string) (map[string]*CountryDefinition, error) {
	return loadFile(path, ParseCountryDefinitions)
}

// Block encodes the definition as a record block.
func (d *CountryDefinition) Block(opts color.EncodeOptions) *script.Block {
	b := &script.Block{}
	b.Add("color", color.ToValue(d.Color, opts))
	b.Add("country_type", script.Scalar(d.CountryType))
	b.Add("tier", script.Scalar(d.Tier.String()))
	b.Add("cultures", stringList(d.Cultures))
	if d.Capital != "" {
		b.Add("capital", script.Scalar(d.Capital))
	}
	if d.IsNamedFromCapital {
		b.Add("is_named_from_capital", yesNo(true))
	}
	return b
}

// MarshalCountryDefinitions encodes definitions sorted by tag.
func MarshalCountryDefinitions(defs map[string]*CountryDefinition, opts color.EncodeOptions) []byte {
	return marshalRecords(defs, func(d *CountryDefinition) *script.Block { return d.Block(opts) })
}
