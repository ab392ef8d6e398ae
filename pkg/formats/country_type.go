package formats

import "github.com/Faultbox/vicky3-mod/pkg/script"

// CountryType is a record from common/country_types, e.g. recognized or
// decentralized.
type CountryType struct {
	IsColonizable  bool   `yaml:"is_colonizable"`
	IsUnrecognized bool   `yaml:"is_unrecognized"`
	UsesPrestige   bool   `yaml:"uses_prestige"`
	HasEvents      bool   `yaml:"has_events"`
	HasMilitary    bool   `yaml:"has_military"`
	HasEconomy     bool   `yaml:"has_economy"`
	HasPolitics    bool   `yaml:"has_politics"`
	CanResearch    bool   `yaml:"can_research"`
	DefaultRank    string `yaml:"default_rank"`
}

// ParseCountryTypes decodes a country types file.
func ParseCountryTypes(data []byte) (map[string]*CountryType, error) {
	return parseRecords(data, func(name string, b *script.Block) (*CountryType, error) {
		r := newFieldReader(name, b)
		ct := &CountryType{
			IsColonizable:  r.boolean("is_colonizable", false),
			IsUnrecognized: r.boolean("is_unrecognized", false),
			UsesPrestige:   r.boolean("uses_prestige", false),
			HasEvents:      r.boolean("has_events", false),
			HasMilitary:    r.boolean("has_military", false),
			HasEconomy:     r.boolean("has_economy", false),
			HasPolitics:    r.boolean("has_politics", false),
			CanResearch:    r.boolean("can_research", false),
			DefaultRank:    r.str("default_rank", true),
		}
		if r.err != nil {
			return nil, r.err
		}
		return ct, nil
	})
}

// LoadCountryTypes reads and decodes a country types file.
func LoadCountryTypes(path string) (map[string]*CountryType, error) {
	return loadFile(path, ParseCountryTypes)
}
