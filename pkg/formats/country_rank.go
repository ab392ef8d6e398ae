package formats

import "github.com/Faultbox/vicky3-mod/pkg/script"

// CountryRank is a record from common/country_ranks.
type CountryRank struct {
	// RankValue orders ranks; higher ranks take priority and pick the icon.
	RankValue uint8 `yaml:"rank_value"`
	IconIndex uint8 `yaml:"icon_index"`

	EnforceSubjectRankCheck bool `yaml:"enforce_subject_rank_check"`

	// Prestige thresholds, as a multiple of the average and relative to the
	// highest prestige country.
	PrestigeAverageThreshold  float32 `yaml:"prestige_average_threshold"`
	PrestigeRelativeThreshold float32 `yaml:"prestige_relative_threshold"`

	MinGenerals            *uint32 `yaml:"min_generals,omitempty"`
	MaxCommanderRankRandom *uint32 `yaml:"max_commander_rank_random,omitempty"`
	MinCommanderRankRandom *uint32 `yaml:"min_commander_rank_random,omitempty"`

	CanColonize   bool    `yaml:"can_colonize"` // defaults to true
	DiploPactCost float32 `yaml:"diplo_pact_cost"`
}

// ParseCountryRanks decodes a country ranks file.
func ParseCountryRanks(data []byte) (map[string]*CountryRank, error) {
	return parseRecords(data, func(name string, b *script.Block) (*CountryRank, error) {
		r := newFieldReader(name, b)
		rank := &CountryRank{
			RankValue:                 r.u8("rank_value"),
			IconIndex:                 r.u8("icon_index"),
			EnforceSubjectRankCheck:   r.boolean("enforce_subject_rank_check", false),
			PrestigeAverageThreshold:  r.float("prestige_average_threshold"),
			PrestigeRelativeThreshold: r.float("prestige_relative_threshold"),
			MinGenerals:               r.optUint("min_generals"),
			MaxCommanderRankRandom:    r.optUint("max_commander_rank_random"),
			MinCommanderRankRandom:    r.optUint("min_commander_rank_random"),
			CanColonize:               r.boolean("can_colonize", true),
			DiploPactCost:             r.float("diplo_pact_cost"),
		}
		if r.err != nil {
			return nil, r.err
		}
		return rank, nil
	})
}

// LoadCountryRanks reads and decodes a country ranks file.
func LoadCountryRanks(path string) (map[string]*CountryRank, error) {
	return loadFile(path, ParseCountryRanks)
}
