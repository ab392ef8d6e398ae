package game

import (
	"fmt"

	"github.com/Faultbox/vicky3-mod/internal/config"
	"github.com/Faultbox/vicky3-mod/pkg/formats"
)

// Kind identifies a record kind.
type Kind int

const (
	KindCulture Kind = iota
	KindReligion
	KindCountryDefinition
	KindCountryType
	KindCountryRank
	KindState
)

// Kinds lists every record kind in load order.
var Kinds = []Kind{
	KindCulture,
	KindReligion,
	KindCountryDefinition,
	KindCountryType,
	KindCountryRank,
	KindState,
}

func (k Kind) String() string {
	switch k {
	case KindCulture:
		return "culture"
	case KindReligion:
		return "religion"
	case KindCountryDefinition:
		return "country definition"
	case KindCountryType:
		return "country type"
	case KindCountryRank:
		return "country rank"
	case KindState:
		return "state"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sources lists data files per record kind, relative to the data roots.
// Within a kind, records in later files replace same-named earlier ones.
type Sources struct {
	Cultures           []string
	Religions          []string
	CountryDefinitions []string
	CountryTypes       []string
	CountryRanks       []string
	States             []string
}

// SourcesFrom copies the file lists out of the data config.
func SourcesFrom(cfg config.DataConfig) Sources {
	return Sources{
		Cultures:           cfg.Cultures,
		Religions:          cfg.Religions,
		CountryDefinitions: cfg.CountryDefinitions,
		CountryTypes:       cfg.CountryTypes,
		CountryRanks:       cfg.CountryRanks,
		States:             cfg.States,
	}
}

// Files returns the files listed for kind.
func (s Sources) Files(kind Kind) []string {
	switch kind {
	case KindCulture:
		return s.Cultures
	case KindReligion:
		return s.Religions
	case KindCountryDefinition:
		return s.CountryDefinitions
	case KindCountryType:
		return s.CountryTypes
	case KindCountryRank:
		return s.CountryRanks
	case KindState:
		return s.States
	}
	return nil
}

// Lookup reports which kind a file is listed under.
func (s Sources) Lookup(file string) (Kind, bool) {
	for _, k := range Kinds {
		for _, f := range s.Files(k) {
			if f == file {
				return k, true
			}
		}
	}
	return 0, false
}

// Decode parses data as a file of the given kind and returns the number of
// records it defines.
func Decode(kind Kind, data []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch kind {
	case KindCulture:
		n, err = count(formats.ParseCultures(data))
	case KindReligion:
		n, err = count(formats.ParseReligions(data))
	case KindCountryDefinition:
		n, err = count(formats.ParseCountryDefinitions(data))
	case KindCountryType:
		n, err = count(formats.ParseCountryTypes(data))
	case KindCountryRank:
		n, err = count(formats.ParseCountryRanks(data))
	case KindState:
		n, err = count(formats.ParseStates(data))
	default:
		err = fmt.Errorf("unknown record kind %s", kind)
	}
	return n, err
}

func count[T any](records map[string]*T, err error) (int, error) {
	return len(records), err
}
