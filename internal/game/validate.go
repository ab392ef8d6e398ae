package game

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// RefError reports a record field naming a record that is not defined.
type RefError struct {
	Kind   Kind
	Record string
	Field  string
	Target Kind
	Name   string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("%s %s: %s %q is not a defined %s", e.Kind, e.Record, e.Field, e.Name, e.Target)
}

// Validate checks references between records: culture religions, country
// cultures, types and capitals, country type ranks and state owners.
// References into a kind with no source files are not checked. All problems
// are combined into one error; use multierr.Errors to list them.
func (db *Database) Validate() error {
	v := validator{db: db}

	for _, name := range sortedKeys(db.Cultures) {
		v.ref(KindCulture, name, "religion", KindReligion, db.Cultures[name].Religion)
	}
	for _, name := range sortedKeys(db.CountryDefinitions) {
		def := db.CountryDefinitions[name]
		for _, c := range def.Cultures {
			v.ref(KindCountryDefinition, name, "cultures", KindCulture, c)
		}
		v.ref(KindCountryDefinition, name, "country_type", KindCountryType, def.CountryType)
		if def.Capital != "" {
			v.ref(KindCountryDefinition, name, "capital", KindState, def.Capital)
		}
	}
	for _, name := range sortedKeys(db.CountryTypes) {
		v.ref(KindCountryType, name, "default_rank", KindCountryRank, db.CountryTypes[name].DefaultRank)
	}
	for _, name := range sortedKeys(db.States) {
		for _, owner := range db.States[name].Owners() {
			v.ref(KindState, name, "create_state.country", KindCountryDefinition, owner)
		}
	}
	return v.err
}

type validator struct {
	db  *Database
	err error
}

func (v *validator) ref(kind Kind, record, field string, target Kind, name string) {
	if len(v.db.sources.Files(target)) == 0 || v.db.has(target, name) {
		return
	}
	v.err = multierr.Append(v.err, &RefError{Kind: kind, Record: record, Field: field, Target: target, Name: name})
}

func (db *Database) has(kind Kind, name string) bool {
	var ok bool
	switch kind {
	case KindCulture:
		_, ok = db.Cultures[name]
	case KindReligion:
		_, ok = db.Religions[name]
	case KindCountryDefinition:
		_, ok = db.CountryDefinitions[name]
	case KindCountryType:
		_, ok = db.CountryTypes[name]
	case KindCountryRank:
		_, ok = db.CountryRanks[name]
	case KindState:
		_, ok = db.States[name]
	}
	return ok
}

func sortedKeys[T any](m map[string]*T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
