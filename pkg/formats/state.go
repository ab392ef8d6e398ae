package formats

import (
	"fmt"
	"strings"

	"github.com/Faultbox/vicky3-mod/pkg/script"
)

// IdentKind is the scope prefix of an identifier.
type IdentKind uint8

const (
	IdentUnknown IdentKind = iota // no prefix, or one other than c: and s:
	IdentCountry                  // c:SWE
	IdentState                    // s:STATE_SVEALAND
)

// Ident is a scoped reference such as c:SWE. Unprefixed text, and prefixes
// other than c: and s: (cu:swedish), keep the full text as Value.
type Ident struct {
	Kind  IdentKind
	Value string
}

// ParseIdent splits a scope prefix off s.
func ParseIdent(s string) Ident {
	switch {
	case strings.HasPrefix(s, "c:"):
		return Ident{Kind: IdentCountry, Value: s[2:]}
	case strings.HasPrefix(s, "s:"):
		return Ident{Kind: IdentState, Value: s[2:]}
	}
	return Ident{Value: s}
}

func (id Ident) String() string {
	switch id.Kind {
	case IdentCountry:
		return "c:" + id.Value
	case IdentState:
		return "s:" + id.Value
	}
	return id.Value
}

// MarshalText implements encoding.TextMarshaler.
func (id Ident) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Ident) UnmarshalText(text []byte) error {
	*id = ParseIdent(string(text))
	return nil
}

// StateCreation is one create_state block: the provinces a country owns in
// the state at game start.
type StateCreation struct {
	Country        Ident    `yaml:"country"`
	OwnedProvinces []string `yaml:"owned_provinces"` // hex province ids, e.g. x1A2B3C
	StateTypes     []Ident  `yaml:"state_type,omitempty"`
}

// StateDefinition is the history of one state region.
type StateDefinition struct {
	States    []StateCreation `yaml:"create_state"`
	Homelands []Ident         `yaml:"add_homeland,omitempty"`
}

// ParseStates decodes a history/states file. Entries of every STATES block
// are collected, keyed by state name without the s: prefix. A state listed in
// more than one block keeps the later definition.
func ParseStates(data []byte) (map[string]*StateDefinition, error) {
	root, err := parseScript(data)
	if err != nil {
		return nil, err
	}

	defs := make(map[string]*StateDefinition)
	for _, v := range root.All("STATES") {
		if !v.IsBlock() {
			return nil, fmt.Errorf("line %d: STATES: %w", v.Line, script.ErrNotBlock)
		}
		for _, e := range v.Block.Entries {
			if e.Key == "" || !e.Value.IsBlock() {
				return nil, fmt.Errorf("line %d: %w", e.Line, ErrNotRecord)
			}
			def, err := decodeStateDefinition(e.Key, e.Value.Block)
			if err != nil {
				return nil, err
			}
			defs[ParseIdent(e.Key).Value] = def
		}
	}
	return defs, nil
}

// LoadStates reads and decodes a history/states file.
func LoadStates(path string) (map[string]*StateDefinition, error) {
	return loadFile(path, ParseStates)
}

func decodeStateDefinition(name string, b *script.Block) (*StateDefinition, error) {
	def := &StateDefinition{}
	for _, v := range b.All("create_state") {
		if !v.IsBlock() {
			return nil, &FieldError{Record: name, Field: "create_state", Line: v.Line, Value: v.String(), Err: script.ErrNotBlock}
		}
		sc, err := decodeStateCreation(name, v.Block)
		if err != nil {
			return nil, err
		}
		def.States = append(def.States, sc)
	}
	for _, v := range b.All("add_homeland") {
		if v.IsBlock() {
			return nil, &FieldError{Record: name, Field: "add_homeland", Line: v.Line, Value: v.String(), Err: script.ErrNotScalar}
		}
		def.Homelands = append(def.Homelands, ParseIdent(v.Text))
	}
	return def, nil
}

func decodeStateCreation(name string, b *script.Block) (StateCreation, error) {
	r := newFieldReader(name, b)
	sc := StateCreation{
		Country:        ParseIdent(r.str("country", true)),
		OwnedProvinces: r.strs("owned_provinces", true),
	}
	for _, v := range b.All("state_type") {
		if v.IsBlock() {
			r.fail("state_type", v, script.ErrNotScalar)
			break
		}
		sc.StateTypes = append(sc.StateTypes, ParseIdent(v.Text))
	}
	if r.err != nil {
		return StateCreation{}, r.err
	}
	return sc, nil
}

// Owners returns the country tags holding provinces in the state.
func (d *StateDefinition) Owners() []string {
	out := make([]string, 0, len(d.States))
	for _, sc := range d.States {
		out = append(out, sc.Country.Value)
	}
	return out
}
