package formats

import (
	"github.com/Faultbox/vicky3-mod/pkg/color"
	"github.com/Faultbox/vicky3-mod/pkg/script"
)

// Religion is a record from common/religions.
type Religion struct {
	Texture string      `yaml:"texture"`
	Traits  []string    `yaml:"traits"` // religion traits, distinct from culture traits
	Color   color.Color `yaml:"color"`
	Taboos  []string    `yaml:"taboos,omitempty"`
}

// ParseReligions decodes a religions file.
func ParseReligions(data []byte) (map[string]*Religion, error) {
	return parseRecords(data, func(name string, b *script.Block) (*Religion, error) {
		r := newFieldReader(name, b)
		rel := &Religion{
			Texture: r.str("texture", true),
			Traits:  r.strs("traits", true),
			Color:   r.color("color"),
			Taboos:  r.strs("taboos", false),
		}
		if r.err != nil {
			return nil, r.err
		}
		return rel, nil
	})
}

// LoadReligions reads and decodes a religions file.
func LoadReligions(path string) (map[string]*Religion, error) {
	return loadFile(path, ParseReligions)
}

// Block encodes the religion as a record block.
func (rel *Religion) Block(opts color.EncodeOptions) *script.Block {
	b := &script.Block{}
	b.Add("texture", script.Quote(rel.Texture))
	b.Add("traits", stringList(rel.Traits))
	b.Add("color", color.ToValue(rel.Color, opts))
	if len(rel.Taboos) > 0 {
		b.Add("taboos", stringList(rel.Taboos))
	}
	return b
}

// MarshalReligions encodes religions sorted by name.
func MarshalReligions(religions map[string]*Religion, opts color.EncodeOptions) []byte {
	return marshalRecords(religions, func(rel *Religion) *script.Block { return rel.Block(opts) })
}
