package formats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Faultbox/vicky3-mod/pkg/color"
	"github.com/Faultbox/vicky3-mod/pkg/script"
)

// Culture is a record from common/cultures.
type Culture struct {
	Color                  color.Color    `yaml:"color"`
	Religion               string         `yaml:"religion"`
	Traits                 []string       `yaml:"traits,omitempty"`
	MaleCommonFirstNames   []string       `yaml:"male_common_first_names,omitempty"`
	FemaleCommonFirstNames []string       `yaml:"female_common_first_names,omitempty"`
	NobleLastNames         []string       `yaml:"noble_last_names,omitempty"`
	CommonLastNames        []string       `yaml:"common_last_names,omitempty"`
	MaleRegalFirstNames    []string       `yaml:"male_regal_first_names,omitempty"`
	FemaleRegalFirstNames  []string       `yaml:"female_regal_first_names,omitempty"`
	Graphics               string         `yaml:"graphics"`
	Ethnicities            map[int]string `yaml:"ethnicities"` // weight -> ethnicity
}

// ParseCultures decodes a cultures file.
func ParseCultures(data []byte) (map[string]*Culture, error) {
	return parseRecords(data, decodeCulture)
}

// LoadCultures reads and decodes a cultures file.
func LoadCultures(path string) (map[string]*Culture, error) {
	return loadFile(path, ParseCultures)
}

func decodeCulture(name string, b *script.Block) (*Culture, error) {
	r := newFieldReader(name, b)
	c := &Culture{
		Color:                  r.color("color"),
		Religion:               r.str("religion", true),
		Traits:                 r.strs("traits", false),
		MaleCommonFirstNames:   r.strs("male_common_first_names", false),
		FemaleCommonFirstNames: r.strs("female_common_first_names", false),
		NobleLastNames:         r.strs("noble_last_names", false),
		CommonLastNames:        r.strs("common_last_names", false),
		MaleRegalFirstNames:    r.strs("male_regal_first_names", false),
		FemaleRegalFirstNames:  r.strs("female_regal_first_names", false),
		Graphics:               r.str("graphics", true),
		Ethnicities:            decodeEthnicities(r),
	}
	if r.err != nil {
		return nil, r.err
	}
	return c, nil
}

func decodeEthnicities(r *fieldReader) map[int]string {
	v, ok := r.lookup("ethnicities", true)
	if !ok {
		return nil
	}
	if !v.IsBlock() {
		r.fail("ethnicities", v, script.ErrNotBlock)
		return nil
	}
	out := make(map[int]string, len(v.Block.Entries))
	for _, e := range v.Block.Entries {
		weight, err := strconv.Atoi(e.Key)
		if err != nil {
			r.fail("ethnicities", v, fmt.Errorf("invalid weight %q: %w", e.Key, err))
			return nil
		}
		out[weight] = e.Value.Text
	}
	return out
}

// Block encodes the culture as a record block.
func (c *Culture) Block(opts color.EncodeOptions) *script.Block {
	b := &script.Block{}
	b.Add("color", color.ToValue(c.Color, opts))
	b.Add("religion", script.Scalar(c.Religion))
	lists := []struct {
		key   string
		items []string
	}{
		{"traits", c.Traits},
		{"male_common_first_names", c.MaleCommonFirstNames},
		{"female_common_first_names", c.FemaleCommonFirstNames},
		{"noble_last_names", c.NobleLastNames},
		{"common_last_names", c.CommonLastNames},
		{"male_regal_first_names", c.MaleRegalFirstNames},
		{"female_regal_first_names", c.FemaleRegalFirstNames},
	}
	for _, l := range lists {
		if len(l.items) > 0 {
			b.Add(l.key, stringList(l.items))
		}
	}
	b.Add("graphics", script.Scalar(c.Graphics))

	weights := make([]int, 0, len(c.Ethnicities))
	for w := range c.Ethnicities {
		weights = append(weights, w)
	}
	sort.Ints(weights)
	eth := &script.Block{}
	for _, w := range weights {
		eth.Add(strconv.Itoa(w), script.Scalar(c.Ethnicities[w]))
	}
	b.Add("ethnicities", script.BlockValue(eth))
	return b
}

// MarshalCultures encodes cultures sorted by name.
func MarshalCultures(cultures map[string]*Culture, opts color.EncodeOptions) []byte {
	return marshalRecords(cultures, func(c *Culture) *script.Block { return c.Block(opts) })
}
