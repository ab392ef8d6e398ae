// Package formats provides decoders for Victoria 3 game data files.
//
// Every file under common/ is a list of named records:
//
//	swedish = {
//		color = { 8 84 160 }
//		religion = protestant
//		...
//	}
//
// Parse functions take file contents and return the records keyed by name.
// Load functions read the file first. Records that carry a color keep it in
// the variant the file used, so Marshal functions write it back unchanged.
package formats

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Faultbox/vicky3-mod/pkg/color"
	"github.com/Faultbox/vicky3-mod/pkg/encoding"
	"github.com/Faultbox/vicky3-mod/pkg/script"
)

// Record decode errors.
var (
	ErrMissingField = errors.New("required field missing")
	ErrNotRecord    = errors.New("top-level entry is not a record block")
)

// FieldError reports an invalid or missing field of a named record. Its
// message names the record, the field, the attempted value and the cause.
type FieldError struct {
	Record string
	Field  string
	Line   int
	Value  string // attempted value in script syntax, empty when missing
	Err    error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Err)
	}
	return fmt.Sprintf("%s.%s (line %d): invalid value %s: %v", e.Record, e.Field, e.Line, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// fieldReader decodes fields of one record block. The first error sticks;
// later reads return zero values so decoders can read every field and check
// err once.
type fieldReader struct {
	record string
	block  *script.Block
	err    error
}

func newFieldReader(record string, b *script.Block) *fieldReader {
	return &fieldReader{record: record, block: b}
}

func (r *fieldReader) fail(field string, v script.Value, err error) {
	if r.err != nil {
		return
	}
	fe := &FieldError{Record: r.record, Field: field, Err: err}
	if err != ErrMissingField {
		fe.Line = v.Line
		fe.Value = v.String()
	}
	r.err = fe
}

func (r *fieldReader) lookup(field string, required bool) (script.Value, bool) {
	v, ok := r.block.Get(field)
	if !ok && required {
		r.fail(field, v, ErrMissingField)
	}
	return v, ok && r.err == nil
}

func (r *fieldReader) color(field string) color.Color {
	v, ok := r.lookup(field, true)
	if !ok {
		return color.Color{}
	}
	c, err := color.FromValue(v)
	if err != nil {
		r.fail(field, v, err)
	}
	return c
}

func (r *fieldReader) str(field string, required bool) string {
	v, ok := r.lookup(field, required)
	if !ok {
		return ""
	}
	if v.IsBlock() {
		r.fail(field, v, script.ErrNotScalar)
		return ""
	}
	return v.Text
}

func (r *fieldReader) strs(field string, required bool) []string {
	v, ok := r.lookup(field, required)
	if !ok {
		return nil
	}
	out, err := v.Strings()
	if err != nil {
		r.fail(field, v, err)
	}
	return out
}

func (r *fieldReader) boolean(field string, def bool) bool {
	v, ok := r.lookup(field, false)
	if !ok {
		return def
	}
	b, err := v.Bool()
	if err != nil {
		r.fail(field, v, err)
	}
	return b
}

func (r *fieldReader) u8(field string) uint8 {
	v, ok := r.lookup(field, true)
	if !ok {
		return 0
	}
	if v.IsBlock() {
		r.fail(field, v, script.ErrNotScalar)
		return 0
	}
	n, err := strconv.ParseUint(v.Text, 10, 8)
	if err != nil {
		r.fail(field, v, err)
	}
	return uint8(n)
}

func (r *fieldReader) float(field string) float32 {
	v, ok := r.lookup(field, false)
	if !ok {
		return 0
	}
	f, err := v.Float()
	if err != nil {
		r.fail(field, v, err)
	}
	return float32(f)
}

func (r *fieldReader) optUint(field string) *uint32 {
	v, ok := r.lookup(field, false)
	if !ok {
		return nil
	}
	if v.IsBlock() {
		r.fail(field, v, script.ErrNotScalar)
		return nil
	}
	n, err := strconv.ParseUint(v.Text, 10, 32)
	if err != nil {
		r.fail(field, v, err)
		return nil
	}
	u := uint32(n)
	return &u
}

// parseRecords decodes every top-level `name = { ... }` entry with decode.
// Script variables (`@name = value`) are skipped.
func parseRecords[T any](data []byte, decode func(name string, b *script.Block) (*T, error)) (map[string]*T, error) {
	root, err := parseScript(data)
	if err != nil {
		return nil, err
	}

	records := make(map[string]*T, len(root.Entries))
	for _, e := range root.Entries {
		if strings.HasPrefix(e.Key, "@") {
			continue
		}
		if e.Key == "" || !e.Value.IsBlock() {
			return nil, fmt.Errorf("line %d: %w", e.Line, ErrNotRecord)
		}
		rec, err := decode(e.Key, e.Value.Block)
		if err != nil {
			return nil, err
		}
		records[e.Key] = rec
	}
	return records, nil
}

func parseScript(data []byte) (*script.Block, error) {
	text, err := encoding.DecodeScript(data)
	if err != nil {
		return nil, fmt.Errorf("decoding text: %w", err)
	}
	return script.Parse(text)
}

func loadFile[T any](path string, parse func([]byte) (map[string]*T, error)) (map[string]*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	records, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// marshalRecords writes records sorted by name, each encoded by block.
func marshalRecords[T any](records map[string]*T, block func(*T) *script.Block) []byte {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	root := &script.Block{}
	for _, name := range names {
		root.Add(name, script.BlockValue(block(records[name])))
	}
	return script.Marshal(root)
}

func stringList(items []string) script.Value {
	b := &script.Block{}
	for _, s := range items {
		b.Append(script.Scalar(s))
	}
	return script.BlockValue(b)
}

func yesNo(b bool) script.Value {
	if b {
		return script.Scalar("yes")
	}
	return script.Scalar("no")
}
