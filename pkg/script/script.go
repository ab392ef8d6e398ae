// Package script parses and writes the Paradox key-value script format used by
// Victoria 3 game and mod data files.
//
// A file is a sequence of entries. An entry is either `key <op> value` or a bare
// value (array element). A value is a scalar, a quoted string, a `{ ... }`
// block, or a tagged block such as `rgb { 255 128 64 }`.
package script

import (
	"errors"
	"fmt"
	"strconv"
)

// Value errors.
var (
	ErrNotScalar = errors.New("value is not a scalar")
	ErrNotBlock  = errors.New("value is not a block")
)

// Op is the operator between a key and its value.
type Op string

// Operators understood by the parser.
const (
	OpAssign    Op = "="
	OpLess      Op = "<"
	OpGreater   Op = ">"
	OpLessEq    Op = "<="
	OpGreaterEq Op = ">="
	OpNotEq     Op = "!="
	OpExists    Op = "?="
)

// Value is a parsed script value.
//
// Exactly one shape is set: a scalar (Text, possibly Quoted), a block (Block
// with empty Tag), or a tagged block (Tag and Block).
type Value struct {
	Text   string
	Quoted bool
	Tag    string
	Block  *Block
	Line   int
}

// Entry is one element of a block. Key is empty for bare array elements.
type Entry struct {
	Key   string
	Op    Op
	Value Value
	Line  int
}

// Block is an ordered list of entries.
type Block struct {
	Entries []Entry
}

// Scalar creates an unquoted scalar value.
func Scalar(text string) Value {
	return Value{Text: text}
}

// Quote creates a quoted string value.
func Quote(text string) Value {
	return Value{Text: text, Quoted: true}
}

// BlockValue wraps a block as a value.
func BlockValue(b *Block) Value {
	return Value{Block: b}
}

// Tagged creates a tagged block value such as `rgb { 1 2 3 }`.
func Tagged(tag string, b *Block) Value {
	return Value{Tag: tag, Block: b}
}

// IsBlock reports whether the value is a block (tagged or not).
func (v Value) IsBlock() bool {
	return v.Block != nil
}

// IsTagged reports whether the value is a tagged block.
func (v Value) IsTagged() bool {
	return v.Block != nil && v.Tag != ""
}

// Bool interprets a yes/no scalar.
func (v Value) Bool() (bool, error) {
	if v.IsBlock() {
		return false, ErrNotScalar
	}
	switch v.Text {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q: expected yes or no", v.Text)
}

// Int interprets the value as a base-10 integer.
func (v Value) Int() (int64, error) {
	if v.IsBlock() {
		return 0, ErrNotScalar
	}
	n, err := strconv.ParseInt(v.Text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", v.Text, err)
	}
	return n, nil
}

// Float interprets the value as a floating-point number.
func (v Value) Float() (float64, error) {
	if v.IsBlock() {
		return 0, ErrNotScalar
	}
	f, err := strconv.ParseFloat(v.Text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", v.Text, err)
	}
	return f, nil
}

// Strings returns the scalar elements of an array block.
func (v Value) Strings() ([]string, error) {
	if !v.IsBlock() {
		return nil, ErrNotBlock
	}
	out := make([]string, 0, len(v.Block.Entries))
	for _, e := range v.Block.Entries {
		if e.Key != "" || e.Value.IsBlock() {
			return nil, fmt.Errorf("line %d: expected a list of scalars", e.Line)
		}
		out = append(out, e.Value.Text)
	}
	return out, nil
}

// Get returns the value of the last entry with the given key. Later
// definitions override earlier ones, matching how the game merges files.
func (b *Block) Get(key string) (Value, bool) {
	for i := len(b.Entries) - 1; i >= 0; i-- {
		if b.Entries[i].Key == key {
			return b.Entries[i].Value, true
		}
	}
	return Value{}, false
}

// All returns the values of every entry with the given key, in order.
func (b *Block) All(key string) []Value {
	var out []Value
	for _, e := range b.Entries {
		if e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}

// Values returns the bare (unkeyed) values of the block.
func (b *Block) Values() []Value {
	var out []Value
	for _, e := range b.Entries {
		if e.Key == "" {
			out = append(out, e.Value)
		}
	}
	return out
}

// Keys returns the distinct keys in first-seen order.
func (b *Block) Keys() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range b.Entries {
		if e.Key == "" || seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		out = append(out, e.Key)
	}
	return out
}

// Add appends a `key = value` entry.
func (b *Block) Add(key string, v Value) {
	b.Entries = append(b.Entries, Entry{Key: key, Op: OpAssign, Value: v})
}

// Append appends a bare value.
func (b *Block) Append(v Value) {
	b.Entries = append(b.Entries, Entry{Value: v})
}

// Parse parses script text into its top-level block.
func Parse(data []byte) (*Block, error) {
	tokens, err := tokenize(data)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseBlock(false)
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseBlock(nested bool) (*Block, error) {
	b := &Block{}
	for {
		tok := p.next()
		switch tok.kind {
		case tokEOF:
			if nested {
				return nil, &SyntaxError{Line: tok.line, Col: tok.col, Msg: "unexpected end of input, missing '}'"}
			}
			return b, nil

		case tokClose:
			if !nested {
				return nil, &SyntaxError{Line: tok.line, Col: tok.col, Msg: "unexpected '}'"}
			}
			return b, nil

		case tokOpen:
			inner, err := p.parseBlock(true)
			if err != nil {
				return nil, err
			}
			b.Entries = append(b.Entries, Entry{Value: Value{Block: inner, Line: tok.line}, Line: tok.line})

		case tokOperator:
			return nil, &SyntaxError{Line: tok.line, Col: tok.col, Msg: fmt.Sprintf("unexpected operator %q", tok.text)}

		case tokScalar, tokQuoted:
			if op := p.peek(); op.kind == tokOperator {
				p.next()
				v, err := p.parseValue()
				if err != nil {
					return nil, err
				}
				b.Entries = append(b.Entries, Entry{Key: tok.text, Op: Op(op.text), Value: v, Line: tok.line})
				continue
			}
			v, err := p.scalarOrTagged(tok)
			if err != nil {
				return nil, err
			}
			b.Entries = append(b.Entries, Entry{Value: v, Line: tok.line})
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	tok := p.next()
	switch tok.kind {
	case tokOpen:
		inner, err := p.parseBlock(true)
		if err != nil {
			return Value{}, err
		}
		return Value{Block: inner, Line: tok.line}, nil
	case tokScalar, tokQuoted:
		return p.scalarOrTagged(tok)
	default:
		return Value{}, &SyntaxError{Line: tok.line, Col: tok.col, Msg: fmt.Sprintf("expected a value, found %s", tok.kind)}
	}
}

// scalarOrTagged turns `tag {` into a tagged block value.
func (p *parser) scalarOrTagged(tok token) (Value, error) {
	if tok.kind == tokScalar && p.peek().kind == tokOpen {
		p.next()
		inner, err := p.parseBlock(true)
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tok.text, Block: inner, Line: tok.line}, nil
	}
	return Value{Text: tok.text, Quoted: tok.kind == tokQuoted, Line: tok.line}, nil
}
