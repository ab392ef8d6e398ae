package color

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Faultbox/vicky3-mod/pkg/script"
)

// Variant tags as they appear in script files.
const (
	tagRGB    = "rgb"
	tagHSV    = "hsv"
	tagHSV360 = "hsv360"
)

var (
	errNestedGroup = errors.New("unexpected nested group")
	errHueRange    = errors.New("hue out of range [0,360]")
)

var fieldNames = [...][3]string{
	RGBIntVariant:   {"red", "green", "blue"},
	RGBFloatVariant: {"red", "green", "blue"},
	HSVIntVariant:   {"hue", "saturation", "value"},
	HSVFloatVariant: {"hue", "saturation", "value"},
}

// Token is one element of a color's token stream: a scalar or a `{ ... }`
// group of tokens.
type Token struct {
	Text  string
	Group []Token // non-nil for groups
}

// Scalar returns a scalar token.
func Scalar(text string) Token {
	return Token{Text: text}
}

// Group returns a group token holding the given tokens.
func Group(tokens ...Token) Token {
	if tokens == nil {
		tokens = []Token{}
	}
	return Token{Group: tokens}
}

// IsGroup reports whether the token is a group.
func (t Token) IsGroup() bool {
	return t.Group != nil
}

func (t Token) String() string {
	if !t.IsGroup() {
		return t.Text
	}
	s := "{"
	for _, g := range t.Group {
		s += " " + g.String()
	}
	return s + " }"
}

// Cursor reads tokens front to back with one token of lookahead.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// Pos returns the number of tokens consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread tokens.
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}

// Decode reads one color from the cursor.
//
// The first token selects the variant. Known tags (rgb, hsv, hsv360) are
// matched first; only when the token is not a tag is it read as the first
// component of an untagged RGB triple. Untagged triples whose components are
// all base-10 integers in [0,255] become RGBInt, any other numeric triple
// becomes RGBFloat.
func Decode(c *Cursor) (Color, error) {
	first, ok := c.Next()
	if !ok {
		return Color{}, ErrNoColor
	}
	if first.IsGroup() {
		return Color{}, &UnknownVariantError{Text: first.String(), Valid: Tags, Err: errNestedGroup}
	}

	var variant Variant
	switch first.Text {
	case tagRGB:
		variant = RGBIntVariant
	case tagHSV:
		variant = HSVFloatVariant
	case tagHSV360:
		variant = HSVIntVariant
	default:
		return decodeUntagged(c, first.Text)
	}

	texts, err := readTriple(c, variant)
	if err != nil {
		return Color{}, err
	}
	return decodeTagged(variant, texts)
}

// decodeTagged parses the components that followed a variant tag.
func decodeTagged(variant Variant, texts [3]string) (Color, error) {
	switch variant {
	case RGBIntVariant:
		v, err := parseRGBInt(texts)
		if err != nil {
			return Color{}, err
		}
		return v.Color(), nil
	case HSVIntVariant:
		v, err := parseHSVInt(texts)
		if err != nil {
			return Color{}, err
		}
		return v.Color(), nil
	default:
		f, err := parseFloats(texts, variant)
		if err != nil {
			return Color{}, err
		}
		return HSVFloat{H: f[0], S: f[1], V: f[2]}.Color(), nil
	}
}

// Unmarshal decodes a complete token stream holding exactly one color.
func Unmarshal(tokens []Token) (Color, error) {
	c := NewCursor(tokens)
	col, err := Decode(c)
	if err != nil {
		return Color{}, err
	}
	if c.Remaining() > 0 {
		return Color{}, fmt.Errorf("%w: %d extra token(s) at position %d", ErrTrailingTokens, c.Remaining(), c.Pos())
	}
	return col, nil
}

// FromValue decodes a color from a parsed script value.
func FromValue(v script.Value) (Color, error) {
	return Unmarshal(TokensOf(v))
}

// Parse decodes a color from its script text, e.g. "hsv { 0.5 1 1 }".
func Parse(text string) (Color, error) {
	b, err := script.Parse([]byte(text))
	if err != nil {
		return Color{}, fmt.Errorf("color: %w", err)
	}
	if len(b.Entries) == 1 && b.Entries[0].Key == "" && b.Entries[0].Value.IsBlock() {
		return FromValue(b.Entries[0].Value)
	}
	return Unmarshal(blockTokens(b))
}

// TokensOf flattens a script value into a color token stream. A tagged
// block `rgb { 1 2 3 }` becomes [rgb {1 2 3}], an untagged block `{ 1 2 3 }`
// becomes [1 2 3].
func TokensOf(v script.Value) []Token {
	switch {
	case v.IsTagged():
		return []Token{Scalar(v.Tag), Group(blockTokens(v.Block)...)}
	case v.IsBlock():
		return blockTokens(v.Block)
	default:
		return []Token{Scalar(v.Text)}
	}
}

func blockTokens(b *script.Block) []Token {
	out := make([]Token, 0, len(b.Entries))
	for _, e := range b.Entries {
		switch {
		case e.Key != "":
			out = append(out, Scalar(e.Key+string(e.Op)+e.Value.String()))
		case e.Value.IsTagged():
			out = append(out, Scalar(e.Value.Tag), Group(blockTokens(e.Value.Block)...))
		case e.Value.IsBlock():
			out = append(out, Group(blockTokens(e.Value.Block)...))
		default:
			out = append(out, Scalar(e.Value.Text))
		}
	}
	return out
}

// decodeUntagged handles the tag-less form, where first is already the red
// component.
func decodeUntagged(c *Cursor, first string) (Color, error) {
	if _, err := strconv.ParseFloat(first, 32); err != nil {
		return Color{}, &UnknownVariantError{Text: first, Valid: Tags, Err: err}
	}

	texts := [3]string{first}
	for i := 1; i < 3; i++ {
		tok, ok := c.Next()
		if !ok {
			return Color{}, &ArityError{Variant: RGBIntVariant, Index: i, Field: fieldNames[RGBIntVariant][i]}
		}
		if tok.IsGroup() {
			return Color{}, &NumberError{Variant: RGBIntVariant, Field: fieldNames[RGBIntVariant][i], Text: tok.String(), Err: errNestedGroup}
		}
		texts[i] = tok.Text
	}

	if v, err := parseRGBInt(texts); err == nil {
		return v.Color(), nil
	}
	f, err := parseFloats(texts, RGBFloatVariant)
	if err != nil {
		return Color{}, err
	}
	return RGBFloat{R: f[0], G: f[1], B: f[2]}.Color(), nil
}

// readTriple reads the three component texts following a tag, either from a
// group token or from three flat scalar tokens.
func readTriple(c *Cursor, v Variant) ([3]string, error) {
	var out [3]string
	src := c
	next, ok := c.Peek()
	if ok && next.IsGroup() {
		c.Next()
		src = NewCursor(next.Group)
	}

	for i := range out {
		tok, ok := src.Next()
		if !ok {
			return out, &ArityError{Variant: v, Index: i, Field: fieldNames[v][i]}
		}
		if tok.IsGroup() {
			return out, &NumberError{Variant: v, Field: fieldNames[v][i], Text: tok.String(), Err: errNestedGroup}
		}
		out[i] = tok.Text
	}

	if src != c && src.Remaining() > 0 {
		return out, fmt.Errorf("%w: %s group has %d component(s)", ErrTrailingTokens, v, len(next.Group))
	}
	return out, nil
}

func parseRGBInt(texts [3]string) (RGBInt, error) {
	var ch [3]uint8
	for i, t := range texts {
		n, err := strconv.ParseUint(t, 10, 8)
		if err != nil {
			return RGBInt{}, &NumberError{Variant: RGBIntVariant, Field: fieldNames[RGBIntVariant][i], Text: t, Err: err}
		}
		ch[i] = uint8(n)
	}
	return RGBInt{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseHSVInt(texts [3]string) (HSVInt, error) {
	fields := fieldNames[HSVIntVariant]
	h, err := strconv.ParseUint(texts[0], 10, 16)
	if err != nil {
		return HSVInt{}, &NumberError{Variant: HSVIntVariant, Field: fields[0], Text: texts[0], Err: err}
	}
	if h > hueMax {
		return HSVInt{}, &NumberError{Variant: HSVIntVariant, Field: fields[0], Text: texts[0], Err: errHueRange}
	}
	var sv [2]uint8
	for i, t := range texts[1:] {
		n, err := strconv.ParseUint(t, 10, 8)
		if err != nil {
			return HSVInt{}, &NumberError{Variant: HSVIntVariant, Field: fields[i+1], Text: t, Err: err}
		}
		sv[i] = uint8(n)
	}
	return HSVInt{H: uint16(h), S: sv[0], V: sv[1]}, nil
}

func parseFloats(texts [3]string, v Variant) ([3]float32, error) {
	var out [3]float32
	for i, t := range texts {
		f, err := strconv.ParseFloat(t, 32)
		if err != nil {
			return out, &NumberError{Variant: v, Field: fieldNames[v][i], Text: t, Err: err}
		}
		out[i] = float32(f)
	}
	return out, nil
}
