package color

import (
	"errors"
	"fmt"
	"strings"
)

// Decode errors.
var (
	ErrNoColor        = errors.New("color: no color value found")
	ErrTrailingTokens = errors.New("color: unexpected tokens after color value")
)

// Tags lists the keywords that select a color variant.
var Tags = []string{tagRGB, tagHSV, tagHSV360}

// ArityError reports a token stream that ended before all three components of
// a color were read.
type ArityError struct {
	Variant Variant
	Index   int    // zero-based position of the missing component
	Field   string // component name, e.g. "green"
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("color: %s: missing element %d (%s), expected 3 components", e.Variant, e.Index, e.Field)
}

// UnknownVariantError reports a leading token that is neither a known tag nor
// a number.
type UnknownVariantError struct {
	Text  string
	Valid []string
	Err   error // why the token was not accepted as a number
}

func (e *UnknownVariantError) Error() string {
	msg := fmt.Sprintf("color: unknown variant %q, expected one of %s or a number",
		e.Text, strings.Join(e.Valid, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnknownVariantError) Unwrap() error {
	return e.Err
}

// NumberError reports a component that does not parse as the required numeric
// type.
type NumberError struct {
	Variant Variant
	Field   string
	Text    string
	Err     error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("color: %s: %s: invalid number %q: %v", e.Variant, e.Field, e.Text, e.Err)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}

// VariantMismatchError reports a successfully decoded color whose variant is
// not the one the caller requires.
type VariantMismatchError struct {
	Want Variant
	Got  Variant
}

func (e *VariantMismatchError) Error() string {
	return fmt.Sprintf("color: expected %s color, found %s", e.Want, e.Got)
}
