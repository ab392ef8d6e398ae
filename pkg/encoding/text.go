// Package encoding provides text encoding utilities for Victoria 3 script files.
package encoding

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf8BOM is the byte order mark the game writes at the start of its files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// HasBOM reports whether data starts with a UTF-8 byte order mark.
func HasBOM(data []byte) bool {
	return bytes.HasPrefix(data, utf8BOM)
}

// DecodeScript converts raw file contents to BOM-less UTF-8.
// Files without a BOM that are not valid UTF-8 are assumed to be
// Windows-1252, which older mods still ship.
func DecodeScript(data []byte) ([]byte, error) {
	if HasBOM(data) || utf8.Valid(data) {
		result, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	result, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EncodeScript converts UTF-8 text to file contents, adding a BOM when
// withBOM is set.
func EncodeScript(text []byte, withBOM bool) []byte {
	if !withBOM || HasBOM(text) {
		return text
	}
	return append(append([]byte{}, utf8BOM...), text...)
}
