package script

import (
	"bytes"
	"strings"
)

// Marshal renders a block as script text, one top-level entry per line.
func Marshal(b *Block) []byte {
	var buf bytes.Buffer
	writeEntries(&buf, b, 0)
	return buf.Bytes()
}

// String renders the value on a single line, as it would appear after `=`.
func (v Value) String() string {
	var buf bytes.Buffer
	writeInline(&buf, v)
	return buf.String()
}

func writeEntries(buf *bytes.Buffer, b *Block, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, e := range b.Entries {
		buf.WriteString(indent)
		if e.Key != "" {
			buf.WriteString(quoteIfNeeded(e.Key, false))
			op := e.Op
			if op == "" {
				op = OpAssign
			}
			buf.WriteString(" ")
			buf.WriteString(string(op))
			buf.WriteString(" ")
		}
		writeValue(buf, e.Value, depth)
		buf.WriteString("\n")
	}
}

func writeValue(buf *bytes.Buffer, v Value, depth int) {
	if !v.IsBlock() {
		buf.WriteString(quoteIfNeeded(v.Text, v.Quoted))
		return
	}
	if v.Tag != "" {
		buf.WriteString(v.Tag)
		buf.WriteString(" ")
	}
	if isFlat(v.Block) {
		writeInline(buf, BlockValue(v.Block))
		return
	}
	buf.WriteString("{\n")
	writeEntries(buf, v.Block, depth+1)
	buf.WriteString(strings.Repeat("\t", depth))
	buf.WriteString("}")
}

func writeInline(buf *bytes.Buffer, v Value) {
	if !v.IsBlock() {
		buf.WriteString(quoteIfNeeded(v.Text, v.Quoted))
		return
	}
	if v.Tag != "" {
		buf.WriteString(v.Tag)
		buf.WriteString(" ")
	}
	buf.WriteString("{")
	for _, e := range v.Block.Entries {
		buf.WriteString(" ")
		if e.Key != "" {
			op := e.Op
			if op == "" {
				op = OpAssign
			}
			buf.WriteString(quoteIfNeeded(e.Key, false))
			buf.WriteString(" ")
			buf.WriteString(string(op))
			buf.WriteString(" ")
		}
		writeInline(buf, e.Value)
	}
	buf.WriteString(" }")
}

// isFlat reports whether a block holds only bare scalars, such as a color
// triple or a short name list, and can be written on one line.
func isFlat(b *Block) bool {
	if len(b.Entries) > 8 {
		return false
	}
	for _, e := range b.Entries {
		if e.Key != "" || e.Value.IsBlock() {
			return false
		}
	}
	return true
}

func quoteIfNeeded(s string, quoted bool) string {
	if !quoted && s != "" && strings.IndexFunc(s, func(r rune) bool {
		return r < 0x80 && isDelimiter(byte(r))
	}) < 0 {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
