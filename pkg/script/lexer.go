package script

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokScalar
	tokQuoted
	tokOperator
	tokOpen
	tokClose
)

// String returns a human-readable token kind name for error messages.
func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokScalar:
		return "scalar"
	case tokQuoted:
		return "quoted string"
	case tokOperator:
		return "operator"
	case tokOpen:
		return "'{'"
	case tokClose:
		return "'}'"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// SyntaxError reports malformed script text with its source position.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

type lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

// tokenize splits script text into tokens, ending with a tokEOF token.
func tokenize(src []byte) ([]token, error) {
	l := &lexer{src: src, line: 1, col: 1}
	var tokens []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		case isSpace(c):
			l.advance()
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	line, col := l.line, l.col
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: line, col: col}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '{':
		l.advance()
		return token{kind: tokOpen, text: "{", line: line, col: col}, nil
	case c == '}':
		l.advance()
		return token{kind: tokClose, text: "}", line: line, col: col}, nil
	case c == '"':
		return l.quoted(line, col)
	case c == '=' || c == '<' || c == '>':
		l.advance()
		if l.peekByte(0) == '=' && c != '=' {
			l.advance()
			return token{kind: tokOperator, text: string(c) + "=", line: line, col: col}, nil
		}
		return token{kind: tokOperator, text: string(c), line: line, col: col}, nil
	case (c == '!' || c == '?') && l.peekByte(1) == '=':
		l.advance()
		l.advance()
		return token{kind: tokOperator, text: string(c) + "=", line: line, col: col}, nil
	default:
		return l.scalar(line, col), nil
	}
}

func (l *lexer) quoted(line, col int) (token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.advance()
		switch c {
		case '"':
			return token{kind: tokQuoted, text: sb.String(), line: line, col: col}, nil
		case '\\':
			if l.pos < len(l.src) && (l.src[l.pos] == '"' || l.src[l.pos] == '\\') {
				sb.WriteByte(l.advance())
				continue
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return token{}, &SyntaxError{Line: line, Col: col, Msg: "unterminated quoted string"}
}

func (l *lexer) scalar(line, col int) token {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isDelimiter(c) {
			break
		}
		if (c == '!' || c == '?') && l.peekByte(1) == '=' {
			break
		}
		l.advance()
	}
	return token{kind: tokScalar, text: string(l.src[start:l.pos]), line: line, col: col}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ';'
}

func isDelimiter(c byte) bool {
	switch c {
	case '{', '}', '=', '<', '>', '#', '"':
		return true
	}
	return isSpace(c)
}
