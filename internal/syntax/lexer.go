package syntax

import "strings"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokNumber
	tokMoney
	tokDate
	tokDirective
	tokPunct
	tokComment
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	rng  Range
	// unterminated marks string, date and comment tokens that ran into the
	// end of the line or file without a closing delimiter.
	unterminated bool
}

// upper returns the token text in upper case; PowerOn keywords are
// case-insensitive.
func (t token) upper() string { return strings.ToUpper(t.text) }

// reserved words can never be used as identifiers.
var reserved = map[string]bool{
	"TARGET": true, "DEFINE": true, "SETUP": true, "SELECT": true,
	"SORT": true, "PRINT": true, "TOTAL": true, "PROCEDURE": true,
	"END": true, "DO": true, "IF": true, "THEN": true, "ELSE": true,
	"WHILE": true, "FOR": true, "EACH": true, "WITH": true, "TO": true,
	"BY": true, "CALL": true, "AND": true, "OR": true, "NOT": true,
	"HEADERS": true, "TRAILERS": true,
}

type lexer struct {
	src string
	pos int
	row int
	col int
}

func (l *lexer) point() Point { return Point{Row: l.row, Column: l.col} }

func (l *lexer) peekByte(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

// advance moves past n bytes, keeping row and column current.
func (l *lexer) advance(n int) {
	for range n {
		if l.pos >= len(l.src) {
			return
		}
		if l.src[l.pos] == '\n' {
			l.row++
			l.col = 0
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			l.advance(1)
		default:
			return
		}
	}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_' || c == '@'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// next scans one token, comments included.
func (l *lexer) next() token {
	l.skipSpace()
	start, startPt := l.pos, l.point()
	tok := token{kind: tokEOF}
	if l.pos >= len(l.src) {
		tok.rng = Range{StartByte: start, EndByte: start, StartPoint: startPt, EndPoint: startPt}
		return tok
	}

	c := l.src[l.pos]
	switch {
	case c == '[':
		tok.kind = tokComment
		end := strings.IndexByte(l.src[l.pos:], ']')
		if end < 0 {
			tok.unterminated = true
			l.advance(len(l.src) - l.pos)
		} else {
			l.advance(end + 1)
		}
	case c == '"' || c == '\'':
		tok.kind = tokString
		if c == '\'' {
			tok.kind = tokDate
		}
		l.advance(1)
		for {
			b := l.peekByte(0)
			if b == 0 || b == '\n' {
				tok.unterminated = true
				break
			}
			l.advance(1)
			if b == c {
				break
			}
		}
	case c == '#':
		tok.kind = tokDirective
		l.advance(1)
		for isLetter(l.peekByte(0)) {
			l.advance(1)
		}
	case c == '$' && (isDigit(l.peekByte(1)) || l.peekByte(1) == '.'):
		tok.kind = tokMoney
		l.advance(1)
		for b := l.peekByte(0); isDigit(b) || b == ',' || b == '.'; b = l.peekByte(0) {
			l.advance(1)
		}
	case isDigit(c):
		tok.kind = tokNumber
		for isDigit(l.peekByte(0)) {
			l.advance(1)
		}
		if l.peekByte(0) == '.' && isDigit(l.peekByte(1)) {
			l.advance(1)
			for isDigit(l.peekByte(0)) {
				l.advance(1)
			}
		}
	case isLetter(c):
		tok.kind = tokWord
		for b := l.peekByte(0); isLetter(b) || isDigit(b); b = l.peekByte(0) {
			l.advance(1)
		}
	default:
		tok.kind = tokPunct
		switch two := l.src[l.pos:min(l.pos+2, len(l.src))]; two {
		case "<>", "<=", ">=":
			l.advance(2)
		default:
			if strings.IndexByte("=<>+-*/(),:", c) >= 0 {
				l.advance(1)
			} else {
				tok.kind = tokInvalid
				l.advance(1)
				// Keep multi-byte runes whole.
				for l.pos < len(l.src) && l.src[l.pos]&0xC0 == 0x80 {
					l.advance(1)
				}
			}
		}
	}

	tok.text = l.src[start:l.pos]
	tok.rng = Range{StartByte: start, EndByte: l.pos, StartPoint: startPt, EndPoint: l.point()}
	return tok
}
