package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stefanvanburen/pols/internal/syntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineAt returns the text of the given zero-based line, without its line
// terminator, or "" if text has fewer lines.
func lineAt(text string, line int) string {
	for range line {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return ""
		}
		text = text[i+1:]
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSuffix(text, "\r")
}

// pointFromPosition converts an LSP position, whose column counts UTF-16
// code units, to a syntax point, whose column counts bytes. Columns past the
// end of the line clamp to it.
func pointFromPosition(text string, pos protocol.Position) syntax.Point {
	line := lineAt(text, int(pos.Line))
	var units uint32
	i := 0
	for i < len(line) && units < pos.Character {
		r, size := utf8.DecodeRuneInString(line[i:])
		units += uint32(utf16.RuneLen(r))
		i += size
	}
	return syntax.Point{Row: int(pos.Line), Column: i}
}

// positionFromPoint converts a syntax point back to an LSP position.
func positionFromPoint(text string, p syntax.Point) protocol.Position {
	line := lineAt(text, p.Row)
	var col uint32
	for i := 0; i < p.Column && i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		col += uint32(utf16.RuneLen(r))
		i += size
	}
	return protocol.Position{Line: uint32(p.Row), Character: col}
}

func rangeFromSyntax(text string, r syntax.Range) protocol.Range {
	return protocol.Range{
		Start: positionFromPoint(text, r.StartPoint),
		End:   positionFromPoint(text, r.EndPoint),
	}
}

// wordBefore returns the run of identifier characters that ends at p,
// ignoring colons immediately before p, so that the word before a just-typed
// "ACCOUNT:" is "ACCOUNT".
func wordBefore(text string, p syntax.Point) string {
	line := lineAt(text, p.Row)
	end := min(p.Column, len(line))
	for end > 0 && line[end-1] == ':' {
		end--
	}
	start := end
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	return line[start:end]
}

func isWordByte(b byte) bool {
	return b == '_' || b == '@' ||
		('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
