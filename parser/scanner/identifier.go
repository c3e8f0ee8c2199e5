package scanner

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
	"github.com/t14raptor/go-holes/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

// IsIdentifierStart reports whether chr may begin an identifier.
func IsIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

// IsIdentifierPart reports whether chr may continue an identifier.
func IsIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	// ZWNJ and ZWJ are allowed inside identifiers.
	if chr == '\u200c' || chr == '\u200d' {
		return true
	}
	return unicodeid.IsIDContinueUnicode(chr)
}

// IsIdentifierName reports whether name is a syntactically valid identifier
// name. Reserved words are accepted.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
		} else if !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}

// IsIdentifier reports whether name can be used as a binding or reference,
// which excludes keywords and the literals true, false and null.
func IsIdentifier(name string) bool {
	if !IsIdentifierName(name) {
		return false
	}
	_, keyword := token.LiteralKeyword(name)
	return !keyword
}

func (s *Scanner) scanIdentifier() token.Token {
	start := s.pos
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		if b < utf8.RuneSelf {
			if !asciiContinue[b] {
				break
			}
			s.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !IsIdentifierPart(r) {
			break
		}
		s.pos += size
	}
	s.Token.Value = s.src[start:s.pos]
	if kw, ok := token.LiteralKeyword(s.Token.Value); ok {
		return kw
	}
	return token.Identifier
}
