package scanner

import (
	"strconv"
	"strings"

	"github.com/t14raptor/go-holes/token"
)

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || 'a' <= b|0x20 && b|0x20 <= 'f'
}

func (s *Scanner) scanNumber() token.Token {
	start := s.pos

	if s.src[s.pos] == '0' && s.pos+1 < len(s.src) {
		base := 0
		switch s.src[s.pos+1] | 0x20 {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			s.pos += 2
			digits := s.pos
			for s.pos < len(s.src) && isHexDigit(s.src[s.pos]) {
				s.pos++
			}
			v, err := strconv.ParseUint(s.src[digits:s.pos], base, 64)
			if err != nil {
				s.error(invalidNumber(s.idx(start), s.idx(s.pos)))
			}
			s.Token.Number = float64(v)
			return s.finishNumber(start)
		}
	}

	for s.pos < len(s.src) && isDecimalDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.src) && isDecimalDigit(s.src[s.pos]) {
			s.pos++
		}
	}
	if s.pos < len(s.src) && s.src[s.pos]|0x20 == 'e' {
		s.pos++
		if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		digits := s.pos
		for s.pos < len(s.src) && isDecimalDigit(s.src[s.pos]) {
			s.pos++
		}
		if digits == s.pos {
			s.error(invalidNumber(s.idx(start), s.idx(s.pos)))
		}
	}

	lit := s.src[start:s.pos]
	if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.error(invalidNumber(s.idx(start), s.idx(s.pos)))
	}
	s.Token.Number = v
	return s.finishNumber(start)
}

// finishNumber rejects an identifier immediately following a numeric literal, as in 3in.
func (s *Scanner) finishNumber(start int) token.Token {
	if r, ok := s.peekRune(); ok && IsIdentifierStart(r) {
		s.error(invalidNumber(s.idx(start), s.idx(s.pos)))
	}
	return token.Number
}
