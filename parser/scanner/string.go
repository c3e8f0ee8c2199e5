package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-holes/token"
)

func (s *Scanner) scanString(quote byte) token.Token {
	start := s.pos
	s.pos++

	var sb strings.Builder
	for {
		if s.pos >= len(s.src) {
			s.error(unterminatedString(s.idx(start), s.idx(s.pos)))
			break
		}
		b := s.src[s.pos]
		if b == quote {
			s.pos++
			break
		}
		if b == '\n' || b == '\r' {
			s.error(unterminatedString(s.idx(start), s.idx(s.pos)))
			break
		}
		if b == '\\' {
			s.scanEscape(&sb)
			continue
		}
		sb.WriteByte(b)
		s.pos++
	}
	s.Token.Value = sb.String()
	return token.String
}

func (s *Scanner) scanEscape(sb *strings.Builder) {
	start := s.pos
	s.pos++ // backslash
	if s.pos >= len(s.src) {
		s.error(invalidEscape(s.idx(start), s.idx(s.pos)))
		return
	}
	b := s.src[s.pos]
	s.pos++
	switch b {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		sb.WriteByte(0)
	case '\r':
		// Line continuation.
		if s.pos < len(s.src) && s.src[s.pos] == '\n' {
			s.pos++
		}
	case '\n':
	case 'x':
		s.writeCodePoint(sb, s.scanHex(2), start)
	case 'u':
		if s.pos < len(s.src) && s.src[s.pos] == '{' {
			s.pos++
			end := strings.IndexByte(s.src[s.pos:], '}')
			if end < 0 {
				s.error(invalidEscape(s.idx(start), s.idx(s.pos)))
				return
			}
			v, err := strconv.ParseUint(s.src[s.pos:s.pos+end], 16, 32)
			s.pos += end + 1
			if err != nil {
				s.error(invalidEscape(s.idx(start), s.idx(s.pos)))
				return
			}
			s.writeCodePoint(sb, int(v), start)
			return
		}
		s.writeCodePoint(sb, s.scanHex(4), start)
	default:
		// Any other character escapes to itself, including quotes and backslash.
		s.pos--
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += size
		sb.WriteRune(r)
	}
}

func (s *Scanner) scanHex(n int) int {
	if s.pos+n > len(s.src) {
		return -1
	}
	v, err := strconv.ParseUint(s.src[s.pos:s.pos+n], 16, 32)
	if err != nil {
		return -1
	}
	s.pos += n
	return int(v)
}

func (s *Scanner) writeCodePoint(sb *strings.Builder, cp int, start int) {
	if cp < 0 || cp > utf8.MaxRune {
		s.error(invalidEscape(s.idx(start), s.idx(s.pos)))
		return
	}
	sb.WriteRune(rune(cp))
}
