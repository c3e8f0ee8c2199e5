package scanner

import (
	"errors"
	"unicode/utf8"

	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/token"
)

type Scanner struct {
	Token Token

	src string
	pos int

	errors *error
}

// NewScanner returns a scanner over src that joins lexical errors into errs.
func NewScanner(src string, errs *error) *Scanner {
	return &Scanner{
		src:    src,
		errors: errs,
	}
}

// punctuators is ordered longest first so that the first match wins.
var punctuators = []token.Token{
	token.UnsignedShiftRightAssign,

	token.UnsignedShiftRight, token.StrictEqual, token.StrictNotEqual,
	token.ExponentAssign, token.ShiftLeftAssign, token.ShiftRightAssign,
	token.LogicalAndAssign, token.LogicalOrAssign, token.CoalesceAssign,
	token.Ellipsis,

	token.Arrow, token.Equal, token.NotEqual, token.LessOrEqual,
	token.GreaterOrEqual, token.LogicalAnd, token.LogicalOr, token.Coalesce,
	token.Increment, token.Decrement, token.AddAssign, token.SubtractAssign,
	token.MultiplyAssign, token.QuotientAssign, token.RemainderAssign,
	token.AndAssign, token.OrAssign, token.ExclusiveOrAssign, token.ShiftLeft,
	token.ShiftRight, token.Exponent,

	token.Plus, token.Minus, token.Multiply, token.Slash, token.Remainder,
	token.And, token.Or, token.ExclusiveOr, token.Less, token.Greater,
	token.Assign, token.Not, token.BitwiseNot, token.LeftParenthesis,
	token.LeftBracket, token.LeftBrace, token.Comma, token.Period,
	token.RightParenthesis, token.RightBracket, token.RightBrace,
	token.Semicolon, token.Colon, token.QuestionMark,
}

func (s *Scanner) Next() Token {
	s.Token.OnNewLine = false
	s.Token.Value = ""
	s.Token.Number = 0

	s.Token.Kind = token.Skip
	for s.Token.Kind == token.Skip {
		s.Token.Idx0 = s.idx(s.pos)
		if s.pos >= len(s.src) {
			s.Token.Kind = token.Eof
			break
		}
		s.Token.Kind = s.scanToken()
	}
	s.Token.Idx1 = s.idx(s.pos)
	return s.Token
}

func (s *Scanner) scanToken() token.Token {
	b := s.src[s.pos]
	switch {
	case b == ' ' || b == '\t' || b == '\v' || b == '\f':
		s.pos++
		return token.Skip
	case b == '\n' || b == '\r':
		s.pos++
		s.Token.OnNewLine = true
		return token.Skip
	case b == '/' && s.peekByteAt(1) == '/':
		s.skipSingleLineComment()
		return token.Skip
	case b == '/' && s.peekByteAt(1) == '*':
		s.skipMultiLineComment()
		return token.Skip
	case asciiStart[b]:
		return s.scanIdentifier()
	case isDecimalDigit(b), b == '.' && isDecimalDigit(s.peekByteAt(1)):
		return s.scanNumber()
	case b == '"' || b == '\'':
		return s.scanString(b)
	case b == '`':
		s.pos++
		s.error(unsupported("Template literals", s.idx(s.pos-1), s.idx(s.pos)))
		return token.Illegal
	case b >= utf8.RuneSelf:
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		switch {
		case r == '\u2028' || r == '\u2029':
			s.pos += size
			s.Token.OnNewLine = true
			return token.Skip
		case r == '\u00a0' || r == '\ufeff':
			s.pos += size
			return token.Skip
		case IsIdentifierStart(r):
			return s.scanIdentifier()
		}
		s.pos += size
		s.error(invalidCharacter(r, s.idx(s.pos-size), s.idx(s.pos)))
		return token.Illegal
	}

	for _, p := range punctuators {
		lit := p.String()
		if len(s.src)-s.pos >= len(lit) && s.src[s.pos:s.pos+len(lit)] == lit {
			s.pos += len(lit)
			return p
		}
	}

	s.pos++
	s.error(invalidCharacter(rune(b), s.idx(s.pos-1), s.idx(s.pos)))
	return token.Illegal
}

func (s *Scanner) skipSingleLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' && s.src[s.pos] != '\r' {
		s.pos++
	}
}

func (s *Scanner) skipMultiLineComment() {
	start := s.pos
	s.pos += 2
	for s.pos+1 < len(s.src) {
		if s.src[s.pos] == '*' && s.src[s.pos+1] == '/' {
			s.pos += 2
			return
		}
		if s.src[s.pos] == '\n' || s.src[s.pos] == '\r' {
			s.Token.OnNewLine = true
		}
		s.pos++
	}
	s.pos = len(s.src)
	s.error(unterminatedMultiLineComment(s.idx(start), s.idx(s.pos)))
}

type Checkpoint struct {
	pos int
	tok Token
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos: s.pos,
		tok: s.Token,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.pos = c.pos
	s.Token = c.tok
}

// Offset returns the position of the next unread byte.
func (s *Scanner) Offset() ast.Idx {
	return s.idx(s.pos)
}

// Slice returns the source text between two positions.
func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src[from-1 : to-1]
}

// Position converts idx to a 1-based line and column.
func (s *Scanner) Position(idx ast.Idx) (line, column int) {
	line, column = 1, 1
	for i := 0; i < int(idx)-1 && i < len(s.src); i++ {
		if s.src[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return
}

// idx converts a byte offset to an ast.Idx. Positions are 1-based so that the
// zero Idx can mean "no position".
func (s *Scanner) idx(offset int) ast.Idx {
	return ast.Idx(offset + 1)
}

func (s *Scanner) peekByteAt(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *Scanner) peekRune() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

func (s *Scanner) error(err Error) {
	*s.errors = errors.Join(*s.errors, err)
}
