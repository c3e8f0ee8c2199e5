package scanner

import (
	"fmt"

	"github.com/t14raptor/go-holes/ast"
)

type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (d Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", d.Message, d.Start)
}

func invalidCharacter(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Invalid character `%c`", c),
		Start:   start,
		End:     end,
	}
}

func unterminatedString(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated string",
		Start:   start,
		End:     end,
	}
}

func unterminatedMultiLineComment(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated multiline comment",
		Start:   start,
		End:     end,
	}
}

func invalidEscape(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid escape sequence",
		Start:   start,
		End:     end,
	}
}

func invalidNumber(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid number literal",
		Start:   start,
		End:     end,
	}
}

func unsupported(what string, start, end ast.Idx) Error {
	return Error{
		Message: what + " are not supported",
		Start:   start,
		End:     end,
	}
}
