package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates there was no numeral text to read.
	ErrEmptyInput = errors.New("invalid numeral: empty string")
	// ErrInvalidNumeral indicates a symbol that is not in the token table.
	ErrInvalidNumeral = errors.New("invalid numeral")
	// ErrUnexpectedModifier indicates a misplaced '_' prefix, or a '_' prefix
	// combined with a combining overline on the same letter.
	ErrUnexpectedModifier = errors.New("unexpected modifier")
)

// Error locates a lexing failure in the input. Column and Len are in runes.
type Error struct {
	Kind   error
	Symbol string
	Column int
	Len    int
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ErrEmptyInput:
		return e.Kind.Error()
	case e.Symbol == "":
		return fmt.Sprintf("%v at end of input", e.Kind)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Symbol)
	}
}

func (e *Error) Unwrap() error { return e.Kind }
