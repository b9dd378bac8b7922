package numeral

import (
	"errors"

	"github.com/xplshn/vinculum/pkg/codegen"
	"github.com/xplshn/vinculum/pkg/lexer"
)

// The conversion errors, re-exported so callers need only this package.
var (
	ErrRange              = codegen.ErrRange
	ErrEmptyInput         = lexer.ErrEmptyInput
	ErrInvalidNumeral     = lexer.ErrInvalidNumeral
	ErrUnexpectedModifier = lexer.ErrUnexpectedModifier
)

var (
	// ErrTypeMismatch indicates an operand that is neither a Numeral, an
	// integer nor numeral text.
	ErrTypeMismatch = errors.New("numeral: type mismatch")
	// ErrDivideByZero indicates division by a zero numeral.
	ErrDivideByZero = errors.New("numeral: division by zero")
)
