// Package ast describes a read numeral as the sequence of runs the parser
// folds into a value.
package ast

import (
	"fmt"
	"strings"

	"github.com/xplshn/vinculum/pkg/token"
)

// Run is a maximal stretch of consecutive tokens that share the same value.
// A run is subtractive when the run that follows it has a greater value.
type Run struct {
	Tokens      []token.Token
	Unit        int
	Subtractive bool
}

func NewRun(tok token.Token) *Run {
	return &Run{Tokens: []token.Token{tok}, Unit: tok.Value}
}

func (r *Run) Count() int { return len(r.Tokens) }

// Value is the signed contribution of the run to the total.
func (r *Run) Value() int {
	v := r.Unit * r.Count()
	if r.Subtractive {
		return -v
	}
	return v
}

func (r *Run) Symbols() string {
	var sb strings.Builder
	for _, tok := range r.Tokens {
		sb.WriteString(tok.Symbol)
	}
	return sb.String()
}

func (r *Run) String() string {
	sign := '+'
	if r.Subtractive {
		sign = '-'
	}
	return fmt.Sprintf("%c%s (%d x %d)", sign, r.Symbols(), r.Count(), r.Unit)
}

// Sum folds a sequence of runs into the numeral's value.
func Sum(runs []*Run) int {
	total := 0
	for _, r := range runs {
		total += r.Value()
	}
	return total
}
