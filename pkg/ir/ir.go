// Package ir holds the positional form of an integer that sits between the
// decimal value and its numeral text.
package ir

import "strconv"

// Place is one decimal digit together with its position counted from the
// right, starting at 1 for the units.
type Place struct {
	Position int
	Digit    int
}

// Program is a value decomposed into places, most significant first.
type Program struct {
	Value  int
	Places []Place
}

// Lower decomposes a non-negative value. Zero lowers to an empty program.
func Lower(value int) *Program {
	prog := &Program{Value: value}
	if value <= 0 {
		return prog
	}
	digits := strconv.Itoa(value)
	prog.Places = make([]Place, 0, len(digits))
	for i, ch := range digits {
		prog.Places = append(prog.Places, Place{Position: len(digits) - i, Digit: int(ch - '0')})
	}
	return prog
}

// Width is the number of decimal positions the program occupies.
func (p *Program) Width() int { return len(p.Places) }
