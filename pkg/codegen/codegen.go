package codegen

import (
	"fmt"
	"strings"

	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/ir"
	"github.com/xplshn/vinculum/pkg/token"
)

// NumeralSet names the symbols needed to write any digit at one decimal
// position: This is the unit, Half is five units, Next is ten units.
//
// Down replaces This as the subtractive prefix of 4 and 9. It is only set at
// the thousands, where the unit is still a plain M but 4000 and 9000 must be
// written I̅V̅ and I̅X̅ so that the prefix carries the vinculum as well.
// Zero fields are not available at that position.
type NumeralSet struct {
	Next token.Type
	Half token.Type
	This token.Type
	Down token.Type
}

// numeralSets is indexed by decimal position; index 0 is unused. The top
// position has neither Next nor Half, so it can only repeat its unit.
var numeralSets = [...]NumeralSet{
	1: {Next: token.X, Half: token.V, This: token.I},
	2: {Next: token.C, Half: token.L, This: token.X},
	3: {Next: token.M, Half: token.D, This: token.C},
	4: {Next: token.MegaX, Half: token.MegaV, This: token.M, Down: token.MegaI},
	5: {Next: token.MegaC, Half: token.MegaL, This: token.MegaX},
	6: {Next: token.MegaM, Half: token.MegaD, This: token.MegaC},
	7: {This: token.MegaM},
}

// MaxPosition is the highest decimal position with a numeral set.
const MaxPosition = len(numeralSets) - 1

// Lookup returns the numeral set for a decimal position.
func Lookup(position int) (NumeralSet, bool) {
	if position < 1 || position > MaxPosition {
		return NumeralSet{}, false
	}
	return numeralSets[position], true
}

// Context generates canonical numerals under one configuration.
type Context struct {
	cfg     *config.Config
	backend Backend
}

func NewContext(cfg *config.Config) (*Context, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	backend, err := SelectBackend(cfg.Notation)
	if err != nil {
		return nil, err
	}
	return &Context{cfg: cfg, backend: backend}, nil
}

func (ctx *Context) Backend() Backend { return ctx.backend }

// CheckRange reports ErrRange unless 0 <= value < the configured ceiling.
func (ctx *Context) CheckRange(value int) error {
	return CheckRange(value, ctx.cfg.MaxValue)
}

func CheckRange(value, ceiling int) error {
	if value < 0 || value >= ceiling {
		return fmt.Errorf("%w: %d", ErrRange, value)
	}
	return nil
}

// Generate writes value as a canonical numeral. Zero is written N.
func (ctx *Context) Generate(value int) (string, error) {
	types, err := ctx.GenerateTypes(value)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, t := range types {
		ctx.backend.Emit(&sb, t)
	}
	return sb.String(), nil
}

// GenerateTypes is Generate before spelling: the canonical token sequence.
func (ctx *Context) GenerateTypes(value int) ([]token.Type, error) {
	if err := ctx.CheckRange(value); err != nil {
		return nil, err
	}
	if value == 0 {
		return []token.Type{token.Nulla}, nil
	}

	prog := ir.Lower(value)
	var out []token.Type
	for _, place := range prog.Places {
		var err error
		if out, err = appendDigit(out, place); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func repeat(out []token.Type, t token.Type, n int) []token.Type {
	for i := 0; i < n; i++ {
		out = append(out, t)
	}
	return out
}

func appendDigit(out []token.Type, place ir.Place) ([]token.Type, error) {
	digit := place.Digit
	if digit < 0 || digit > 9 {
		return nil, fmt.Errorf("%w: %d", ErrDigit, digit)
	}
	set, ok := Lookup(place.Position)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNumeralSet, place.Position)
	}

	// Nothing above the top position to subtract from or halve towards.
	if place.Position == MaxPosition {
		return repeat(out, set.This, digit), nil
	}

	down := set.This
	if set.Down != token.EOF {
		down = set.Down
	}

	switch {
	case digit >= 1 && digit <= 3:
		return repeat(out, set.This, digit), nil
	case digit == 4:
		return append(out, down, set.Half), nil
	case digit == 5:
		return append(out, set.Half), nil
	case digit >= 6 && digit <= 8:
		return repeat(append(out, set.Half), set.This, digit-5), nil
	case digit == 9:
		return append(out, down, set.Next), nil
	default:
		return out, nil
	}
}
