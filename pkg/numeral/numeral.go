package numeral

import (
	"fmt"
	"math"
	"sync"
)

// Numeral is an integer in [0, 4,000,000) together with its numeral text.
// Numerals are immutable; arithmetic returns new values. The text of a
// numeral built from an integer is generated on first use and cached.
//
// The zero value is the numeral N.
type Numeral struct {
	decimal int
	conv    *Converter
	text    *lazyText
}

type lazyText struct {
	once sync.Once
	s    string
}

// New builds a numeral from an integer.
func New(value int) (Numeral, error) { return defaultConverter.New(value) }

// Parse builds a numeral from text such as "MCMLXXXIII", "I̅V̅DVI" or "_I_VDVI".
// Text is uppercased first and kept as given for String.
func Parse(s string) (Numeral, error) { return defaultConverter.Parse(s) }

func MustNew(value int) Numeral {
	n, err := New(value)
	if err != nil {
		panic(err)
	}
	return n
}

func MustParse(s string) Numeral {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Of promotes an operand to a Numeral. It accepts a Numeral or any Go
// integer type; anything else, numeral text included, is ErrTypeMismatch.
// Use Parse for text.
func Of(v any) (Numeral, error) {
	switch v := v.(type) {
	case Numeral:
		return v, nil
	case *Numeral:
		if v == nil {
			return Numeral{}, fmt.Errorf("%w: nil *Numeral", ErrTypeMismatch)
		}
		return *v, nil
	}
	i, err := integer(v)
	if err != nil {
		return Numeral{}, err
	}
	return New(i)
}

// integer returns the raw value of any Go integer type, without a range check.
func integer(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return fromUnsigned(uint64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return fromUnsigned(uint64(v))
	case uint64:
		return fromUnsigned(v)
	default:
		return 0, fmt.Errorf("%w: %T", ErrTypeMismatch, v)
	}
}

func fromUnsigned(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrRange, v)
	}
	return int(v), nil
}

func (n Numeral) converter() *Converter {
	if n.conv == nil {
		return defaultConverter
	}
	return n.conv
}

func (n Numeral) Int() int { return n.decimal }

// String returns the numeral text: the uppercased input for parsed numerals,
// the standard form otherwise.
func (n Numeral) String() string {
	if n.text == nil {
		return n.Canonical()
	}
	n.text.once.Do(func() { n.text.s = n.Canonical() })
	return n.text.s
}

// Canonical returns the standard form of the value, whatever text it was read from.
func (n Numeral) Canonical() string {
	s, err := n.converter().Roman(n.decimal)
	if err != nil {
		// Only reachable for a value outside the converter's range, which
		// construction rules out.
		panic(err)
	}
	return s
}

func (n Numeral) Add(other Numeral) (Numeral, error) {
	return n.converter().New(n.decimal + other.decimal)
}

func (n Numeral) Sub(other Numeral) (Numeral, error) {
	return n.converter().New(n.decimal - other.decimal)
}

func (n Numeral) Mul(other Numeral) (Numeral, error) {
	return n.converter().New(n.decimal * other.decimal)
}

// Div truncates like integer division.
func (n Numeral) Div(other Numeral) (Numeral, error) {
	if other.decimal == 0 {
		return Numeral{}, ErrDivideByZero
	}
	return n.converter().New(n.decimal / other.decimal)
}

// Cmp returns -1, 0 or +1 as n is less than, equal to or greater than other.
func (n Numeral) Cmp(other Numeral) int { return n.CmpInt(other.decimal) }

func (n Numeral) CmpInt(other int) int {
	switch {
	case n.decimal < other:
		return -1
	case n.decimal > other:
		return 1
	default:
		return 0
	}
}

func (n Numeral) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *Numeral) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
