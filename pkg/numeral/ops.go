package numeral

import "fmt"

type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Apply promotes both operands with Of and applies op. A plain integer may
// stand on either side; it is range checked like any other numeral. Numeral
// text is not an operand and yields ErrTypeMismatch.
func Apply(op Op, lhs, rhs any) (Numeral, error) {
	a, err := Of(lhs)
	if err != nil {
		return Numeral{}, err
	}
	b, err := Of(rhs)
	if err != nil {
		return Numeral{}, err
	}
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	case OpDiv:
		return a.Div(b)
	default:
		return Numeral{}, fmt.Errorf("numeral: unknown operator %v", op)
	}
}

// Compare orders two operands by value. Either side may be a plain integer of
// any Go integer type, which is compared as is without a range check.
func Compare(a, b any) (int, error) {
	x, err := compareOperand(a)
	if err != nil {
		return 0, err
	}
	y, err := compareOperand(b)
	if err != nil {
		return 0, err
	}
	return Numeral{decimal: x}.CmpInt(y), nil
}

func compareOperand(v any) (int, error) {
	switch v := v.(type) {
	case Numeral, *Numeral:
		n, err := Of(v)
		if err != nil {
			return 0, err
		}
		return n.decimal, nil
	default:
		return integer(v)
	}
}
