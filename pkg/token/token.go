package token

import "strings"

type Type int

const (
	EOF Type = iota
	Nulla
	I
	V
	X
	L
	C
	D
	M
	MegaI
	MegaV
	MegaX
	MegaL
	MegaC
	MegaD
	MegaM
)

const (
	// MegaPrefix is the ASCII spelling of the vinculum: `_X` reads as X̅.
	MegaPrefix = '_'
	// Overline is the combining overline that follows a letter to multiply it by 1000.
	Overline = '\u0305'
)

// Modifiable lists the letters that accept a vinculum.
const Modifiable = "MDCLXVI"

var SymbolMap = map[string]Type{
	"N":       Nulla,
	"I":       I,
	"V":       V,
	"X":       X,
	"L":       L,
	"C":       C,
	"D":       D,
	"M":       M,
	"I\u0305": MegaI,
	"V\u0305": MegaV,
	"X\u0305": MegaX,
	"L\u0305": MegaL,
	"C\u0305": MegaC,
	"D\u0305": MegaD,
	"M\u0305": MegaM,
}

var values = [...]int{
	EOF:   0,
	Nulla: 0,
	I:     1,
	V:     5,
	X:     10,
	L:     50,
	C:     100,
	D:     500,
	M:     1_000,
	MegaI: 1_000,
	MegaV: 5_000,
	MegaX: 10_000,
	MegaL: 50_000,
	MegaC: 100_000,
	MegaD: 500_000,
	MegaM: 1_000_000,
}

// Reverse mapping from Type to its canonical symbol
var TypeStrings = make(map[Type]string)

func init() {
	for str, typ := range SymbolMap {
		TypeStrings[typ] = str
	}
}

// Lookup resolves a symbol, including a trailing overline, to its Type.
func Lookup(symbol string) (Type, bool) {
	typ, ok := SymbolMap[symbol]
	return typ, ok
}

func IsModifiable(r rune) bool { return strings.ContainsRune(Modifiable, r) }

func (t Type) Value() int {
	if t < 0 || int(t) >= len(values) {
		return 0
	}
	return values[t]
}

func (t Type) IsMega() bool { return t >= MegaI && t <= MegaM }

// Mega returns the overlined counterpart of a base letter, or t itself when
// no such counterpart exists.
func (t Type) Mega() Type {
	if t >= I && t <= M {
		return t + (MegaI - I)
	}
	return t
}

// Base strips the vinculum from a mega letter.
func (t Type) Base() Type {
	if t.IsMega() {
		return t - (MegaI - I)
	}
	return t
}

func (t Type) String() string {
	if t == EOF {
		return "EOF"
	}
	if s, ok := TypeStrings[t]; ok {
		return s
	}
	return "?"
}

// Token is one resolved numeral symbol. Column and Len are rune offsets into
// the original input and cover any `_` prefix or overline that was folded in.
type Token struct {
	Type   Type
	Symbol string
	Value  int
	Column int
	Len    int
}

func New(typ Type, column, length int) Token {
	return Token{Type: typ, Symbol: TypeStrings[typ], Value: typ.Value(), Column: column, Len: length}
}
