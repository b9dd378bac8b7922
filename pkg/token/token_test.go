package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplshn/vinculum/pkg/token"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		symbol string
		want   token.Type
		value  int
	}{
		{"N", token.Nulla, 0},
		{"I", token.I, 1},
		{"V", token.V, 5},
		{"X", token.X, 10},
		{"L", token.L, 50},
		{"C", token.C, 100},
		{"D", token.D, 500},
		{"M", token.M, 1000},
		{"I̅", token.MegaI, 1000},
		{"V̅", token.MegaV, 5000},
		{"X̅", token.MegaX, 10000},
		{"L̅", token.MegaL, 50000},
		{"C̅", token.MegaC, 100000},
		{"D̅", token.MegaD, 500000},
		{"M̅", token.MegaM, 1000000},
	}
	for _, tc := range cases {
		t.Run(tc.symbol, func(t *testing.T) {
			typ, ok := token.Lookup(tc.symbol)
			require.True(t, ok)
			assert.Equal(t, tc.want, typ)
			assert.Equal(t, tc.value, typ.Value())
			assert.Equal(t, tc.symbol, typ.String())
		})
	}
	assert.Len(t, token.SymbolMap, 15, "seven letters, their mega forms and N")
}

func TestLookupRejectsUnknownSymbols(t *testing.T) {
	for _, s := range []string{"", "H", "i", "_I", "N̅", "II", "̅"} {
		_, ok := token.Lookup(s)
		assert.False(t, ok, "symbol %q", s)
	}
}

func TestMegaAndBase(t *testing.T) {
	for _, r := range token.Modifiable {
		base, ok := token.Lookup(string(r))
		require.True(t, ok)
		mega := base.Mega()
		assert.True(t, mega.IsMega(), "%c", r)
		assert.Equal(t, base.Value()*1000, mega.Value(), "%c", r)
		assert.Equal(t, base, mega.Base())
		assert.Equal(t, mega, mega.Mega(), "mega letters have no further vinculum")
		assert.True(t, token.IsModifiable(r))
	}
	assert.Equal(t, token.Nulla, token.Nulla.Mega())
	assert.False(t, token.IsModifiable('N'))
	assert.False(t, token.IsModifiable(token.MegaPrefix))
}

func TestNew(t *testing.T) {
	tok := token.New(token.MegaV, 3, 2)
	assert.Equal(t, token.Token{Type: token.MegaV, Symbol: "V̅", Value: 5000, Column: 3, Len: 2}, tok)
	assert.Equal(t, "EOF", token.EOF.String())
	assert.Equal(t, "?", token.Type(99).String())
	assert.Zero(t, token.Type(-1).Value())
}
