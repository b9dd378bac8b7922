package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xplshn/vinculum/pkg/ast"
	"github.com/xplshn/vinculum/pkg/token"
)

func TestRun(t *testing.T) {
	r := ast.NewRun(token.New(token.MegaX, 1, 2))
	r.Tokens = append(r.Tokens, token.New(token.MegaX, 3, 2))

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, 20000, r.Value())
	assert.Equal(t, "X̅X̅", r.Symbols())
	assert.Equal(t, "+X̅X̅ (2 x 10000)", r.String())

	r.Subtractive = true
	assert.Equal(t, -20000, r.Value())
	assert.Equal(t, "-X̅X̅ (2 x 10000)", r.String())
}

func TestSum(t *testing.T) {
	i := ast.NewRun(token.New(token.I, 1, 1))
	i.Subtractive = true
	v := ast.NewRun(token.New(token.V, 2, 1))
	assert.Equal(t, 4, ast.Sum([]*ast.Run{i, v}))
	assert.Zero(t, ast.Sum(nil))
}
