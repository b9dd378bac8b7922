package numeral

import (
	"strings"

	"github.com/xplshn/vinculum/pkg/ast"
	"github.com/xplshn/vinculum/pkg/codegen"
	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/lexer"
	"github.com/xplshn/vinculum/pkg/parser"
	"github.com/xplshn/vinculum/pkg/token"
)

// Converter runs the lexer, parser and generator under one configuration.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	cfg *config.Config
	gen *codegen.Context
}

func NewConverter(cfg *config.Config) (*Converter, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	gen, err := codegen.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	return &Converter{cfg: cfg, gen: gen}, nil
}

var defaultConverter = func() *Converter {
	c, err := NewConverter(config.NewConfig())
	if err != nil {
		panic(err)
	}
	return c
}()

// Default returns the converter used by New and Parse.
func Default() *Converter { return defaultConverter }

func (c *Converter) Config() *config.Config { return c.cfg }

// Fold applies case folding when the configuration asks for it.
func (c *Converter) Fold(s string) string {
	if c.cfg.IsFeatureEnabled(config.FeatFoldCase) {
		return strings.ToUpper(s)
	}
	return s
}

func (c *Converter) Tokenize(s string) ([]token.Token, error) {
	return lexer.Tokenize(c.Fold(s), c.cfg)
}

// Runs exposes how the parser grouped the numeral's tokens.
func (c *Converter) Runs(s string) ([]*ast.Run, error) {
	tokens, err := c.Tokenize(s)
	if err != nil {
		return nil, err
	}
	return parser.NewParser(tokens).Runs(), nil
}

// Decimal reads numeral text. The result is range checked like any other value.
func (c *Converter) Decimal(s string) (int, error) {
	tokens, err := c.Tokenize(s)
	if err != nil {
		return 0, err
	}
	return c.Value(tokens)
}

// Value parses tokens already produced by Tokenize and range checks the result.
func (c *Converter) Value(tokens []token.Token) (int, error) {
	value := parser.NewParser(tokens).Parse()
	if err := c.gen.CheckRange(value); err != nil {
		return 0, err
	}
	return value, nil
}

// Roman writes value in standard form.
func (c *Converter) Roman(value int) (string, error) {
	return c.gen.Generate(value)
}

// Canonical is Roman before spelling, as token types.
func (c *Converter) Canonical(value int) ([]token.Type, error) {
	return c.gen.GenerateTypes(value)
}

func (c *Converter) New(value int) (Numeral, error) {
	if err := c.gen.CheckRange(value); err != nil {
		return Numeral{}, err
	}
	return Numeral{decimal: value, conv: c, text: &lazyText{}}, nil
}

func (c *Converter) Parse(s string) (Numeral, error) {
	value, err := c.Decimal(s)
	if err != nil {
		return Numeral{}, err
	}
	text := &lazyText{}
	folded := c.Fold(s)
	text.once.Do(func() { text.s = folded })
	return Numeral{decimal: value, conv: c, text: text}, nil
}
