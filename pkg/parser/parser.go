package parser

import (
	"github.com/xplshn/vinculum/pkg/ast"
	"github.com/xplshn/vinculum/pkg/token"
)

// Parser reduces a validated token stream to an integer. Only Value is read
// from each token, so the stream need not end in EOF. It is deliberately
// lenient: every run of equal-valued tokens is one signed unit, so orderings
// such as MCMXXCIIV read the same as MCMLXXXIII.
type Parser struct {
	tokens  []token.Token
	pos     int
	current token.Token
}

func NewParser(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens, pos: 0}
	if len(tokens) > 0 {
		p.current = p.tokens[0]
	}
	return p
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
		if p.pos < len(p.tokens) {
			p.current = p.tokens[p.pos]
		} else {
			p.current = token.Token{Type: token.EOF}
		}
	}
}

func (p *Parser) isAtEnd() bool { return p.pos >= len(p.tokens) }

// Runs groups the tokens into runs and marks each run subtractive when the
// next run is worth more. A zero-valued run (N) contributes nothing and resets
// the comparison, so the run after it is always added. The last run is never
// subtractive.
func (p *Parser) Runs() []*ast.Run {
	var runs []*ast.Run
	var run *ast.Run
	for ; !p.isAtEnd(); p.advance() {
		tok := p.current
		if run != nil && tok.Value == run.Unit {
			run.Tokens = append(run.Tokens, tok)
			continue
		}
		if run != nil {
			run.Subtractive = tok.Value > run.Unit && run.Unit > 0
			runs = append(runs, run)
		}
		run = ast.NewRun(tok)
	}
	if run != nil {
		runs = append(runs, run)
	}
	return runs
}

// Parse returns the value of the token stream; an empty stream is zero.
func (p *Parser) Parse() int {
	return ast.Sum(p.Runs())
}
