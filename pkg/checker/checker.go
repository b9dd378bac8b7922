// Package checker looks for numerals that read fine but are written in an
// unusual way. It never rejects input; it only reports findings.
package checker

import (
	"fmt"
	"strings"

	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/token"
	"github.com/xplshn/vinculum/pkg/util"
)

type Finding struct {
	Warning config.Warning
	Span    util.Span
	Message string
}

// Input is everything the checker needs to know about one numeral.
type Input struct {
	Raw       string
	Tokens    []token.Token
	Value     int
	Canonical []token.Type
}

type Checker struct {
	cfg *config.Config
}

func NewChecker(cfg *config.Config) *Checker {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Checker{cfg: cfg}
}

// Check returns the findings for enabled warnings, in input order per kind.
func (c *Checker) Check(in Input) []Finding {
	var findings []Finding
	add := func(wt config.Warning, span util.Span, format string, args ...interface{}) {
		if c.cfg.IsWarningEnabled(wt) {
			findings = append(findings, Finding{Warning: wt, Span: span, Message: fmt.Sprintf(format, args...)})
		}
	}

	if upper := strings.ToUpper(in.Raw); upper != in.Raw {
		add(config.WarnLowercase, util.Span{}, "numeral '%s' read as '%s'", in.Raw, upper)
	}

	if len(in.Tokens) > 1 {
		for _, tok := range in.Tokens {
			if tok.Type == token.Nulla {
				add(config.WarnStrayNulla, util.Span{Column: tok.Column, Len: tok.Len}, "'N' inside a numeral counts as nothing")
			}
		}
	}

	if first, ok := c.mixedNotation(in); ok {
		add(config.WarnMixedNotation, util.Span{Column: first.Column, Len: first.Len}, "numeral mixes '_' and overline notation")
	}

	if !sameTypes(in.Tokens, in.Canonical) {
		var sb strings.Builder
		for _, t := range in.Canonical {
			sb.WriteString(token.TypeStrings[t])
		}
		add(config.WarnNonCanonical, util.Span{}, "non-standard form of %d; standard form is '%s'", in.Value, sb.String())
	}
	return findings
}

// mixedNotation returns the first ASCII-prefixed mega token when the input
// also spells another mega token with an overline.
func (c *Checker) mixedNotation(in Input) (token.Token, bool) {
	raw := []rune(in.Raw)
	var ascii, unicode []token.Token
	for _, tok := range in.Tokens {
		if !tok.Type.IsMega() || tok.Column < 1 || tok.Column > len(raw) {
			continue
		}
		if raw[tok.Column-1] == token.MegaPrefix {
			ascii = append(ascii, tok)
		} else {
			unicode = append(unicode, tok)
		}
	}
	if len(ascii) == 0 || len(unicode) == 0 {
		return token.Token{}, false
	}
	return ascii[0], true
}

func sameTypes(tokens []token.Token, types []token.Type) bool {
	if types == nil {
		return true
	}
	if len(tokens) != len(types) {
		return false
	}
	for i, tok := range tokens {
		if tok.Type != types[i] {
			return false
		}
	}
	return true
}
