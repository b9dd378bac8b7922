package lexer

import (
	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/token"
)

// Lexer turns numeral text into tokens, folding both vinculum spellings
// (`_X` and X followed by U+0305) into the same mega token. It does no case
// folding of its own.
type Lexer struct {
	source []rune
	pos    int
	cfg    *config.Config
}

func NewLexer(source []rune, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{source: source, cfg: cfg}
}

// Tokenize lexes the whole input. Empty input is an error.
func Tokenize(input string, cfg *config.Config) ([]token.Token, error) {
	if input == "" {
		return nil, &Error{Kind: ErrEmptyInput}
	}
	l := NewLexer([]rune(input), cfg)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or an EOF token once the input is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	mega := false
	startPos := l.pos

	for {
		if l.isAtEnd() {
			if mega {
				return token.Token{}, l.errorAt(ErrUnexpectedModifier, "", startPos)
			}
			return token.New(token.EOF, l.pos+1, 0), nil
		}

		ch := l.peek()
		if mega && !token.IsModifiable(ch) {
			return token.Token{}, l.errorAt(ErrUnexpectedModifier, string(ch), l.pos)
		}

		if ch == token.MegaPrefix {
			if !l.cfg.IsFeatureEnabled(config.FeatASCIIMega) {
				return token.Token{}, l.errorAt(ErrInvalidNumeral, string(ch), l.pos)
			}
			startPos = l.pos
			mega = true
			l.advance()
			continue
		}

		// A bare overline was already folded into the letter before it, or has
		// no letter to attach to; either way it never becomes a token.
		if ch == token.Overline {
			if !l.cfg.IsFeatureEnabled(config.FeatUnicodeMega) {
				return token.Token{}, l.errorAt(ErrInvalidNumeral, string(ch), l.pos)
			}
			l.advance()
			startPos = l.pos
			continue
		}

		if !mega {
			startPos = l.pos
		}
		l.advance()
		symbol := string(ch)

		if l.peek() == token.Overline {
			l.advance()
			if mega {
				return token.Token{}, l.errorAt(ErrUnexpectedModifier, string(token.MegaPrefix)+string(ch)+string(token.Overline), startPos)
			}
			if !l.cfg.IsFeatureEnabled(config.FeatUnicodeMega) {
				return token.Token{}, l.errorAt(ErrInvalidNumeral, symbol+string(token.Overline), startPos)
			}
			symbol += string(token.Overline)
		} else if mega {
			symbol += string(token.Overline)
		}

		typ, ok := token.Lookup(symbol)
		if !ok || (typ == token.Nulla && !l.cfg.IsFeatureEnabled(config.FeatNulla)) {
			return token.Token{}, l.errorAt(ErrInvalidNumeral, symbol, startPos)
		}
		return token.New(typ, startPos+1, l.pos-startPos), nil
	}
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) isAtEnd() bool { return l.pos >= len(l.source) }

func (l *Lexer) errorAt(kind error, symbol string, startPos int) *Error {
	length := l.pos - startPos
	if length < 1 {
		length = 1
	}
	return &Error{Kind: kind, Symbol: symbol, Column: startPos + 1, Len: length}
}
