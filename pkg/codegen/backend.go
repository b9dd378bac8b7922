package codegen

import (
	"fmt"
	"strings"

	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/token"
)

// Backend spells tokens in a particular surface notation.
type Backend interface {
	Name() string
	// Emit writes the spelling of one token to sb.
	Emit(sb *strings.Builder, t token.Type)
}

type unicodeBackend struct{}

// NewUnicodeBackend spells mega letters with a trailing combining overline.
func NewUnicodeBackend() Backend { return unicodeBackend{} }

func (unicodeBackend) Name() string { return string(config.NotationUnicode) }

func (unicodeBackend) Emit(sb *strings.Builder, t token.Type) {
	sb.WriteString(token.TypeStrings[t])
}

type asciiBackend struct{}

// NewASCIIBackend spells mega letters with a leading '_'.
func NewASCIIBackend() Backend { return asciiBackend{} }

func (asciiBackend) Name() string { return string(config.NotationASCII) }

func (asciiBackend) Emit(sb *strings.Builder, t token.Type) {
	if t.IsMega() {
		sb.WriteRune(token.MegaPrefix)
		t = t.Base()
	}
	sb.WriteString(token.TypeStrings[t])
}

func SelectBackend(notation config.Notation) (Backend, error) {
	switch notation {
	case config.NotationUnicode, "":
		return NewUnicodeBackend(), nil
	case config.NotationASCII:
		return NewASCIIBackend(), nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrBackend, notation)
	}
}
