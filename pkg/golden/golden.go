// Package golden reads and runs conversion corpora: plain text files with one
// case per line.
//
//	XXXIX = 39               round trip both ways
//	MCMXXCIIV -> 1983        read only (non-standard spellings)
//	4000 => I̅V̅               write only
//	_I̅ ! unexpected-modifier  expected failure
//	"" ! empty-input
//
// Blank lines and lines starting with '#' are ignored.
package golden

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

type Kind int

const (
	RoundTrip Kind = iota
	ReadOnly
	WriteOnly
	Failure
)

func (k Kind) String() string {
	switch k {
	case RoundTrip:
		return "="
	case ReadOnly:
		return "->"
	case WriteOnly:
		return "=>"
	case Failure:
		return "!"
	default:
		return "?"
	}
}

// Case is one corpus line.
type Case struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Kind  Kind   `json:"kind"`
	Text  string `json:"text,omitempty"`
	Value int    `json:"value"`
	// IsInt marks a failure case whose left side is an integer.
	IsInt bool   `json:"is_int,omitempty"`
	Error string `json:"error,omitempty"`
}

func (c Case) Name() string { return fmt.Sprintf("%s:%d", c.File, c.Line) }

var ErrSyntax = errors.New("golden: malformed case")

var digits = regexp.MustCompile(`^-?[0-9]+$`)

// separators in match order; "=>" must be tried before "=".
var separators = []struct {
	sep  string
	kind Kind
}{
	{" -> ", ReadOnly},
	{" => ", WriteOnly},
	{" = ", RoundTrip},
	{" ! ", Failure},
}

func Read(name string, r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		c.File, c.Line = name, lineNo
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseLine(line string) (Case, error) {
	for _, s := range separators {
		lhs, rhs, found := strings.Cut(line, s.sep)
		if !found {
			continue
		}
		lhs, rhs = unquote(strings.TrimSpace(lhs)), strings.TrimSpace(rhs)
		c := Case{Kind: s.kind}
		var err error
		switch s.kind {
		case RoundTrip, ReadOnly:
			c.Text = lhs
			c.Value, err = strconv.Atoi(rhs)
		case WriteOnly:
			c.Text = unquote(rhs)
			c.Value, err = strconv.Atoi(lhs)
		case Failure:
			c.Error = rhs
			if digits.MatchString(lhs) {
				c.IsInt = true
				c.Value, err = strconv.Atoi(lhs)
			} else {
				c.Text = lhs
			}
		}
		if err != nil {
			return Case{}, fmt.Errorf("%w: %q: %v", ErrSyntax, line, err)
		}
		return c, nil
	}
	return Case{}, fmt.Errorf("%w: %q", ErrSyntax, line)
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil && strings.HasPrefix(s, `"`) {
		return u
	}
	return s
}
