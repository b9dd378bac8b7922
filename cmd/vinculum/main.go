package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xplshn/vinculum/pkg/checker"
	"github.com/xplshn/vinculum/pkg/cli"
	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/lexer"
	"github.com/xplshn/vinculum/pkg/numeral"
	"github.com/xplshn/vinculum/pkg/parser"
	"github.com/xplshn/vinculum/pkg/util"
)

func main() {
	app := cli.NewApp("vinculum")
	app.Synopsis = "[options] <numeral|integer> ..."
	app.Description = "Converts between integers and Roman numerals, including the vinculum notation where an overlined letter is worth a thousand times its plain value. Integers become numerals and numerals become integers. With no arguments, one input is read per line from standard input."
	app.Authors = []string{"xplshn"}
	app.Repository = "<https://github.com/xplshn/vinculum>"

	var (
		std        string
		notation   string
		tokens     bool
		explain    bool
		pedantic   bool
		wFlags     []string
		exitStatus int
	)

	fs := app.FlagSet
	fs.String(&std, "std", "", config.StdVinculum, "Specify numeral standard (vinculum, classic)", "std")
	fs.String(&notation, "notation", "n", string(config.NotationUnicode), "Spell generated vincula as 'unicode' overlines or 'ascii' '_' prefixes.", "notation")
	fs.Bool(&tokens, "tokens", "t", false, "Print the tokens of each numeral.")
	fs.Bool(&explain, "explain", "e", false, "Print how each numeral was grouped into additive and subtractive runs.")
	fs.Bool(&pedantic, "pedantic", "", false, "Issue all warnings demanded by the current standard.")
	fs.Special(&wFlags, "W", "Enable or disable warnings (e.g. -Wall, -Wno-all)", "warning")

	cfg := config.NewConfig()
	warningFlags, featureFlags := cfg.SetupFlagGroups(fs)

	app.Action = func(inputs []string) error {
		if pedantic {
			cfg.SetWarning(config.WarnPedantic, true)
		}
		if err := cfg.ApplyStd(std); err != nil {
			fatal(err)
		}
		if err := cfg.SetNotation(notation); err != nil {
			fatal(err)
		}

		for i := range wFlags {
			wFlags[i] = "-W" + wFlags[i]
		}
		cfg.ProcessFlags(wFlags)
		cfg.ApplyFlagGroups(warningFlags, featureFlags)

		conv, err := numeral.NewConverter(cfg)
		if err != nil {
			fatal(err)
		}

		d := &driver{conv: conv, check: checker.NewChecker(cfg), out: app.Stdout, tokens: tokens, explain: explain}
		if len(inputs) > 0 {
			for i, in := range inputs {
				if !d.convert(fmt.Sprintf("arg[%d]", i+1), in) {
					exitStatus = 1
				}
			}
		} else if !d.convertLines("<stdin>", os.Stdin) {
			exitStatus = 1
		}
		return nil
	}

	if err := app.Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	os.Exit(exitStatus)
}

// fatal reports a setup error and exits through the diagnostics Exit hook.
func fatal(err error) {
	util.NewDiagnostics(util.SourceRecord{Name: "vinculum"}).Error(util.Span{}, "%v", err)
}

type driver struct {
	conv    *numeral.Converter
	check   *checker.Checker
	out     io.Writer
	tokens  bool
	explain bool
}

// convertLines converts every non-blank line of r and reports whether all succeeded.
func (d *driver) convertLines(name string, r io.Reader) bool {
	ok := true
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		in := strings.TrimSpace(scanner.Text())
		if in == "" {
			continue
		}
		if !d.convert(fmt.Sprintf("%s:%d", name, line), in) {
			ok = false
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", name, err)
		return false
	}
	return ok
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (d *driver) convert(name, in string) bool {
	diag := util.NewDiagnostics(util.SourceRecord{Name: name, Content: []rune(in)})

	if isInteger(in) {
		value, err := strconv.Atoi(in)
		if err != nil {
			diag.Report(util.Span{}, "%v", err)
			return false
		}
		text, err := d.conv.Roman(value)
		if err != nil {
			diag.Report(util.Span{}, "%v", err)
			return false
		}
		fmt.Fprintf(d.out, "%s => %s\n", in, text)
		return true
	}

	toks, err := d.conv.Tokenize(in)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			diag.Report(util.Span{Column: lexErr.Column, Len: lexErr.Len}, "%v", err)
		} else {
			diag.Report(util.Span{}, "%v", err)
		}
		return false
	}

	if d.tokens {
		for _, tok := range toks {
			fmt.Fprintf(d.out, "  %-8s %-3s %8d  col %d\n", tok.Type, tok.Symbol, tok.Value, tok.Column)
		}
	}
	if d.explain {
		for _, run := range parser.NewParser(toks).Runs() {
			fmt.Fprintf(d.out, "  %s\n", run)
		}
	}

	value, err := d.conv.Value(toks)
	if err != nil {
		diag.Report(util.Span{}, "%v", err)
		return false
	}

	canonical, err := d.conv.Canonical(value)
	if err != nil {
		diag.Report(util.Span{}, "%v", err)
		return false
	}
	cfg := d.conv.Config()
	for _, f := range d.check.Check(checker.Input{Raw: in, Tokens: toks, Value: value, Canonical: canonical}) {
		diag.Warn(cfg, f.Warning, f.Span, "%s", f.Message)
	}

	fmt.Fprintf(d.out, "%s => %d\n", in, value)
	return true
}
