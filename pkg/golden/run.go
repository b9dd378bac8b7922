package golden

import (
	"errors"
	"strconv"
	"sync"

	"github.com/google/go-cmp/cmp"

	"github.com/xplshn/vinculum/pkg/numeral"
)

// Outcome is what a case expects or what a conversion produced.
type Outcome struct {
	Value int    `json:"value"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

type Result struct {
	Case   Case    `json:"case"`
	Got    Outcome `json:"got"`
	Status string  `json:"status"` // PASS, FAIL
	Diff   string  `json:"diff,omitempty"`
}

func (r Result) Passed() bool { return r.Status == "PASS" }

// ErrorKind names a conversion error the way corpus files spell it.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, numeral.ErrRange):
		return "range"
	case errors.Is(err, numeral.ErrEmptyInput):
		return "empty-input"
	case errors.Is(err, numeral.ErrInvalidNumeral):
		return "invalid-numeral"
	case errors.Is(err, numeral.ErrUnexpectedModifier):
		return "unexpected-modifier"
	case errors.Is(err, numeral.ErrTypeMismatch):
		return "type-mismatch"
	default:
		return err.Error()
	}
}

// Expected is the outcome a case asks for.
func Expected(c Case) Outcome {
	switch c.Kind {
	case ReadOnly:
		return Outcome{Value: c.Value}
	case WriteOnly:
		return Outcome{Text: c.Text}
	case Failure:
		return Outcome{Error: c.Error}
	default:
		return Outcome{Value: c.Value, Text: c.Text}
	}
}

// Evaluate runs a single case through conv.
func Evaluate(conv *numeral.Converter, c Case) Result {
	var got Outcome
	switch c.Kind {
	case ReadOnly:
		v, err := conv.Decimal(c.Text)
		got = Outcome{Value: v, Error: ErrorKind(err)}
	case WriteOnly:
		s, err := conv.Roman(c.Value)
		got = Outcome{Text: s, Error: ErrorKind(err)}
	case RoundTrip:
		v, err := conv.Decimal(c.Text)
		got = Outcome{Value: v, Error: ErrorKind(err)}
		if err == nil {
			s, err := conv.Roman(c.Value)
			got.Text, got.Error = s, ErrorKind(err)
		}
	case Failure:
		var err error
		if c.IsInt {
			_, err = conv.Roman(c.Value)
		} else {
			_, err = conv.Decimal(c.Text)
		}
		got = Outcome{Error: ErrorKind(err)}
		if err == nil {
			got.Error = "<nil>"
		}
	}

	res := Result{Case: c, Got: got, Status: "PASS"}
	if diff := cmp.Diff(Expected(c), got); diff != "" {
		res.Status, res.Diff = "FAIL", diff
	}
	return res
}

// Run evaluates cases on up to jobs goroutines and returns results in case order.
func Run(conv *numeral.Converter, cases []Case, jobs int) []Result {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]Result, len(cases))
	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = Evaluate(conv, cases[i])
			}
		}()
	}
	for i := range cases {
		work <- i
	}
	close(work)
	wg.Wait()
	return results
}

// Summary counts passes and failures.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

func (o Outcome) String() string {
	if o.Error != "" {
		return "error " + o.Error
	}
	if o.Text != "" {
		return o.Text + " (" + strconv.Itoa(o.Value) + ")"
	}
	return strconv.Itoa(o.Value)
}
