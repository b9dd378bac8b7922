package numeral_test

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/xplshn/vinculum/pkg/config"
	"github.com/xplshn/vinculum/pkg/numeral"
)

type NumeralSuite struct {
	suite.Suite
}

func (s *NumeralSuite) TestFromText() {
	n, err := numeral.Parse("XXXIX")
	require.NoError(s.T(), err)
	s.Equal(39, n.Int())
	s.Equal("XXXIX", n.String())
}

func (s *NumeralSuite) TestFromInteger() {
	n, err := numeral.New(2421)
	require.NoError(s.T(), err)
	s.Equal("MMCDXXI", n.String())
	s.Equal(2421, n.Int())
}

func (s *NumeralSuite) TestLenientText() {
	n, err := numeral.Parse("MCMXXCIIV")
	require.NoError(s.T(), err)
	s.Equal(1983, n.Int())
	s.Equal("MCMXXCIIV", n.String(), "text keeps the spelling it was read from")
	s.Equal("MCMLXXXIII", n.Canonical())
}

func (s *NumeralSuite) TestTextIsUppercased() {
	n, err := numeral.Parse("mmxxv")
	require.NoError(s.T(), err)
	s.Equal(2025, n.Int())
	s.Equal("MMXXV", n.String())
}

func (s *NumeralSuite) TestZero() {
	s.Equal("N", numeral.MustNew(0).String())
	s.Equal(0, numeral.MustParse("N").Int())

	var zero numeral.Numeral
	s.Equal("N", zero.String())
	s.Equal(0, zero.Int())
}

func (s *NumeralSuite) TestVinculum() {
	s.Equal("I̅V̅DVI", numeral.MustNew(4506).String())
	s.Equal(4506, numeral.MustParse("_I_VDVI").Int())
	s.Equal("_I_VDVI", numeral.MustParse("_i_vdvi").String())
}

func (s *NumeralSuite) TestErrors() {
	_, err := numeral.New(-42)
	s.ErrorIs(err, numeral.ErrRange)
	_, err = numeral.New(4_000_000)
	s.ErrorIs(err, numeral.ErrRange)

	_, err = numeral.Parse("")
	s.ErrorIs(err, numeral.ErrEmptyInput)
	_, err = numeral.Parse("HELLO")
	s.ErrorIs(err, numeral.ErrInvalidNumeral)
	s.EqualError(err, "invalid numeral: H")
	_, err = numeral.Parse("_I̅")
	s.ErrorIs(err, numeral.ErrUnexpectedModifier)
	_, err = numeral.Parse("IIIIIIIIIIIX")
	s.ErrorIs(err, numeral.ErrRange, "a reading below zero is out of range")

	s.Panics(func() { numeral.MustNew(-1) })
	s.Panics(func() { numeral.MustParse("Q") })
}

func (s *NumeralSuite) TestArithmetic() {
	x, v := numeral.MustNew(10), numeral.MustNew(5)

	sum, err := x.Add(v)
	require.NoError(s.T(), err)
	s.Equal("XV", sum.String())

	diff, err := x.Sub(v)
	require.NoError(s.T(), err)
	s.Equal("V", diff.String())

	prod, err := x.Mul(v)
	require.NoError(s.T(), err)
	s.Equal("L", prod.String())

	quot, err := numeral.MustNew(7).Div(numeral.MustNew(2))
	require.NoError(s.T(), err)
	s.Equal(3, quot.Int())

	_, err = v.Sub(x)
	s.ErrorIs(err, numeral.ErrRange)
	_, err = numeral.MustNew(2000).Mul(numeral.MustNew(2000))
	s.ErrorIs(err, numeral.ErrRange)
	_, err = x.Div(numeral.MustNew(0))
	s.ErrorIs(err, numeral.ErrDivideByZero)
}

func (s *NumeralSuite) TestApply() {
	n, err := numeral.Apply(numeral.OpAdd, numeral.MustParse("XXXIX"), 3)
	require.NoError(s.T(), err)
	s.Equal("XLII", n.String())

	n, err = numeral.Apply(numeral.OpMul, uint8(2), numeral.MustNew(2000))
	require.NoError(s.T(), err)
	s.Equal("I̅V̅", n.String())

	n, err = numeral.Apply(numeral.OpDiv, int64(100), numeral.MustParse("_X"))
	require.NoError(s.T(), err)
	s.Equal(0, n.Int())

	_, err = numeral.Apply(numeral.OpSub, 1.5, 1)
	s.ErrorIs(err, numeral.ErrTypeMismatch)
	_, err = numeral.Apply(numeral.OpAdd, -1, 1)
	s.ErrorIs(err, numeral.ErrRange)
	_, err = numeral.Apply(numeral.Op(9), 1, 1)
	s.Error(err)
	s.Equal("/", numeral.OpDiv.String())
}

func (s *NumeralSuite) TestApplyRejectsText() {
	_, err := numeral.Apply(numeral.OpAdd, numeral.MustNew(1), "X")
	s.ErrorIs(err, numeral.ErrTypeMismatch)
	_, err = numeral.Apply(numeral.OpMul, "II", numeral.MustNew(3))
	s.ErrorIs(err, numeral.ErrTypeMismatch)
}

func (s *NumeralSuite) TestCompare() {
	a, b := numeral.MustNew(4), numeral.MustParse("IIII")
	s.Equal(0, a.Cmp(b))
	s.Equal(-1, a.CmpInt(5))
	s.Equal(1, a.CmpInt(-5))

	got, err := numeral.Compare(numeral.MustParse("XL"), 39)
	require.NoError(s.T(), err)
	s.Equal(1, got)

	got, err = numeral.Compare(numeral.MustNew(3_999_999), 10_000_000)
	require.NoError(s.T(), err)
	s.Equal(-1, got, "plain integers compare without a range check")

	_, err = numeral.Compare(numeral.MustNew(10), "X")
	s.ErrorIs(err, numeral.ErrTypeMismatch)
	_, err = numeral.Compare(numeral.MustNew(10), struct{}{})
	s.ErrorIs(err, numeral.ErrTypeMismatch)
	_, err = numeral.Compare((*numeral.Numeral)(nil), 1)
	s.ErrorIs(err, numeral.ErrTypeMismatch)
}

// Integers of every Go type compare raw, whatever their range.
func (s *NumeralSuite) TestCompareIntegerKinds() {
	five := numeral.MustNew(5)
	cases := []struct {
		other any
		want  int
	}{
		{5_000_000, -1},
		{int32(5_000_000), -1},
		{uint(5_000_000), -1},
		{uint32(5_000_000), -1},
		{uint64(5_000_000), -1},
		{int64(-7), 1},
		{int16(-1), 1},
		{int8(5), 0},
		{uint8(5), 0},
		{uint16(4), 1},
	}
	for _, tc := range cases {
		got, err := numeral.Compare(five, tc.other)
		require.NoError(s.T(), err, "%T(%v)", tc.other, tc.other)
		s.Equal(tc.want, got, "%T(%v)", tc.other, tc.other)

		got, err = numeral.Compare(tc.other, five)
		require.NoError(s.T(), err, "%T(%v)", tc.other, tc.other)
		s.Equal(-tc.want, got, "%T(%v)", tc.other, tc.other)
	}

	_, err := numeral.Compare(five, uint64(1)<<63)
	s.ErrorIs(err, numeral.ErrRange)
}

func (s *NumeralSuite) TestOf() {
	for _, v := range []any{9, uint(9), uint8(9), uint16(9), uint32(9), uint64(9), int8(9), int16(9), int32(9), int64(9)} {
		n, err := numeral.Of(v)
		require.NoError(s.T(), err, "%T", v)
		s.Equal(9, n.Int(), "%T", v)
	}
	ptr := numeral.MustNew(9)
	n, err := numeral.Of(&ptr)
	require.NoError(s.T(), err)
	s.Equal(9, n.Int())

	_, err = numeral.Of("IX")
	s.ErrorIs(err, numeral.ErrTypeMismatch)
	_, err = numeral.Of((*numeral.Numeral)(nil))
	s.ErrorIs(err, numeral.ErrTypeMismatch)
	_, err = numeral.Of(uint64(1) << 63)
	s.ErrorIs(err, numeral.ErrRange)
	_, err = numeral.Of(int32(-1))
	s.ErrorIs(err, numeral.ErrRange)
}

func (s *NumeralSuite) TestJSON() {
	type record struct {
		Year numeral.Numeral `json:"year"`
	}
	data, err := json.Marshal(record{Year: numeral.MustNew(1983)})
	require.NoError(s.T(), err)
	s.JSONEq(`{"year":"MCMLXXXIII"}`, string(data))

	var r record
	require.NoError(s.T(), json.Unmarshal([]byte(`{"year":"mmcdxxi"}`), &r))
	s.Equal(2421, r.Year.Int())

	err = json.Unmarshal([]byte(`{"year":"HELLO"}`), &r)
	s.True(errors.Is(err, numeral.ErrInvalidNumeral))
}

func TestNumeralSuite(t *testing.T) {
	suite.Run(t, new(NumeralSuite))
}

func TestConverterNotation(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, cfg.SetNotation("ascii"))
	conv, err := numeral.NewConverter(cfg)
	require.NoError(t, err)

	n, err := conv.New(4506)
	require.NoError(t, err)
	assert.Equal(t, "_I_VDVI", n.String())

	sum, err := n.Add(numeral.MustNew(1000))
	require.NoError(t, err)
	assert.Equal(t, 5506, sum.Int())
	assert.Equal(t, "_VDVI", sum.String(), "results keep the converter of the receiver")
}

func TestConverterClassic(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, cfg.ApplyStd(config.StdClassic))
	conv, err := numeral.NewConverter(cfg)
	require.NoError(t, err)

	_, err = conv.New(4000)
	assert.ErrorIs(t, err, numeral.ErrRange)
	_, err = conv.Parse("_X")
	assert.ErrorIs(t, err, numeral.ErrInvalidNumeral)

	runs, err := conv.Runs("MCMXCIX")
	require.NoError(t, err)
	assert.Len(t, runs, 7)
}

func TestConverterValue(t *testing.T) {
	conv := numeral.Default()
	toks, err := conv.Tokenize("mcmxxciiv")
	require.NoError(t, err)
	value, err := conv.Value(toks)
	require.NoError(t, err)
	assert.Equal(t, 1983, value)

	toks, err = conv.Tokenize("IIIIIIIIIIIX")
	require.NoError(t, err)
	_, err = conv.Value(toks)
	assert.ErrorIs(t, err, numeral.ErrRange)
}

func TestConcurrentText(t *testing.T) {
	n := numeral.MustNew(3_999_999)
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = n.String()
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, "M̅M̅M̅C̅M̅X̅C̅I̅X̅CMXCIX", got)
	}
}
