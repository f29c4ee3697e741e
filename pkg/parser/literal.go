package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pseudomuto/chexpr/pkg/ast"
)

// maxNumberLength bounds how much input Number looks at.
const maxNumberLength = 319

type (
	// Null parses the NULL keyword.
	Null struct{}

	// Number parses a numeric literal. The longest numeric prefix is read as a
	// Float64; when the same prefix is also a valid in-range integer it becomes
	// UInt64 (non-negative) or Int64 (negative) instead.
	//
	// Accepted forms: optional sign, decimal digits with optional fraction and
	// exponent, 0x hexadecimal integers, inf, infinity and nan.
	Number struct{}

	// StringLiteral parses a single-quoted string with backslash escapes.
	StringLiteral struct{}

	// Literal parses NULL, a number or a string.
	Literal struct{}
)

func (Null) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if err := Keyword("NULL").Expect(c); err != nil {
		return nil, err
	}
	return &ast.Literal{Loc: c.Span(begin), Value: ast.NullValue()}, nil
}

func (Number) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()

	window := c.Rest()
	if len(window) > maxNumberLength {
		window = window[:maxNumberLength]
	}

	n, hex := scanNumber(window)
	if n == 0 {
		return nil, c.Fail("number")
	}

	text := window[:n]
	f, ok := parseFloat(text, hex)
	if !ok {
		return nil, c.Fail("number")
	}

	value := ast.FloatValue(f)
	if v, ok := parseInteger(text, hex, f); ok {
		value = v
	}

	c.Advance(n)
	return &ast.Literal{Loc: c.Span(begin), Value: value}, nil
}

func (StringLiteral) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if c.EOF() || c.Peek() != '\'' {
		return nil, c.Fail("opening single quote")
	}
	c.Advance(1)

	var b strings.Builder
	for {
		rest := c.Rest()
		i := strings.IndexAny(rest, `'\`)
		if i < 0 {
			c.Advance(len(rest))
			return nil, c.Fail("closing single quote")
		}

		b.WriteString(rest[:i])
		c.Advance(i)

		if c.Peek() == '\'' {
			c.Advance(1)
			return &ast.Literal{Loc: c.Span(begin), Value: ast.StringValue(b.String())}, nil
		}

		c.Advance(1)
		if c.EOF() {
			return nil, c.Fail("escape sequence")
		}
		b.WriteByte(unescape(c.Peek()))
		c.Advance(1)
	}
}

func (Literal) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	for _, p := range []Parser{Null{}, Number{}, StringLiteral{}} {
		c.Reset(begin)
		node, err := p.Parse(c)
		if err == nil || !IsMismatch(err) {
			return node, err
		}
	}

	c.Reset(begin)
	return nil, c.Fail("literal: one of null, number, single quoted string")
}

var specialFloats = []string{"infinity", "inf", "nan"}

// scanNumber returns the length of the numeric prefix of s, 0 if there is
// none, and whether it is a hexadecimal integer.
func scanNumber(s string) (n int, hex bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	rest := s[i:]
	for _, word := range specialFloats {
		if len(rest) < len(word) || !strings.EqualFold(rest[:len(word)], word) {
			continue
		}
		end := i + len(word)
		if end < len(s) && isWordChar(s[end]) {
			continue
		}
		return end, false
	}

	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') && isHexDigit(rest[2]) {
		j := i + 2
		for j < len(s) && isHexDigit(s[j]) {
			j++
		}
		return j, true
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits+(j-i-1) > 0 {
			digits += j - i - 1
			i = j
		}
	}

	if digits == 0 {
		return 0, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i, false
}

func splitSign(text string) (neg bool, unsigned string) {
	switch {
	case strings.HasPrefix(text, "-"):
		return true, text[1:]
	case strings.HasPrefix(text, "+"):
		return false, text[1:]
	default:
		return false, text
	}
}

func parseFloat(text string, hex bool) (float64, bool) {
	neg, unsigned := splitSign(text)

	var f float64
	switch lower := strings.ToLower(unsigned); {
	case lower == "inf" || lower == "infinity":
		f = math.Inf(1)
	case lower == "nan":
		f = math.NaN()
	case hex:
		v, ok := new(big.Int).SetString(unsigned[2:], 16)
		if !ok {
			return 0, false
		}
		f, _ = new(big.Float).SetInt(v).Float64()
		if math.IsInf(f, 0) {
			return 0, false
		}
	default:
		var err error
		if f, err = strconv.ParseFloat(unsigned, 64); err != nil {
			return 0, false
		}
		if math.Abs(f) < minNormalFloat && hasNonZeroMantissa(unsigned) {
			// underflow
			return 0, false
		}
	}

	if neg {
		f = math.Copysign(f, -1)
	}
	return f, true
}

// minNormalFloat is the smallest positive normal float64. Anything below it
// that is not an exact zero lost precision on the way in.
const minNormalFloat = 0x1p-1022

func hasNonZeroMantissa(s string) bool {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	return strings.ContainsAny(s, "123456789")
}

// parseInteger re-reads text as an integer. It only succeeds when the whole
// text is an integer that fits: UInt64 for f >= 0, Int64 otherwise. A leading
// 0x selects base 16 and a leading 0 selects base 8, so 010 is 8 while 09,
// which is not octal, stays a Float64.
func parseInteger(text string, hex bool, f float64) (ast.LiteralValue, bool) {
	neg, digits := splitSign(text)
	base := 10
	switch {
	case hex:
		digits, base = digits[2:], 16
	case len(digits) > 1 && digits[0] == '0':
		digits, base = digits[1:], 8
	}

	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return ast.LiteralValue{}, false
	}

	if f >= 0 {
		return ast.UIntValue(u), true
	}

	switch {
	case !neg:
		return ast.LiteralValue{}, false
	case u == 1<<63:
		return ast.IntValue(math.MinInt64), true
	case u > 1<<63:
		return ast.LiteralValue{}, false
	default:
		return ast.IntValue(-int64(u)), true
	}
}
