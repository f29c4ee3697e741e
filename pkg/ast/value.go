package ast

import (
	"math"
	"strconv"
	"strings"
)

// ValueType tags the contents of a LiteralValue.
type ValueType int

const (
	NullType ValueType = iota
	UInt64Type
	Int64Type
	Float64Type
	StringType
)

func (t ValueType) String() string {
	switch t {
	case NullType:
		return "Null"
	case UInt64Type:
		return "UInt64"
	case Int64Type:
		return "Int64"
	case Float64Type:
		return "Float64"
	case StringType:
		return "String"
	default:
		return "Unknown"
	}
}

// LiteralValue is a tagged union over the constant types the grammar can
// produce. The zero value is NULL.
type LiteralValue struct {
	typ ValueType
	u   uint64
	i   int64
	f   float64
	s   string
}

func NullValue() LiteralValue            { return LiteralValue{} }
func UIntValue(v uint64) LiteralValue    { return LiteralValue{typ: UInt64Type, u: v} }
func IntValue(v int64) LiteralValue      { return LiteralValue{typ: Int64Type, i: v} }
func FloatValue(v float64) LiteralValue  { return LiteralValue{typ: Float64Type, f: v} }
func StringValue(v string) LiteralValue  { return LiteralValue{typ: StringType, s: v} }
func (v LiteralValue) Type() ValueType   { return v.typ }
func (v LiteralValue) IsNull() bool      { return v.typ == NullType }
func (v LiteralValue) UInt64() uint64    { return v.u }
func (v LiteralValue) Int64() int64      { return v.i }
func (v LiteralValue) Float64() float64  { return v.f }
func (v LiteralValue) StringVal() string { return v.s }

// Interface returns the value as nil, uint64, int64, float64 or string.
func (v LiteralValue) Interface() any {
	switch v.typ {
	case UInt64Type:
		return v.u
	case Int64Type:
		return v.i
	case Float64Type:
		return v.f
	case StringType:
		return v.s
	default:
		return nil
	}
}

// Equal compares type and value. Floats compare bitwise, so NaN equals NaN.
func (v LiteralValue) Equal(o LiteralValue) bool {
	if v.typ != o.typ {
		return false
	}

	switch v.typ {
	case UInt64Type:
		return v.u == o.u
	case Int64Type:
		return v.i == o.i
	case Float64Type:
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	case StringType:
		return v.s == o.s
	default:
		return true
	}
}

// String renders the value as SQL that parses back to an equal value.
func (v LiteralValue) String() string {
	switch v.typ {
	case UInt64Type:
		return strconv.FormatUint(v.u, 10)
	case Int64Type:
		return strconv.FormatInt(v.i, 10)
	case Float64Type:
		return FormatFloat(v.f)
	case StringType:
		return QuoteString(v.s)
	default:
		return "NULL"
	}
}

// FormatFloat renders f so that it reads back as a float: integral values
// keep a fractional part and the special values use inf and nan.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f) && math.Signbit(f):
		return "-nan"
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// QuoteString single-quotes s, escaping quotes, backslashes and control
// characters.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\a':
			b.WriteString(`\a`)
		case '\v':
			b.WriteString(`\v`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
