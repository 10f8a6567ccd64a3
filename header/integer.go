package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Integer is a non-negative decimal header value: Content-Length, Age,
// Max-Forwards. The wire form is a plain run of ASCII digits; signs,
// grouping and non-ASCII digits are rejected.
type Integer int64

func (n Integer) String() string { return strconv.FormatInt(int64(n), 10) }

// Equal compares this integer with another for equality.
func (n Integer) Equal(val any) bool {
	var other Integer
	switch v := val.(type) {
	case Integer:
		other = v
	case *Integer:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return n == other
}

// IsValid checks whether the integer is non-negative.
func (n Integer) IsValid() bool { return n >= 0 }

// Clone returns a copy of the integer.
func (n Integer) Clone() Value { return n }

// integerParser parses single-valued non-negative decimal fields.
// bits selects the accepted width, 32 for Max-Forwards and 64 for
// Content-Length and Age.
type integerParser struct {
	bits int
}

func (integerParser) MultiValue() bool { return false }

func (integerParser) Separator() string { return ", " }

func (p integerParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	s := util.TrimSP(raw)
	if grammar.DigitsLen(s, 0) != len(s) || len(s) == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	n, err := strconv.ParseInt(s, 10, p.bits)
	if err != nil {
		return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
	}
	return []Value{Integer(n)}, nil
}
