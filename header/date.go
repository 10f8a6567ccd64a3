package header

import (
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Date is an HTTP date value: Date, Expires, Last-Modified and the If-*
// date conditions. Input is accepted in RFC 1123, RFC 850 and ANSI C
// asctime forms; output is always rendered in the canonical RFC 1123 form
// with the GMT zone.
type Date struct {
	time.Time
}

// NewDate creates a Date normalized to UTC with sub-second precision
// dropped, matching what survives a round-trip through the wire form.
func NewDate(t time.Time) Date { return Date{t.UTC().Truncate(time.Second)} }

// ParseDate parses an HTTP date from its wire form.
func ParseDate(s string) (Date, error) {
	t, err := grammar.ParseDate(s)
	if err != nil {
		return Date{}, errtrace.Wrap(NewSyntaxError("%q: %w", s, err))
	}
	return Date{t}, nil
}

func (d Date) String() string { return grammar.FormatDate(d.Time) }

// Equal compares this date with another for equality.
func (d Date) Equal(val any) bool {
	var other Date
	switch v := val.(type) {
	case Date:
		other = v
	case *Date:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return d.Time.Equal(other.Time)
}

// IsValid checks whether the date is set.
func (d Date) IsValid() bool { return !d.IsZero() }

// Clone returns a copy of the date.
func (d Date) Clone() Value { return d }

// dateParser parses single-valued HTTP date fields. A date is always a
// complete field line; the tri-format parse consumes everything or nothing.
type dateParser struct{}

func (dateParser) MultiValue() bool { return false }

func (dateParser) Separator() string { return ", " }

func (dateParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	d, err := ParseDate(util.TrimSP(raw))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []Value{d}, nil
}
