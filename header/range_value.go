package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// RangeSpec is one byte-range-spec of a Range field. First and Last are
// byte positions, -1 means the bound is absent: {500, -1} is the open form
// "500-", {-1, 500} is the suffix form "-500" (final 500 bytes).
type RangeSpec struct {
	First int64
	Last  int64
}

// IsSuffix reports whether the spec addresses a suffix of the entity body.
func (rs RangeSpec) IsSuffix() bool { return rs.First < 0 }

func (rs RangeSpec) String() string {
	if rs.First < 0 {
		return "-" + strconv.FormatInt(rs.Last, 10)
	}
	if rs.Last < 0 {
		return strconv.FormatInt(rs.First, 10) + "-"
	}
	return strconv.FormatInt(rs.First, 10) + "-" + strconv.FormatInt(rs.Last, 10)
}

// IsValid checks whether the spec is syntactically valid.
func (rs RangeSpec) IsValid() bool {
	switch {
	case rs.First < 0:
		return rs.Last >= 0
	case rs.Last < 0:
		return true
	default:
		return rs.First <= rs.Last
	}
}

// RangeValue is a Range field value: the range unit plus one or more range
// specs, like "bytes=0-499,1000-".
type RangeValue struct {
	Unit  string
	Specs []RangeSpec
}

func (rng RangeValue) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(rng.Unit)
	sb.WriteByte('=')
	for i, rs := range rng.Specs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(rs.String())
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (rng RangeValue) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, rng.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(rng.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, rng.String())
			return
		}

		type hideMethods RangeValue
		type RangeValue hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), RangeValue(rng))
		return
	}
}

// Equal compares this value with another for equality.
// Units compare case-insensitively, specs positionally.
func (rng RangeValue) Equal(val any) bool {
	var other RangeValue
	switch v := val.(type) {
	case RangeValue:
		other = v
	case *RangeValue:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if !util.EqFold(rng.Unit, other.Unit) || len(rng.Specs) != len(other.Specs) {
		return false
	}
	for i, rs := range rng.Specs {
		if rs != other.Specs[i] {
			return false
		}
	}
	return true
}

// IsValid checks whether the value is syntactically valid.
func (rng RangeValue) IsValid() bool {
	if !grammar.IsToken(rng.Unit) || len(rng.Specs) == 0 {
		return false
	}
	for _, rs := range rng.Specs {
		if !rs.IsValid() {
			return false
		}
	}
	return true
}

// IsZero reports whether the value is empty.
func (rng RangeValue) IsZero() bool { return rng.Unit == "" && rng.Specs == nil }

// Clone returns a deep copy of the value.
func (rng RangeValue) Clone() Value {
	rng2 := rng
	if rng.Specs != nil {
		rng2.Specs = make([]RangeSpec, len(rng.Specs))
		copy(rng2.Specs, rng.Specs)
	}
	return rng2
}

func scanRangeSpec(s string, start int) (int, RangeSpec, error) {
	rs := RangeSpec{First: -1, Last: -1}
	i := start
	if n := grammar.DigitsLen(s, i); n > 0 {
		first, err := strconv.ParseInt(s[i:i+n], 10, 64)
		if err != nil {
			return 0, rs, errtrace.Wrap(NewRangeError("%q", s[i:i+n]))
		}
		rs.First = first
		i += n
	}
	if i >= len(s) || s[i] != '-' {
		return 0, rs, nil
	}
	i++
	if n := grammar.DigitsLen(s, i); n > 0 {
		last, err := strconv.ParseInt(s[i:i+n], 10, 64)
		if err != nil {
			return 0, rs, errtrace.Wrap(NewRangeError("%q", s[i:i+n]))
		}
		rs.Last = last
		i += n
	}
	if !rs.IsValid() {
		return 0, rs, nil
	}
	return i - start, rs, nil
}

// rangeParser parses the Range field: unit "=" comma-separated range specs.
type rangeParser struct{}

func (rangeParser) MultiValue() bool { return false }

func (rangeParser) Separator() string { return ", " }

func (rangeParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	s := util.TrimSP(raw)
	n := grammar.TokenLen(s, 0)
	if n == 0 || n >= len(s) || s[n] != '=' {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	rng := RangeValue{Unit: s[:n]}
	i := n + 1
	for i < len(s) {
		i += grammar.WhitespaceLen(s, i)
		if i < len(s) && s[i] == ',' {
			i++
			continue
		}
		if i >= len(s) {
			break
		}
		sn, rs, err := scanRangeSpec(s, i)
		if err != nil {
			return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
		}
		if sn == 0 {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
		rng.Specs = append(rng.Specs, rs)
		i += sn
	}
	if len(rng.Specs) == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return []Value{rng}, nil
}
