package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// ContentRange is a Content-Range field value: "bytes 0-499/1234". First
// and Last are -1 for the unsatisfied form "*/n", Length is -1 for the
// unknown instance length "a-b/*".
type ContentRange struct {
	Unit   string
	First  int64
	Last   int64
	Length int64
}

func (cr ContentRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(cr.Unit)
	sb.WriteByte(' ')
	if cr.First < 0 {
		sb.WriteByte('*')
	} else {
		sb.WriteString(strconv.FormatInt(cr.First, 10))
		sb.WriteByte('-')
		sb.WriteString(strconv.FormatInt(cr.Last, 10))
	}
	sb.WriteByte('/')
	if cr.Length < 0 {
		sb.WriteByte('*')
	} else {
		sb.WriteString(strconv.FormatInt(cr.Length, 10))
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (cr ContentRange) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, cr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(cr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, cr.String())
			return
		}

		type hideMethods ContentRange
		type ContentRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ContentRange(cr))
		return
	}
}

// Equal compares this value with another for equality.
// Units compare case-insensitively.
func (cr ContentRange) Equal(val any) bool {
	var other ContentRange
	switch v := val.(type) {
	case ContentRange:
		other = v
	case *ContentRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(cr.Unit, other.Unit) &&
		cr.First == other.First && cr.Last == other.Last && cr.Length == other.Length
}

// IsValid checks whether the value is syntactically valid.
func (cr ContentRange) IsValid() bool {
	if !grammar.IsToken(cr.Unit) {
		return false
	}
	if cr.First < 0 {
		return cr.Last < 0
	}
	return cr.First <= cr.Last
}

// IsZero reports whether the value is empty.
func (cr ContentRange) IsZero() bool { return cr == ContentRange{} }

// Clone returns a copy of the value.
func (cr ContentRange) Clone() Value { return cr }

// contentRangeParser parses the Content-Range field.
type contentRangeParser struct{}

func (contentRangeParser) MultiValue() bool { return false }

func (contentRangeParser) Separator() string { return ", " }

func (contentRangeParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	s := util.TrimSP(raw)
	n := grammar.TokenLen(s, 0)
	if n == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	cr := ContentRange{Unit: s[:n], First: -1, Last: -1, Length: -1}
	i := n
	wn := grammar.WhitespaceLen(s, i)
	if wn == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	i += wn

	switch {
	case i < len(s) && s[i] == '*':
		i++
	default:
		fn := grammar.DigitsLen(s, i)
		if fn == 0 {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
		first, err := strconv.ParseInt(s[i:i+fn], 10, 64)
		if err != nil {
			return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
		}
		i += fn
		if i >= len(s) || s[i] != '-' {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
		i++
		ln := grammar.DigitsLen(s, i)
		if ln == 0 {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
		last, err := strconv.ParseInt(s[i:i+ln], 10, 64)
		if err != nil {
			return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
		}
		i += ln
		cr.First, cr.Last = first, last
	}

	if i >= len(s) || s[i] != '/' {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	i++
	switch {
	case i < len(s) && s[i] == '*':
		i++
	default:
		ln := grammar.DigitsLen(s, i)
		if ln == 0 {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
		length, err := strconv.ParseInt(s[i:i+ln], 10, 64)
		if err != nil {
			return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
		}
		i += ln
		cr.Length = length
	}
	if i != len(s) {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	if !cr.IsValid() {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return []Value{cr}, nil
}
