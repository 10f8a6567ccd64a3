package header

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// NameValue is a name with an optional value, the building block of
// directive-style headers: Cache-Control, Pragma, Expect. The name is
// always a token; the value is empty, a token, or a quoted-string kept
// with its quotes so the two value forms stay distinguishable.
type NameValue struct {
	Name  string
	Value string
}

func (nv NameValue) String() string {
	if nv.Value == "" {
		return nv.Name
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fmt.Fprint(sb, nv.Name, "=", nv.Value)
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (nv NameValue) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, nv.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(nv.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, nv.String())
			return
		}

		type hideMethods NameValue
		type NameValue hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), NameValue(nv))
		return
	}
}

// Equal compares this pair with another for equality.
// Names compare case-insensitively. Values compare case-insensitively when
// they are bare tokens and byte-exact when they are quoted-strings.
func (nv NameValue) Equal(val any) bool {
	var other NameValue
	switch v := val.(type) {
	case NameValue:
		other = v
	case *NameValue:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if !util.EqFold(nv.Name, other.Name) {
		return false
	}
	if strings.HasPrefix(nv.Value, `"`) || strings.HasPrefix(other.Value, `"`) {
		return nv.Value == other.Value
	}
	return util.EqFold(nv.Value, other.Value)
}

// IsValid checks whether the pair is syntactically valid.
func (nv NameValue) IsValid() bool {
	if !grammar.IsToken(nv.Name) {
		return false
	}
	return nv.Value == "" || grammar.IsToken(nv.Value) || grammar.IsQuoted(nv.Value)
}

// IsZero reports whether the pair is empty.
func (nv NameValue) IsZero() bool { return nv.Name == "" && nv.Value == "" }

// Clone returns a copy of the pair.
func (nv NameValue) Clone() Value { return nv }

func scanNameValue(s string, start int) (int, Value, error) {
	n, name, value, err := grammar.NameValueLen(s, start)
	if err != nil || n == 0 {
		return 0, nil, errtrace.Wrap(err)
	}
	return n, NameValue{Name: name, Value: value}, nil
}

// nameValueListParser parses comma-separated lists of name/value pairs:
// Cache-Control, Pragma, Expect.
type nameValueListParser struct{}

func (nameValueListParser) MultiValue() bool { return true }

func (nameValueListParser) Separator() string { return ", " }

func (nameValueListParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	return errtrace.Wrap2(parseList(raw, scanNameValue))
}
