package header

import (
	"fmt"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// WarningEntry is one element of the Warning field: a three-digit warn
// code, the warning agent (host or pseudonym), the quoted warning text and
// an optional warning date. Text stores the content without quotes; a zero
// Date means no date was carried.
type WarningEntry struct {
	Code  uint
	Agent string
	Text  string
	Date  time.Time
}

func (wrn WarningEntry) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fmt.Fprint(sb, wrn.Code, " ", wrn.Agent, " ", grammar.Quote(wrn.Text))
	if !wrn.Date.IsZero() {
		fmt.Fprint(sb, ` "`, grammar.FormatDate(wrn.Date), `"`)
	}
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (wrn WarningEntry) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, wrn.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(wrn.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, wrn.String())
			return
		}

		type hideMethods WarningEntry
		type WarningEntry hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), WarningEntry(wrn))
		return
	}
}

// Equal compares this entry with another for equality.
// Agents compare case-insensitively, texts byte-exact.
func (wrn WarningEntry) Equal(val any) bool {
	var other WarningEntry
	switch v := val.(type) {
	case WarningEntry:
		other = v
	case *WarningEntry:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return wrn.Code == other.Code &&
		util.EqFold(wrn.Agent, other.Agent) &&
		wrn.Text == other.Text &&
		wrn.Date.Equal(other.Date)
}

// IsValid checks whether the entry is syntactically valid.
func (wrn WarningEntry) IsValid() bool {
	if wrn.Code > 999 {
		return false
	}
	return grammar.IsHostPort(wrn.Agent) || grammar.IsToken(wrn.Agent)
}

// IsZero reports whether the entry is empty.
func (wrn WarningEntry) IsZero() bool {
	return wrn.Code == 0 && wrn.Agent == "" && wrn.Text == "" && wrn.Date.IsZero()
}

// Clone returns a copy of the entry.
func (wrn WarningEntry) Clone() Value { return wrn }

func scanWarningEntry(s string, start int) (int, Value, error) {
	if grammar.DigitsLen(s, start) != 3 {
		return 0, nil, nil
	}
	code, _ := strconv.ParseUint(s[start:start+3], 10, 16)
	wrn := WarningEntry{Code: uint(code)}
	i := start + 3

	wn := grammar.WhitespaceLen(s, i)
	if wn == 0 {
		return 0, nil, nil
	}
	i += wn

	an := grammar.HostLen(s, i)
	if an == 0 {
		an = grammar.TokenLen(s, i)
	}
	if an == 0 {
		return 0, nil, nil
	}
	wrn.Agent = s[i : i+an]
	i += an

	wn = grammar.WhitespaceLen(s, i)
	if wn == 0 {
		return 0, nil, nil
	}
	i += wn

	tn, err := grammar.QuotedStringLen(s, i)
	if err != nil {
		return 0, nil, errtrace.Wrap(err)
	}
	if tn == 0 {
		return 0, nil, nil
	}
	wrn.Text = grammar.Unquote(s[i : i+tn])
	i += tn

	// Optional warn-date: an HTTP date inside double quotes.
	j := i + grammar.WhitespaceLen(s, i)
	if j < len(s) && s[j] == '"' {
		dn, derr := grammar.QuotedStringLen(s, j)
		if derr != nil {
			return 0, nil, errtrace.Wrap(derr)
		}
		d, derr := grammar.ParseDate(s[j+1 : j+dn-1])
		if derr != nil {
			return 0, nil, errtrace.Wrap(derr)
		}
		wrn.Date = d
		i = j + dn
	}
	return i - start, wrn, nil
}

// warningParser parses the comma-separated Warning field.
type warningParser struct{}

func (warningParser) MultiValue() bool { return true }

func (warningParser) Separator() string { return ", " }

func (warningParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	return errtrace.Wrap2(parseList(raw, scanWarningEntry))
}
