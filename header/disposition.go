package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Disposition is the Content-Disposition value: a disposition kind
// ("inline", "attachment", form-data names) with its parameters.
type Disposition struct {
	Kind   string
	Params Values
}

func (d Disposition) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(d.Kind)
	renderHdrParams(sb, d.Params) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (d Disposition) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, d.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(d.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, d.String())
			return
		}

		type hideMethods Disposition
		type Disposition hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Disposition(d))
		return
	}
}

// Filename returns the filename parameter without quotes.
func (d Disposition) Filename() (string, bool) {
	v, ok := d.Params.First("filename")
	if !ok {
		return "", false
	}
	return grammar.Unquote(v), true
}

// Equal compares this disposition with another for equality.
func (d Disposition) Equal(val any) bool {
	var other Disposition
	switch v := val.(type) {
	case Disposition:
		other = v
	case *Disposition:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(d.Kind, other.Kind) &&
		compareHdrParams(d.Params, other.Params, map[string]bool{"filename": true})
}

// IsValid checks whether the disposition is syntactically valid.
func (d Disposition) IsValid() bool {
	return grammar.IsToken(d.Kind) && validateHdrParams(d.Params)
}

// IsZero reports whether the disposition is empty.
func (d Disposition) IsZero() bool { return d.Kind == "" && len(d.Params) == 0 }

// Clone returns a copy of the disposition.
func (d Disposition) Clone() Value {
	d.Params = d.Params.Clone()
	return d
}

func scanDisposition(s string, start int) (int, Value, error) {
	n := grammar.TokenLen(s, start)
	if n == 0 {
		return 0, nil, nil
	}
	d := Disposition{Kind: s[start : start+n]}
	i := start + n

	pn, pairs, err := scanParams(s, i)
	if err != nil {
		return 0, nil, errtrace.Wrap(err)
	}
	d.Params = paramsFromPairs(pairs)
	return i + pn - start, d, nil
}

// dispositionParser parses the single-valued Content-Disposition field.
type dispositionParser struct{}

func (dispositionParser) MultiValue() bool { return false }

func (dispositionParser) Separator() string { return ", " }

func (dispositionParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	val, err := parseOne(raw, scanDisposition)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []Value{val}, nil
}
