package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// TransferCoding is one element of Transfer-Encoding or TE: a coding token
// with optional parameters. The "chunked" coding is the special value
// embedded in Transfer-Encoding; TE elements may carry a "q" parameter.
type TransferCoding struct {
	Coding string
	Params Values
}

// TransferCodingChunked is the canonical chunked coding.
var TransferCodingChunked = TransferCoding{Coding: string(TokenChunked)}

func (tc TransferCoding) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(tc.Coding)
	renderHdrParams(sb, tc.Params) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (tc TransferCoding) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, tc.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(tc.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, tc.String())
			return
		}

		type hideMethods TransferCoding
		type TransferCoding hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), TransferCoding(tc))
		return
	}
}

// Quality returns the "q" parameter of a TE element and whether one is
// present.
func (tc TransferCoding) Quality() (float64, bool) {
	v, ok := tc.Params.First("q")
	if !ok {
		return 0, false
	}
	q, err := strconv.ParseFloat(v, 64)
	if err != nil || q < 0 || q > 1 {
		return 0, false
	}
	return q, true
}

// Equal compares this coding with another for equality.
// Codings compare case-insensitively; the "q" parameter must agree when
// present in either side.
func (tc TransferCoding) Equal(val any) bool {
	var other TransferCoding
	switch v := val.(type) {
	case TransferCoding:
		other = v
	case *TransferCoding:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(tc.Coding, other.Coding) &&
		compareHdrParams(tc.Params, other.Params, map[string]bool{"q": true})
}

// IsValid checks whether the coding is syntactically valid.
func (tc TransferCoding) IsValid() bool {
	return grammar.IsToken(tc.Coding) && validateHdrParams(tc.Params)
}

// IsZero reports whether the coding is empty.
func (tc TransferCoding) IsZero() bool { return tc.Coding == "" && len(tc.Params) == 0 }

// Clone returns a copy of the coding.
func (tc TransferCoding) Clone() Value {
	tc.Params = tc.Params.Clone()
	return tc
}

func scanTransferCoding(s string, start int) (int, Value, error) {
	n := grammar.TokenLen(s, start)
	if n == 0 {
		return 0, nil, nil
	}
	tc := TransferCoding{Coding: s[start : start+n]}
	i := start + n

	pn, pairs, err := scanParams(s, i)
	if err != nil {
		return 0, nil, errtrace.Wrap(err)
	}
	tc.Params = paramsFromPairs(pairs)
	return i + pn - start, tc, nil
}

// transferCodingParser parses the comma-separated Transfer-Encoding and TE
// fields.
type transferCodingParser struct{}

func (transferCodingParser) MultiValue() bool { return true }

func (transferCodingParser) Separator() string { return ", " }

func (transferCodingParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	return errtrace.Wrap2(parseList(raw, scanTransferCoding))
}
