package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Authentication is a challenge or credentials value: the auth scheme plus
// the opaque remainder of the line (basic credentials, digest parameters
// and so on). Param keeps the remainder verbatim.
type Authentication struct {
	Scheme string
	Param  string
}

func (auth Authentication) String() string {
	if auth.Param == "" {
		return auth.Scheme
	}
	return auth.Scheme + " " + auth.Param
}

// Format implements fmt.Formatter for custom formatting of the value.
func (auth Authentication) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, auth.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(auth.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, auth.String())
			return
		}

		type hideMethods Authentication
		type Authentication hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Authentication(auth))
		return
	}
}

// Equal compares this value with another for equality.
// Schemes compare case-insensitively, parameters byte-exact.
func (auth Authentication) Equal(val any) bool {
	var other Authentication
	switch v := val.(type) {
	case Authentication:
		other = v
	case *Authentication:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(auth.Scheme, other.Scheme) && auth.Param == other.Param
}

// IsValid checks whether the value is syntactically valid.
func (auth Authentication) IsValid() bool {
	if !grammar.IsToken(auth.Scheme) {
		return false
	}
	return auth.Param == "" || Text(auth.Param).IsValid()
}

// IsZero reports whether the value is empty.
func (auth Authentication) IsZero() bool { return auth == Authentication{} }

// Clone returns a copy of the value.
func (auth Authentication) Clone() Value { return auth }

// authParser parses one challenge or credentials line: an auth scheme
// token followed by the rest of the line taken opaquely.
type authParser struct{}

func (authParser) MultiValue() bool { return false }

func (authParser) Separator() string { return ", " }

func (authParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	s := util.TrimSP(raw)
	n := grammar.TokenLen(s, 0)
	if n == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	auth := Authentication{Scheme: s[:n]}
	if n < len(s) {
		wn := grammar.WhitespaceLen(s, n)
		if wn == 0 {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
		auth.Param = s[n+wn:]
		if !Text(auth.Param).IsValid() {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
	}
	return []Value{auth}, nil
}
