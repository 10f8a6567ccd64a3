package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Token is a single HTTP token: a run of visible US-ASCII characters
// excluding separators and control characters. Tokens compare
// case-insensitively.
type Token string

// Canonical special values embedded in multi-valued headers. They compare
// case-insensitively on the wire but always serialize in these exact
// lowercase forms.
const (
	TokenClose    Token = "close"
	TokenChunked  Token = "chunked"
	TokenContinue Token = "100-continue"
)

func (t Token) String() string { return string(t) }

// Format implements fmt.Formatter for custom formatting of the value.
func (t Token) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, t.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(t.String()))
		return
	default:
		type hideMethods Token
		type Token hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Token(t))
		return
	}
}

// Equal compares this token with another for equality.
// Tokens compare case-insensitively.
func (t Token) Equal(val any) bool {
	var other Token
	switch v := val.(type) {
	case Token:
		other = v
	case *Token:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(t, other)
}

// IsValid checks whether the token is syntactically valid.
func (t Token) IsValid() bool { return grammar.IsToken(t) }

// Clone returns a copy of the token.
func (t Token) Clone() Value { return t }

func scanToken(s string, start int) (int, Value, error) {
	n := grammar.TokenLen(s, start)
	if n == 0 {
		return 0, nil, nil
	}
	return n, Token(s[start : start+n]), nil
}

// tokenListParser parses comma-separated lists of tokens: Connection,
// Trailer, Allow, Vary, Accept-Ranges, Content-Encoding and the like.
type tokenListParser struct{}

func (tokenListParser) MultiValue() bool { return true }

func (tokenListParser) Separator() string { return ", " }

func (tokenListParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	return errtrace.Wrap2(parseList(raw, scanToken))
}
