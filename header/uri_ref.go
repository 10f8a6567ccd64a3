package header

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/util"
)

// URIRef is a URI reference carried by Location, Content-Location and
// Referer, wrapping [url.URL]. Relative references are kept as parsed.
type URIRef struct {
	URL url.URL
}

// ParseURIRef parses a URI reference.
func ParseURIRef(s string) (URIRef, error) {
	s = util.TrimSP(s)
	if s == "" || strings.ContainsAny(s, " \t") {
		return URIRef{}, errtrace.Wrap(NewSyntaxError("%q", s))
	}
	u, err := url.Parse(s)
	if err != nil {
		return URIRef{}, errtrace.Wrap(NewSyntaxError("%q: %w", s, err))
	}
	return URIRef{URL: *u}, nil
}

// IsAbsolute reports whether the reference carries a scheme.
func (u URIRef) IsAbsolute() bool { return u.URL.IsAbs() }

func (u URIRef) String() string { return u.URL.String() }

// Format implements fmt.Formatter for custom formatting of the value.
func (u URIRef) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URIRef
		type URIRef hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URIRef(u))
		return
	}
}

// Equal compares this reference with another for equality by the rendered
// form, byte-exact.
func (u URIRef) Equal(val any) bool {
	var other URIRef
	switch v := val.(type) {
	case URIRef:
		other = v
	case *URIRef:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.String() == other.String()
}

// IsValid checks whether the reference is non-empty.
func (u URIRef) IsValid() bool { return u.String() != "" }

// IsZero reports whether the reference is empty.
func (u URIRef) IsZero() bool { return u.URL == (url.URL{}) }

// Clone returns a copy of the reference.
func (u URIRef) Clone() Value { return u }

// uriParser parses fields that carry a single URI reference.
type uriParser struct{}

func (uriParser) MultiValue() bool { return false }

func (uriParser) Separator() string { return ", " }

func (uriParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	u, err := ParseURIRef(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []Value{u}, nil
}
