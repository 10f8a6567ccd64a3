package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
)

// scanFunc scans one value of a concrete grammar at start and returns the
// consumed length together with the parsed value. n == 0 means no value of
// the grammar starts there; scans that fail mid-production report the
// underlying grammar error.
type scanFunc func(s string, start int) (n int, val Value, err error)

// parseOne parses raw as exactly one value of the given grammar. Leading and
// trailing whitespace is allowed, anything else after the value fails the
// whole parse.
func parseOne(raw string, scan scanFunc) (Value, error) {
	i := grammar.WhitespaceLen(raw, 0)
	n, val, err := scan(raw, i)
	if err != nil {
		return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
	}
	if n == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	i += n
	i += grammar.WhitespaceLen(raw, i)
	if i != len(raw) {
		return nil, errtrace.Wrap(NewSyntaxError("trailing characters in %q", raw))
	}
	return val, nil
}

// parseList parses raw as a comma-separated list of values of the given
// grammar. Empty list elements are skipped. The list primitive itself
// accepts any valid prefix; a complete header value additionally has to
// consume the whole line, so any trailing garbage after the last valid
// element fails the parse.
func parseList(raw string, scan scanFunc) ([]Value, error) {
	var vals []Value
	i := grammar.WhitespaceLen(raw, 0)
	for i < len(raw) && raw[i] == ',' {
		i++
		i += grammar.WhitespaceLen(raw, i)
	}
	for i < len(raw) {
		n, val, err := scan(raw, i)
		if err != nil {
			return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
		}
		if n == 0 {
			return nil, errtrace.Wrap(NewSyntaxError("trailing characters in %q", raw))
		}
		vals = append(vals, val)
		i += n
		i += grammar.WhitespaceLen(raw, i)

		sawDelim := false
		for i < len(raw) && raw[i] == ',' {
			sawDelim = true
			i++
			i += grammar.WhitespaceLen(raw, i)
		}
		if !sawDelim && i < len(raw) {
			return nil, errtrace.Wrap(NewSyntaxError("trailing characters in %q", raw))
		}
	}
	if len(vals) == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return vals, nil
}

// scanParams scans the *( ";" token [ "=" ( token | quoted-string ) ] )
// parameter tail shared by media types, transfer codings, dispositions and
// range elements. Pairs are returned in input order so callers that split
// the list positionally (the "q" separator rule of Accept) can do so before
// folding them into a [Values] map. The scan stops before the first byte
// that cannot extend the tail and never consumes a trailing ";".
func scanParams(s string, start int) (int, [][2]string, error) {
	var pairs [][2]string
	i := start
	for {
		j := i + grammar.WhitespaceLen(s, i)
		if j >= len(s) || s[j] != ';' {
			return i - start, pairs, nil
		}
		j++
		j += grammar.WhitespaceLen(s, j)

		n, name, value, err := grammar.NameValueLen(s, j)
		if err != nil {
			return 0, nil, errtrace.Wrap(err)
		}
		if n == 0 {
			return i - start, pairs, nil
		}
		pairs = append(pairs, [2]string{name, value})
		i = j + n
	}
}

func paramsFromPairs(pairs [][2]string) Values {
	if len(pairs) == 0 {
		return nil
	}
	params := make(Values, len(pairs))
	for _, kv := range pairs {
		params.Append(kv[0], kv[1])
	}
	return params
}
