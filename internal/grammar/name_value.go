package grammar

import (
	"braces.dev/errtrace"
)

// NameValueLen scans the name/value pair production
//
//	token [ *WS "=" *WS ( token | quoted-string ) ] *WS
//
// at start and returns the consumed length together with the name and the
// value. A name-only pair yields value == "". A quoted-string value is
// returned with its quotes intact so callers can tell the two value forms
// apart. n == 0 means no pair starts there: the name token is empty, or an
// "=" is present but no value production follows. A malformed quoted-string
// value additionally reports the underlying scan error.
func NameValueLen(s string, start int) (n int, name, value string, err error) {
	nameLen := TokenLen(s, start)
	if nameLen == 0 {
		return 0, "", "", nil
	}
	name = s[start : start+nameLen]

	i := start + nameLen
	i += WhitespaceLen(s, i)
	if i >= len(s) || s[i] != '=' {
		return i - start, name, "", nil
	}
	i++
	i += WhitespaceLen(s, i)

	vn, verr := QuotedStringLen(s, i)
	if verr != nil {
		return 0, "", "", errtrace.Wrap(verr)
	}
	if vn == 0 {
		vn = TokenLen(s, i)
		if vn == 0 {
			return 0, "", "", nil
		}
	}
	value = s[i : i+vn]

	i += vn
	i += WhitespaceLen(s, i)
	return i - start, name, value, nil
}

// NameValueListLen scans a delim-separated list of name/value pairs at
// start, calling f for each pair in input order. Runs of delimiters and the
// whitespace around them are consumed, including leading and trailing runs,
// so empty list elements are skipped. Scanning stops at the first position
// where no further pair matches; the returned length then covers everything
// through the separators after the last valid pair. It returns 0 iff zero
// pairs were parsed, with the underlying scan error when the first pair was
// malformed rather than absent.
func NameValueListLen(s string, start int, delim byte, f func(name, value string)) (int, error) {
	i := start + WhitespaceLen(s, start)
	for i < len(s) && s[i] == delim {
		i++
		i += WhitespaceLen(s, i)
	}

	count, end := 0, 0
	for i < len(s) {
		n, name, value, err := NameValueLen(s, i)
		if n == 0 {
			if count == 0 {
				return 0, errtrace.Wrap(err)
			}
			break
		}
		f(name, value)
		count++
		i += n
		end = i

		sawDelim := false
		for i < len(s) && s[i] == delim {
			sawDelim = true
			i++
			i += WhitespaceLen(s, i)
		}
		if !sawDelim {
			break
		}
		end = i
	}
	if count == 0 {
		return 0, nil
	}
	return end - start, nil
}
