// Package grammar implements the RFC 2616 lexical primitives shared by all
// header value parsers. Scan functions take an input string and a start
// offset and return the number of bytes consumed by the production at that
// position. A zero length means the production does not match there; scans
// that can fail mid-production (quoted-string, comment) report malformed
// input with a non-nil error.
package grammar

//go:generate errtrace -w .

import (
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/util"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrQuotedString Error = "malformed quoted-string"
	ErrComment      Error = "malformed comment"
	ErrDate         Error = "malformed date"
)

type charClass uint8

const (
	classToken charClass = 1 << iota
	classSpace
	classDigit
	classQdtext
	classCtext
	classHost
)

var classes [256]charClass

func init() {
	// token = 1*<any CHAR except CTLs or separators>
	for c := 0x21; c < 0x7F; c++ {
		classes[c] |= classToken
	}
	for _, c := range "()<>@,;:\\\"/[]?={}" {
		classes[c] &^= classToken
	}

	classes[' '] |= classSpace
	classes['\t'] |= classSpace

	for c := '0'; c <= '9'; c++ {
		classes[c] |= classDigit
	}

	// qdtext = <any TEXT except <">>, ctext = <any TEXT except "(" and ")">
	for c := 0x20; c < 0x100; c++ {
		if c == 0x7F {
			continue
		}
		if c != '"' {
			classes[c] |= classQdtext
		}
		if c != '(' && c != ')' {
			classes[c] |= classCtext
		}
	}
	classes['\t'] |= classQdtext | classCtext

	// reg-name charset, less the separators that delimit header lists
	// and comments.
	for c := 'a'; c <= 'z'; c++ {
		classes[c] |= classHost
	}
	for c := 'A'; c <= 'Z'; c++ {
		classes[c] |= classHost
	}
	for c := '0'; c <= '9'; c++ {
		classes[c] |= classHost
	}
	for _, c := range "-._~%!$&'*+;=" {
		classes[c] |= classHost
	}
}

// WhitespaceLen returns the length of the run of linear whitespace
// (SP / HTAB) at start.
func WhitespaceLen(s string, start int) int {
	i := start
	for i < len(s) && classes[s[i]]&classSpace != 0 {
		i++
	}
	return i - start
}

// TokenLen returns the length of the token at start, 0 when s[start] is not
// a token character.
func TokenLen(s string, start int) int {
	i := start
	for i < len(s) && classes[s[i]]&classToken != 0 {
		i++
	}
	return i - start
}

// DigitsLen returns the length of the run of ASCII digits at start.
func DigitsLen(s string, start int) int {
	i := start
	for i < len(s) && classes[s[i]]&classDigit != 0 {
		i++
	}
	return i - start
}

// QuotedPairLen returns 2 when a quoted-pair ("\" CHAR) starts at start,
// 0 otherwise.
func QuotedPairLen(s string, start int) int {
	if start+1 >= len(s) || s[start] != '\\' || s[start+1] > 0x7F {
		return 0
	}
	return 2
}

// QuotedStringLen returns the length of the quoted-string at start including
// both quotes. It returns (0, nil) when s[start] is not a double quote and
// (0, [ErrQuotedString]) when the string is unterminated or holds a byte
// outside qdtext. Bytes after the closing quote are not consumed.
func QuotedStringLen(s string, start int) (int, error) {
	if start >= len(s) || s[start] != '"' {
		return 0, nil
	}
	i := start + 1
	for i < len(s) {
		switch {
		case s[i] == '\\':
			n := QuotedPairLen(s, i)
			if n == 0 {
				return 0, errtrace.Wrap(ErrQuotedString)
			}
			i += n
		case s[i] == '"':
			return i - start + 1, nil
		case classes[s[i]]&classQdtext != 0:
			i++
		default:
			return 0, errtrace.Wrap(ErrQuotedString)
		}
	}
	return 0, errtrace.Wrap(ErrQuotedString)
}

// maxCommentDepth bounds comment nesting so crafted input cannot force
// unbounded work.
const maxCommentDepth = 5

// CommentLen returns the length of the comment at start including both
// parentheses. Comments may nest and may contain quoted-pairs. It returns
// (0, nil) when s[start] is not "(" and (0, [ErrComment]) when the comment
// is unbalanced or nests deeper than [maxCommentDepth].
func CommentLen(s string, start int) (int, error) {
	if start >= len(s) || s[start] != '(' {
		return 0, nil
	}
	depth := 1
	i := start + 1
	for i < len(s) {
		switch {
		case s[i] == '\\':
			n := QuotedPairLen(s, i)
			if n == 0 {
				return 0, errtrace.Wrap(ErrComment)
			}
			i += n
		case s[i] == '(':
			depth++
			if depth > maxCommentDepth {
				return 0, errtrace.Wrap(ErrComment)
			}
			i++
		case s[i] == ')':
			depth--
			if depth == 0 {
				return i - start + 1, nil
			}
			i++
		case classes[s[i]]&classCtext != 0:
			i++
		default:
			return 0, errtrace.Wrap(ErrComment)
		}
	}
	return 0, errtrace.Wrap(ErrComment)
}

// HostLen returns the length of the host [":" port] production at start.
// The host part is a reg-name, an IPv4 literal, or a bracketed IPv6 literal.
// A colon is consumed only together with a valid port (1*DIGIT, <= 65535);
// otherwise the production ends before it.
func HostLen(s string, start int) int {
	if start >= len(s) {
		return 0
	}
	i := start
	if s[i] == '[' {
		end := strings.IndexByte(s[i:], ']')
		if end < 2 {
			return 0
		}
		addr, err := netip.ParseAddr(s[i+1 : i+end])
		if err != nil || addr.Is4() {
			return 0
		}
		i += end + 1
	} else {
		n := i
		for n < len(s) && classes[s[n]]&classHost != 0 {
			n++
		}
		if n == i {
			return 0
		}
		i = n
	}
	if i < len(s) && s[i] == ':' {
		d := DigitsLen(s, i+1)
		if d > 0 {
			if _, err := strconv.ParseUint(s[i+1:i+1+d], 10, 16); err == nil {
				i += 1 + d
			}
		}
	}
	return i - start
}

// IsToken reports whether s is a non-empty run of token characters.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if classes[s[i]]&classToken == 0 {
			return false
		}
	}
	return true
}

// IsQuoted reports whether s is one complete quoted-string.
func IsQuoted[T ~string | ~[]byte](s T) bool {
	if len(s) < 2 {
		return false
	}
	n, err := QuotedStringLen(string(s), 0)
	return err == nil && n == len(s)
}

// IsHostPort reports whether s is one complete host [":" port] production.
func IsHostPort[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	return HostLen(string(s), 0) == len(s)
}

// Quote wraps s into a quoted-string, escaping '"' and '\' as quoted-pairs.
func Quote(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote strips the surrounding quotes from a quoted-string and resolves
// quoted-pairs. Input that is not a complete quoted-string is returned
// unchanged.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
