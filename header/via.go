package header

import (
	"fmt"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// ViaEntry is one hop of the Via field: the protocol the message was
// received over, the host or pseudonym it was received by, and an optional
// comment. Protocol keeps the wire form, either "version" alone or
// "name/version". Comment stores the content without the surrounding
// parentheses.
type ViaEntry struct {
	Protocol string
	By       string
	Comment  string
}

func (v ViaEntry) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fmt.Fprint(sb, v.Protocol, " ", v.By)
	if v.Comment != "" {
		fmt.Fprint(sb, " (", v.Comment, ")")
	}
	return sb.String()
}

// Equal compares this entry with another for equality.
// Protocols and received-by compare case-insensitively, comments
// byte-exact.
func (v ViaEntry) Equal(val any) bool {
	var other ViaEntry
	switch vv := val.(type) {
	case ViaEntry:
		other = vv
	case *ViaEntry:
		if vv == nil {
			return false
		}
		other = *vv
	default:
		return false
	}
	return util.EqFold(v.Protocol, other.Protocol) &&
		util.EqFold(v.By, other.By) &&
		v.Comment == other.Comment
}

// IsValid checks whether the entry is syntactically valid.
func (v ViaEntry) IsValid() bool {
	if n := scanViaProtocol(v.Protocol, 0); n != len(v.Protocol) || n == 0 {
		return false
	}
	if !grammar.IsHostPort(v.By) && !grammar.IsToken(v.By) {
		return false
	}
	if v.Comment != "" {
		wrapped := "(" + v.Comment + ")"
		n, err := grammar.CommentLen(wrapped, 0)
		return err == nil && n == len(wrapped)
	}
	return true
}

// IsZero reports whether the entry is empty.
func (v ViaEntry) IsZero() bool { return v.Protocol == "" && v.By == "" && v.Comment == "" }

// Clone returns a copy of the entry.
func (v ViaEntry) Clone() Value { return v }

// scanViaProtocol scans the received-protocol production:
// [ protocol-name "/" ] protocol-version.
func scanViaProtocol(s string, start int) int {
	n := grammar.TokenLen(s, start)
	if n == 0 {
		return 0
	}
	i := start + n
	if i < len(s) && s[i] == '/' {
		vn := grammar.TokenLen(s, i+1)
		if vn == 0 {
			return 0
		}
		i += 1 + vn
	}
	return i - start
}

func scanViaEntry(s string, start int) (int, Value, error) {
	pn := scanViaProtocol(s, start)
	if pn == 0 {
		return 0, nil, nil
	}
	v := ViaEntry{Protocol: s[start : start+pn]}
	i := start + pn

	wn := grammar.WhitespaceLen(s, i)
	if wn == 0 {
		return 0, nil, nil
	}
	i += wn

	bn := grammar.HostLen(s, i)
	if bn == 0 {
		bn = grammar.TokenLen(s, i)
	}
	if bn == 0 {
		return 0, nil, nil
	}
	v.By = s[i : i+bn]
	i += bn

	j := i + grammar.WhitespaceLen(s, i)
	if j < len(s) && s[j] == '(' {
		cn, err := grammar.CommentLen(s, j)
		if err != nil {
			return 0, nil, errtrace.Wrap(err)
		}
		v.Comment = s[j+1 : j+cn-1]
		i = j + cn
	}
	return i - start, v, nil
}

// viaParser parses the comma-separated Via field.
type viaParser struct{}

func (viaParser) MultiValue() bool { return true }

func (viaParser) Separator() string { return ", " }

func (viaParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	return errtrace.Wrap2(parseList(raw, scanViaEntry))
}
