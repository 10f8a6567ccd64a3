package header

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/util"
)

// EntityTag is an opaque entity tag: ETag, If-Match, If-None-Match.
// Opaque holds the tag content without the surrounding double quotes.
type EntityTag struct {
	wildcard bool

	Weak   bool
	Opaque string
}

// AnyTag is the wildcard (*) accepted by If-Match and If-None-Match.
var AnyTag = EntityTag{wildcard: true}

// IsWildcard reports whether the tag is the wildcard (*).
func (t EntityTag) IsWildcard() bool { return t.wildcard }

func (t EntityTag) String() string {
	if t.wildcard {
		return "*"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if t.Weak {
		sb.WriteString("W/")
	}
	fmt.Fprint(sb, `"`, t.Opaque, `"`)
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (t EntityTag) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, t.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(t.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, t.String())
			return
		}

		type hideMethods EntityTag
		type EntityTag hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), EntityTag(t))
		return
	}
}

// Equal compares this tag with another for identity: same wildcard and
// weakness flags and byte-exact opaque content. For cache validation use
// [EntityTag.StrongMatch] and [EntityTag.WeakMatch] instead.
func (t EntityTag) Equal(val any) bool {
	var other EntityTag
	switch v := val.(type) {
	case EntityTag:
		other = v
	case *EntityTag:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return t == other
}

// StrongMatch reports whether t and other match by the strong comparison
// rule: neither is weak and the opaque contents are byte-exact. This is
// the rule If-Match requires.
func (t EntityTag) StrongMatch(other EntityTag) bool {
	if t.wildcard || other.wildcard {
		return true
	}
	return !t.Weak && !other.Weak && t.Opaque == other.Opaque
}

// WeakMatch reports whether t and other match by the weak comparison rule:
// the opaque contents are byte-exact regardless of weakness. This is the
// rule If-None-Match requires.
func (t EntityTag) WeakMatch(other EntityTag) bool {
	if t.wildcard || other.wildcard {
		return true
	}
	return t.Opaque == other.Opaque
}

// IsValid checks whether the tag is syntactically valid.
func (t EntityTag) IsValid() bool {
	if t.wildcard {
		return !t.Weak && t.Opaque == ""
	}
	for i := 0; i < len(t.Opaque); i++ {
		if t.Opaque[i] < 0x20 || t.Opaque[i] == 0x7F || t.Opaque[i] == '"' {
			return false
		}
	}
	return true
}

// Clone returns a copy of the tag.
func (t EntityTag) Clone() Value { return t }

func scanEntityTag(s string, start int) (int, Value, error) {
	if start >= len(s) {
		return 0, nil, nil
	}
	if s[start] == '*' {
		return 1, AnyTag, nil
	}

	var t EntityTag
	i := start
	if (s[i] == 'W' || s[i] == 'w') && i+1 < len(s) && s[i+1] == '/' {
		t.Weak = true
		i += 2
	}
	if i >= len(s) || s[i] != '"' {
		return 0, nil, nil
	}
	end := i + 1
	for end < len(s) && s[end] != '"' {
		if s[end] < 0x20 || s[end] == 0x7F {
			return 0, nil, nil
		}
		end++
	}
	if end >= len(s) {
		return 0, nil, nil
	}
	t.Opaque = s[i+1 : end]
	return end + 1 - start, t, nil
}

// entityTagParser parses entity tag fields. ETag carries exactly one tag;
// If-Match and If-None-Match carry comma-separated lists that may be the
// single wildcard "*".
type entityTagParser struct {
	list bool
}

func (p entityTagParser) MultiValue() bool { return p.list }

func (entityTagParser) Separator() string { return ", " }

func (p entityTagParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	if !p.list {
		val, err := parseOne(raw, scanEntityTag)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return []Value{val}, nil
	}
	return errtrace.Wrap2(parseList(raw, scanEntityTag))
}
