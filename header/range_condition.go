package header

import (
	"fmt"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// RangeCondition is an If-Range field value: either an entity tag or an
// HTTP date. A zero Date means the tag form.
type RangeCondition struct {
	Tag  EntityTag
	Date time.Time
}

// NewRangeConditionTag returns the entity-tag form.
func NewRangeConditionTag(tag EntityTag) RangeCondition {
	return RangeCondition{Tag: tag}
}

// NewRangeConditionDate returns the date form, truncated to whole seconds
// in UTC.
func NewRangeConditionDate(t time.Time) RangeCondition {
	return RangeCondition{Date: t.Truncate(time.Second).UTC()}
}

// IsDate reports whether the value carries a date rather than a tag.
func (rc RangeCondition) IsDate() bool { return !rc.Date.IsZero() }

func (rc RangeCondition) String() string {
	if rc.IsDate() {
		return grammar.FormatDate(rc.Date)
	}
	return rc.Tag.String()
}

// Format implements fmt.Formatter for custom formatting of the value.
func (rc RangeCondition) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, rc.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(rc.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, rc.String())
			return
		}

		type hideMethods RangeCondition
		type RangeCondition hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), RangeCondition(rc))
		return
	}
}

// Equal compares this value with another for equality. The tag and date
// forms never compare equal.
func (rc RangeCondition) Equal(val any) bool {
	var other RangeCondition
	switch v := val.(type) {
	case RangeCondition:
		other = v
	case *RangeCondition:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if rc.IsDate() != other.IsDate() {
		return false
	}
	if rc.IsDate() {
		return rc.Date.Equal(other.Date)
	}
	return rc.Tag.Equal(other.Tag)
}

// IsValid checks whether the value is syntactically valid. The If-Range
// wildcard is not allowed: a range condition names one entity.
func (rc RangeCondition) IsValid() bool {
	if rc.IsDate() {
		return true
	}
	return !rc.Tag.IsWildcard() && rc.Tag.IsValid()
}

// IsZero reports whether the value is empty.
func (rc RangeCondition) IsZero() bool { return rc.Tag == (EntityTag{}) && rc.Date.IsZero() }

// Clone returns a copy of the value.
func (rc RangeCondition) Clone() Value { return rc }

// rangeConditionParser parses the If-Range field: an entity tag when the
// line starts one, an HTTP date otherwise.
type rangeConditionParser struct{}

func (rangeConditionParser) MultiValue() bool { return false }

func (rangeConditionParser) Separator() string { return ", " }

func (rangeConditionParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	s := util.TrimSP(raw)
	if len(s) > 0 && (s[0] == '"' || ((s[0] == 'W' || s[0] == 'w') && len(s) > 1 && s[1] == '/')) {
		val, err := parseOne(s, scanEntityTag)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		rc := NewRangeConditionTag(val.(EntityTag))
		if !rc.IsValid() {
			return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
		}
		return []Value{rc}, nil
	}
	t, err := grammar.ParseDate(s)
	if err != nil {
		return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
	}
	return []Value{NewRangeConditionDate(t)}, nil
}
