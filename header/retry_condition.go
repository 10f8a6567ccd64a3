package header

import (
	"fmt"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// RetryCondition is a Retry-After field value: either an absolute HTTP
// date or a relative delay in seconds. A zero Date means the delta form.
type RetryCondition struct {
	Date  time.Time
	Delta int64
}

// NewRetryDate returns the absolute-date form, truncated to whole seconds
// in UTC.
func NewRetryDate(t time.Time) RetryCondition {
	return RetryCondition{Date: t.Truncate(time.Second).UTC()}
}

// NewRetryDelta returns the delta-seconds form.
func NewRetryDelta(sec int64) RetryCondition {
	return RetryCondition{Delta: sec}
}

// IsDate reports whether the value carries an absolute date rather than a
// delay.
func (rc RetryCondition) IsDate() bool { return !rc.Date.IsZero() }

func (rc RetryCondition) String() string {
	if rc.IsDate() {
		return grammar.FormatDate(rc.Date)
	}
	return strconv.FormatInt(rc.Delta, 10)
}

// Format implements fmt.Formatter for custom formatting of the value.
func (rc RetryCondition) Format(f fmt.State, verb rune) {
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

		type hideMethods RetryCondition
		type RetryCondition hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), RetryCondition(rc))
		return
	}
}

// Equal compares this value with another for equality. The date and delta
// forms never compare equal.
func (rc RetryCondition) Equal(val any) bool {
	var other RetryCondition
	switch v := val.(type) {
	case RetryCondition:
		other = v
	case *RetryCondition:
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
	return rc.Delta == other.Delta
}

// IsValid checks whether the value is syntactically valid.
func (rc RetryCondition) IsValid() bool { return rc.IsDate() || rc.Delta >= 0 }

// IsZero reports whether the value is empty.
func (rc RetryCondition) IsZero() bool { return rc.Date.IsZero() && rc.Delta == 0 }

// Clone returns a copy of the value.
func (rc RetryCondition) Clone() Value { return rc }

// retryConditionParser parses the Retry-After field: delta seconds when
// the line is all digits, an HTTP date otherwise.
type retryConditionParser struct{}

func (retryConditionParser) MultiValue() bool { return false }

func (retryConditionParser) Separator() string { return ", " }

func (retryConditionParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	s := util.TrimSP(raw)
	if n := grammar.DigitsLen(s, 0); n > 0 && n == len(s) {
		sec, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
		}
		return []Value{NewRetryDelta(sec)}, nil
	}
	t, err := grammar.ParseDate(s)
	if err != nil {
		return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
	}
	return []Value{NewRetryDate(t)}, nil
}
