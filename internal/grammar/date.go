package grammar

import (
	"time"

	"braces.dev/errtrace"
)

// TimeFormat is the canonical HTTP date layout (RFC 1123 with the literal
// GMT zone). It is the only layout dates are rendered in.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// dateFormats are the three layouts an HTTP date may arrive in, preferred
// form first.
var dateFormats = [...]string{TimeFormat, time.RFC850, time.ANSIC}

// ParseDate parses an HTTP date in RFC 1123, RFC 850 or ANSI C asctime
// form. The result is normalized to UTC. Two-digit RFC 850 years resolve
// the way the time package resolves them: 69-99 into 19xx, 00-68 into 20xx.
func ParseDate(s string) (time.Time, error) {
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errtrace.Wrap(ErrDate)
}

// FormatDate renders t in the canonical [TimeFormat] layout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}
