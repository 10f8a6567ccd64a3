package grammar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		want    time.Time
		wantErr error
	}{
		{
			name: "rfc 1123",
			str:  "Sun, 06 Nov 1994 08:49:37 GMT",
			want: time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name: "rfc 850",
			str:  "Sunday, 06-Nov-94 08:49:37 GMT",
			want: time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name: "asctime",
			str:  "Sun Nov  6 08:49:37 1994",
			want: time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
		},
		{
			name: "rfc 850 year pivot",
			str:  "Saturday, 01-Jan-05 00:00:00 GMT",
			want: time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "iso 8601 rejected",
			str:     "1994-11-06T08:49:37Z",
			wantErr: grammar.ErrDate,
		},
		{
			name:    "empty",
			str:     "",
			wantErr: grammar.ErrDate,
		},
		{
			name:    "garbage",
			str:     "next tuesday",
			wantErr: grammar.ErrDate,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.ParseDate(c.str)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("grammar.ParseDate(%q) error = %v, want %v", c.str, err, c.wantErr)
			}
			if err == nil && !got.Equal(c.want) {
				t.Errorf("grammar.ParseDate(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "utc",
			t:    time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
			want: "Sun, 06 Nov 1994 08:49:37 GMT",
		},
		{
			name: "non utc zone normalized",
			t:    time.Date(1994, time.November, 6, 10, 49, 37, 0, time.FixedZone("CET", 2*60*60)),
			want: "Sun, 06 Nov 1994 08:49:37 GMT",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.FormatDate(c.t), c.want; got != want {
				t.Errorf("grammar.FormatDate(%v) = %q, want %q", c.t, got, want)
			}
		})
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	t.Parallel()

	// All three input forms render back in the single canonical form.
	for _, str := range []string{
		"Sun, 06 Nov 1994 08:49:37 GMT",
		"Sunday, 06-Nov-94 08:49:37 GMT",
		"Sun Nov  6 08:49:37 1994",
	} {
		d, err := grammar.ParseDate(str)
		if err != nil {
			t.Fatalf("grammar.ParseDate(%q) error = %v, want nil", str, err)
		}
		if got, want := grammar.FormatDate(d), "Sun, 06 Nov 1994 08:49:37 GMT"; got != want {
			t.Errorf("grammar.FormatDate(grammar.ParseDate(%q)) = %q, want %q", str, got, want)
		}
	}
}
