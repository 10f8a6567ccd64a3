package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
)

func TestNameValueLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		str       string
		start     int
		want      int
		wantName  string
		wantValue string
		wantErr   error
	}{
		{"name and token value", "name=value", 0, 10, "name", "value", nil},
		{"name only", "name", 0, 4, "name", "", nil},
		{"name only trailing space", "name  ", 0, 6, "name", "", nil},
		{"spaces around equals", "max-age = 3600", 0, 14, "max-age", "3600", nil},
		{"quoted value keeps quotes", `name="a b"`, 0, 10, "name", `"a b"`, nil},
		{"stops at delimiter", "a=1, b=2", 0, 3, "a", "1", nil},
		{"name only before delimiter", "no-cache, private", 0, 8, "no-cache", "", nil},
		{"empty name", "=value", 0, 0, "", "", nil},
		{"equals without value", "name=", 0, 0, "", "", nil},
		{"equals then delimiter", "name=,", 0, 0, "", "", nil},
		{"unterminated quoted value", `name="abc`, 0, 0, "", "", grammar.ErrQuotedString},
		{"mid string", "x; a=b", 3, 3, "a", "b", nil},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, name, value, err := grammar.NameValueLen(c.str, c.start)
			if got != c.want || name != c.wantName || value != c.wantValue {
				t.Errorf("grammar.NameValueLen(%q, %d) = (%d, %q, %q), want (%d, %q, %q)",
					c.str, c.start, got, name, value, c.want, c.wantName, c.wantValue)
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("grammar.NameValueLen(%q, %d) error = %v, want %v", c.str, c.start, err, c.wantErr)
			}
		})
	}
}

func TestNameValueListLen(t *testing.T) {
	t.Parallel()

	type pair struct{ Name, Value string }

	cases := []struct {
		name      string
		str       string
		delim     byte
		want      int
		wantPairs []pair
		wantErr   error
	}{
		{
			name:      "single pair",
			str:       "no-cache",
			delim:     ',',
			want:      8,
			wantPairs: []pair{{"no-cache", ""}},
		},
		{
			name:      "several pairs",
			str:       "max-age=3600, no-cache, private=\"x\"",
			delim:     ',',
			want:      35,
			wantPairs: []pair{{"max-age", "3600"}, {"no-cache", ""}, {"private", `"x"`}},
		},
		{
			name:      "empty elements skipped",
			str:       " , a=1,, b ,",
			delim:     ',',
			want:      12,
			wantPairs: []pair{{"a", "1"}, {"b", ""}},
		},
		{
			name:      "semicolon delimiter",
			str:       "q=0.5; level=1",
			delim:     ';',
			want:      14,
			wantPairs: []pair{{"q", "0.5"}, {"level", "1"}},
		},
		{
			name:      "stops before garbage",
			str:       "a=1, (bad)",
			delim:     ',',
			want:      5,
			wantPairs: []pair{{"a", "1"}},
		},
		{
			name:      "stops without delimiter",
			str:       "a=1 b=2",
			delim:     ',',
			want:      4,
			wantPairs: []pair{{"a", "1"}},
		},
		{
			name:  "zero pairs",
			str:   " , ",
			delim: ',',
			want:  0,
		},
		{
			name:  "empty input",
			str:   "",
			delim: ',',
			want:  0,
		},
		{
			name:    "malformed first pair",
			str:     `a="broken`,
			delim:   ',',
			want:    0,
			wantErr: grammar.ErrQuotedString,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var pairs []pair
			got, err := grammar.NameValueListLen(c.str, 0, c.delim, func(name, value string) {
				pairs = append(pairs, pair{name, value})
			})
			if got != c.want {
				t.Errorf("grammar.NameValueListLen(%q, 0, %q) = %d, want %d", c.str, c.delim, got, c.want)
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("grammar.NameValueListLen(%q, 0, %q) error = %v, want %v", c.str, c.delim, err, c.wantErr)
			}
			if diff := cmp.Diff(c.wantPairs, pairs); diff != "" {
				t.Errorf("grammar.NameValueListLen(%q, 0, %q) pairs mismatch (-want +got):\n%s", c.str, c.delim, diff)
			}
		})
	}
}

func BenchmarkNameValueListLen(b *testing.B) {
	str := `max-age=3600, no-cache, private="field", must-revalidate`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, err := grammar.NameValueListLen(str, 0, ',', func(string, string) {})
		if err != nil {
			b.Errorf("grammar.NameValueListLen(%q, 0, ',') error = %v, want nil", str, err)
		}
		if n != len(str) {
			b.Errorf("grammar.NameValueListLen(%q, 0, ',') = %d, want %d", str, n, len(str))
		}
	}
}
