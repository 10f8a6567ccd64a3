package grammar_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
)

func TestWhitespaceLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		str   string
		start int
		want  int
	}{
		{"empty", "", 0, 0},
		{"spaces", "  a", 0, 2},
		{"tabs and spaces", "\t \ta", 0, 3},
		{"mid string", "a  b", 1, 2},
		{"no whitespace", "abc", 0, 0},
		{"newline is not whitespace", "\r\n a", 0, 0},
		{"start beyond input", "a", 5, 0},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.WhitespaceLen(c.str, c.start), c.want; got != want {
				t.Errorf("grammar.WhitespaceLen(%q, %d) = %d, want %d", c.str, c.start, got, want)
			}
		})
	}
}

func TestTokenLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		str   string
		start int
		want  int
	}{
		{"empty", "", 0, 0},
		{"plain token", "token rest", 0, 5},
		{"stops at separator", "gzip;q=1", 0, 4},
		{"separator first", ",", 0, 0},
		{"stops at paren", "ab(c", 0, 2},
		{"stops at non ascii", "h\xc3\xa9llo", 0, 1},
		{"mid string", "a b", 2, 1},
		{"special value token", "100-continue", 0, 12},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.TokenLen(c.str, c.start), c.want; got != want {
				t.Errorf("grammar.TokenLen(%q, %d) = %d, want %d", c.str, c.start, got, want)
			}
		})
	}
}

func TestDigitsLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		str   string
		start int
		want  int
	}{
		{"empty", "", 0, 0},
		{"digits then letters", "123abc", 0, 3},
		{"no digits", "abc", 0, 0},
		{"mid string", "a42b", 1, 2},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.DigitsLen(c.str, c.start), c.want; got != want {
				t.Errorf("grammar.DigitsLen(%q, %d) = %d, want %d", c.str, c.start, got, want)
			}
		})
	}
}

func TestQuotedPairLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		str   string
		start int
		want  int
	}{
		{"pair", `\a`, 0, 2},
		{"escaped quote", `\"`, 0, 2},
		{"bare backslash", `\`, 0, 0},
		{"mid string", `a\b`, 1, 2},
		{"not a pair", "ab", 0, 0},
		{"non char", "\\\xff", 0, 0},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.QuotedPairLen(c.str, c.start), c.want; got != want {
				t.Errorf("grammar.QuotedPairLen(%q, %d) = %d, want %d", c.str, c.start, got, want)
			}
		})
	}
}

func TestQuotedStringLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		start   int
		want    int
		wantErr error
	}{
		{"simple", `"abc" rest`, 0, 5, nil},
		{"empty string", `""`, 0, 2, nil},
		{"escaped quote", `"a\"b"`, 0, 6, nil},
		{"escaped backslash", `"a\\"`, 0, 5, nil},
		{"no match", "abc", 0, 0, nil},
		{"mid string", `x "ab"`, 2, 4, nil},
		{"unterminated", `"abc`, 0, 0, grammar.ErrQuotedString},
		{"bare quote", `"`, 0, 0, grammar.ErrQuotedString},
		{"trailing escape", `"abc\`, 0, 0, grammar.ErrQuotedString},
		{"control byte", "\"a\x01b\"", 0, 0, grammar.ErrQuotedString},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.QuotedStringLen(c.str, c.start)
			if got != c.want {
				t.Errorf("grammar.QuotedStringLen(%q, %d) = %d, want %d", c.str, c.start, got, c.want)
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("grammar.QuotedStringLen(%q, %d) error = %v, want %v", c.str, c.start, err, c.wantErr)
			}
		})
	}
}

func TestCommentLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		start   int
		want    int
		wantErr error
	}{
		{"simple", "(abc) rest", 0, 5, nil},
		{"empty", "()", 0, 2, nil},
		{"nested", "(a(b)c)", 0, 7, nil},
		{"quoted pair", `(a\)b)`, 0, 6, nil},
		{"no match", "abc", 0, 0, nil},
		{"max nesting", "(((((x)))))", 0, 11, nil},
		{"too deep", "((((((x))))))", 0, 0, grammar.ErrComment},
		{"unbalanced", "(abc", 0, 0, grammar.ErrComment},
		{"trailing escape", `(abc\`, 0, 0, grammar.ErrComment},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.CommentLen(c.str, c.start)
			if got != c.want {
				t.Errorf("grammar.CommentLen(%q, %d) = %d, want %d", c.str, c.start, got, c.want)
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("grammar.CommentLen(%q, %d) error = %v, want %v", c.str, c.start, err, c.wantErr)
			}
		})
	}
}

func TestHostLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		str   string
		start int
		want  int
	}{
		{"reg-name", "example.com/path", 0, 11},
		{"reg-name with port", "example.com:8080 x", 0, 16},
		{"ipv4", "192.168.0.1:80", 0, 14},
		{"ipv6", "[::1]:8080", 0, 10},
		{"ipv6 no port", "[2001:db8::1]", 0, 13},
		{"bad ipv6", "[abc]", 0, 0},
		{"bracketed ipv4", "[1.2.3.4]", 0, 0},
		{"empty brackets", "[]", 0, 0},
		{"colon without port", "example.com:", 0, 11},
		{"port out of range", "example.com:99999", 0, 11},
		{"colon first", ":80", 0, 0},
		{"empty", "", 0, 0},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.HostLen(c.str, c.start), c.want; got != want {
				t.Errorf("grammar.HostLen(%q, %d) = %d, want %d", c.str, c.start, got, want)
			}
		})
	}
}

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"close", "close", true},
		{"continue token", "100-continue", true},
		{"slash", "no/slash", false},
		{"space", "has space", false},
		{"equals", "ab=c", false},
		{"extended token", "!#$%&'*+-.^_`|~09AZaz", true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsToken(c.str), c.want; got != want {
				t.Errorf("grammar.IsToken(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsQuoted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"quoted", `"abc"`, true},
		{"empty quotes", `""`, true},
		{"unterminated", `"ab`, false},
		{"bare token", "abc", false},
		{"trailing bytes", `"a"b"`, false},
		{"escaped quote", `"a\"b"`, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsQuoted(c.str), c.want; got != want {
				t.Errorf("grammar.IsQuoted(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsHostPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"host", "example.com", true},
		{"host and port", "example.com:80", true},
		{"ipv6 and port", "[::1]:443", true},
		{"port out of range", "example.com:808080", false},
		{"trailing colon", "host:", false},
		{"letter port", "host:abc", false},
		{"space", "exa mple", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsHostPort(c.str), c.want; got != want {
				t.Errorf("grammar.IsHostPort(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", `""`},
		{"no quote", "abc", `"abc"`},
		{"with quote", `"ab"c"`, `"\"ab\"c\""`},
		{"with backslash quote", `ab\"c`, `"ab\\\"c"`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Quote(c.str), c.want; got != want {
				t.Errorf("grammar.Quote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"empty quote", `""`, ""},
		{"no quote", "abc", "abc"},
		{"with quote", `"abc"`, "abc"},
		{"with backslash quote", `"\"ab\"c\\\""`, `"ab"c\"`},
		{"unterminated left as is", `"abc`, `"abc`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unquote(c.str), c.want; got != want {
				t.Errorf("grammar.Unquote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func BenchmarkTokenLen(b *testing.B) {
	str := "max-age=3600, no-cache, private"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := grammar.TokenLen(str, 0); got != 7 {
			b.Errorf("grammar.TokenLen(%q, 0) = %d, want 7", str, got)
		}
	}
}

func BenchmarkQuotedStringLen(b *testing.B) {
	str := `"attachment; filename=\"report.pdf\"" rest`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grammar.QuotedStringLen(str, 0); err != nil {
			b.Errorf("grammar.QuotedStringLen(%q, 0) error = %v, want nil", str, err)
		}
	}
}
