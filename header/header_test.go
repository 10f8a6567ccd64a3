package header_test

import (
	"testing"

	"github.com/ghettovoice/gohttphdr/header"
)

func TestCanonicName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want header.Name
	}{
		{"empty", "", ""},
		{"lower", "content-type", "Content-Type"},
		{"upper", "CONTENT-TYPE", "Content-Type"},
		{"mixed", "cOntEnt-tYpe", "Content-Type"},
		{"canonic", "Content-Type", "Content-Type"},
		{"single word", "host", "Host"},
		{"surrounding space", "  Host ", "Host"},
		{"etag", "etag", "ETag"},
		{"te", "te", "TE"},
		{"content-md5", "content-md5", "Content-MD5"},
		{"www-authenticate", "www-authenticate", "WWW-Authenticate"},
		{"extension", "x-custom-header", "X-Custom-Header"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := header.CanonicName(c.in); got != c.want {
				t.Errorf("header.CanonicName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestName_ToCanonic(t *testing.T) {
	t.Parallel()

	if got := header.Name("transfer-encoding").ToCanonic(); got != header.NameTransferEncoding {
		t.Errorf("name.ToCanonic() = %q, want %q", got, header.NameTransferEncoding)
	}
}

func TestName_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    header.Name
		want bool
	}{
		{"empty", "", false},
		{"simple", "Accept", true},
		{"hyphen", "Cache-Control", true},
		{"space inside", "Cache Control", false},
		{"colon", "Accept:", false},
		{"ctl", "Accept\x01", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.n.IsValid(); got != c.want {
				t.Errorf("n.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestName_Equal(t *testing.T) {
	t.Parallel()

	host := header.NameHost
	cases := []struct {
		name string
		n    header.Name
		val  any
		want bool
	}{
		{"to nil", header.NameHost, nil, false},
		{"same case", header.NameHost, header.NameHost, true},
		{"other case", header.NameHost, header.Name("HOST"), true},
		{"ptr", header.NameHost, &host, true},
		{"nil ptr", header.NameHost, (*header.Name)(nil), false},
		{"not match", header.NameHost, header.NameDate, false},
		{"string", header.NameHost, "Host", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.n.Equal(c.val); got != c.want {
				t.Errorf("n.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}
