package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gohttphdr/header"
)

func TestInteger_String(t *testing.T) {
	t.Parallel()

	if got := header.Integer(1234).String(); got != "1234" {
		t.Errorf("n.String() = %q, want \"1234\"", got)
	}
}

func TestInteger_Equal(t *testing.T) {
	t.Parallel()

	n := header.Integer(70)
	cases := []struct {
		name string
		n    header.Integer
		val  any
		want bool
	}{
		{"to nil", n, nil, false},
		{"match", n, header.Integer(70), true},
		{"ptr", n, &n, true},
		{"nil ptr", n, (*header.Integer)(nil), false},
		{"not match", n, header.Integer(71), false},
		{"int", n, 70, false},
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

func TestInteger_IsValid(t *testing.T) {
	t.Parallel()

	if got := header.Integer(0).IsValid(); !got {
		t.Errorf("header.Integer(0).IsValid() = false, want true")
	}
	if got := header.Integer(-1).IsValid(); got {
		t.Errorf("header.Integer(-1).IsValid() = true, want false")
	}
}

func TestInteger_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    *header.Integer
		wantErr error
	}{
		{"zero", "0", ptr(header.Integer(0)), nil},
		{"plain", "3600", ptr(header.Integer(3600)), nil},
		{"surrounding space", " 3600 ", ptr(header.Integer(3600)), nil},
		{"signed", "+1", nil, header.ErrSyntax},
		{"negative", "-1", nil, header.ErrSyntax},
		{"trailing garbage", "60s", nil, header.ErrSyntax},
		{"empty", "", nil, header.ErrSyntax},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdrs := header.NewResponseHeaders(nil)
			if err := hdrs.AddRaw(header.NameAge, c.raw); err != nil {
				t.Fatalf("hdrs.AddRaw(%q, %q) error = %v, want nil", header.NameAge, c.raw, err)
			}

			got, err := hdrs.Age()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("hdrs.Age() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("hdrs.Age() = %v, want %v\ndiff (-got +want):\n%v", got, c.want, diff)
			}
		})
	}
}

func TestMaxForwards_Width(t *testing.T) {
	t.Parallel()

	hdrs := header.NewRequestHeaders(nil)
	if err := hdrs.AddRaw(header.NameMaxForwards, "4294967296"); err != nil {
		t.Fatalf("hdrs.AddRaw(Max-Forwards) error = %v, want nil", err)
	}

	_, err := hdrs.MaxForwards()
	if diff := cmp.Diff(err, header.ErrSyntax, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("hdrs.MaxForwards() error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrSyntax, diff)
	}
}

func ptr[T any](v T) *T { return &v }
