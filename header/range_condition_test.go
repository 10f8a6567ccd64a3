package header_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gohttphdr/header"
)

func TestRangeCondition_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rc   header.RangeCondition
		want string
	}{
		{"tag", header.NewRangeConditionTag(header.EntityTag{Opaque: "xyzzy"}), `"xyzzy"`},
		{
			"date",
			header.NewRangeConditionDate(time.Date(1994, time.October, 29, 19, 43, 31, 0, time.UTC)),
			"Sat, 29 Oct 1994 19:43:31 GMT",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rc.String(); got != c.want {
				t.Errorf("rc.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestRangeCondition_Equal(t *testing.T) {
	t.Parallel()

	date := time.Date(1994, time.October, 29, 19, 43, 31, 0, time.UTC)
	tag := header.NewRangeConditionTag(header.EntityTag{Opaque: "xyzzy"})

	cases := []struct {
		name string
		rc   header.RangeCondition
		val  any
		want bool
	}{
		{"zero to nil", header.RangeCondition{}, nil, false},
		{"zero to zero ptr", header.RangeCondition{}, &header.RangeCondition{}, true},
		{"zero to nil ptr", header.RangeCondition{}, (*header.RangeCondition)(nil), false},
		{"tag match", header.NewRangeConditionTag(header.EntityTag{Opaque: "xyzzy"}), &tag, true},
		{
			"tag mismatch",
			header.NewRangeConditionTag(header.EntityTag{Opaque: "xyzzy"}),
			header.NewRangeConditionTag(header.EntityTag{Opaque: "plugh"}),
			false,
		},
		{
			"date match",
			header.NewRangeConditionDate(date),
			header.NewRangeConditionDate(date),
			true,
		},
		{
			"forms differ",
			header.NewRangeConditionTag(header.EntityTag{Opaque: "xyzzy"}),
			header.NewRangeConditionDate(date),
			false,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rc.Equal(c.val); got != c.want {
				t.Errorf("rc.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRangeCondition_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rc   header.RangeCondition
		want bool
	}{
		{"tag", header.NewRangeConditionTag(header.EntityTag{Opaque: "xyzzy"}), true},
		{"weak tag", header.NewRangeConditionTag(header.EntityTag{Weak: true, Opaque: "xyzzy"}), true},
		{"wildcard tag", header.NewRangeConditionTag(header.AnyTag), false},
		{"date", header.NewRangeConditionDate(time.Now()), true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rc.IsValid(); got != c.want {
				t.Errorf("rc.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIfRange_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    *header.RangeCondition
		wantErr error
	}{
		{
			"strong tag",
			`"xyzzy"`,
			ptr(header.NewRangeConditionTag(header.EntityTag{Opaque: "xyzzy"})),
			nil,
		},
		{
			"weak tag",
			`W/"xyzzy"`,
			ptr(header.NewRangeConditionTag(header.EntityTag{Weak: true, Opaque: "xyzzy"})),
			nil,
		},
		{
			"date",
			"Sat, 29 Oct 1994 19:43:31 GMT",
			ptr(header.NewRangeConditionDate(time.Date(1994, time.October, 29, 19, 43, 31, 0, time.UTC))),
			nil,
		},
		{"wildcard", "*", nil, header.ErrSyntax},
		{"unterminated tag", `"xyzzy`, nil, header.ErrSyntax},
		{"garbage", "yesterday", nil, header.ErrSyntax},
		{"empty", "", nil, header.ErrSyntax},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdrs := header.NewRequestHeaders(nil)
			if err := hdrs.AddRaw(header.NameIfRange, c.raw); err != nil {
				t.Fatalf("hdrs.AddRaw(%q, %q) error = %v, want nil", header.NameIfRange, c.raw, err)
			}

			got, err := hdrs.IfRange()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("hdrs.IfRange() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("hdrs.IfRange() = %v, want %v\ndiff (-got +want):\n%v", got, c.want, diff)
			}
		})
	}
}
