package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gohttphdr/header"
)

func TestRangeSpec_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rs   header.RangeSpec
		want string
	}{
		{"closed", header.RangeSpec{First: 0, Last: 499}, "0-499"},
		{"open", header.RangeSpec{First: 500, Last: -1}, "500-"},
		{"suffix", header.RangeSpec{First: -1, Last: 500}, "-500"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rs.String(); got != c.want {
				t.Errorf("rs.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestRangeSpec_IsSuffix(t *testing.T) {
	t.Parallel()

	if got := (header.RangeSpec{First: -1, Last: 500}).IsSuffix(); !got {
		t.Errorf("rs.IsSuffix() = %v, want true", got)
	}
	if got := (header.RangeSpec{First: 0, Last: 499}).IsSuffix(); got {
		t.Errorf("rs.IsSuffix() = %v, want false", got)
	}
}

func TestRangeSpec_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rs   header.RangeSpec
		want bool
	}{
		{"closed", header.RangeSpec{First: 0, Last: 499}, true},
		{"open", header.RangeSpec{First: 500, Last: -1}, true},
		{"suffix", header.RangeSpec{First: -1, Last: 500}, true},
		{"both absent", header.RangeSpec{First: -1, Last: -1}, false},
		{"inverted", header.RangeSpec{First: 500, Last: 400}, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rs.IsValid(); got != c.want {
				t.Errorf("rs.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRangeValue_String(t *testing.T) {
	t.Parallel()

	rng := header.RangeValue{
		Unit: "bytes",
		Specs: []header.RangeSpec{
			{First: 0, Last: 499},
			{First: 500, Last: -1},
			{First: -1, Last: 500},
		},
	}
	if got, want := rng.String(), "bytes=0-499,500-,-500"; got != want {
		t.Errorf("rng.String() = %q, want %q", got, want)
	}
}

func TestRangeValue_Equal(t *testing.T) {
	t.Parallel()

	bytes0 := header.RangeValue{Unit: "bytes", Specs: []header.RangeSpec{{First: 0, Last: 499}}}

	cases := []struct {
		name string
		rng  header.RangeValue
		val  any
		want bool
	}{
		{"zero to nil", header.RangeValue{}, nil, false},
		{"zero to zero ptr", header.RangeValue{}, &header.RangeValue{}, true},
		{"zero to nil ptr", header.RangeValue{}, (*header.RangeValue)(nil), false},
		{
			"unit case",
			header.RangeValue{Unit: "Bytes", Specs: []header.RangeSpec{{First: 0, Last: 499}}},
			bytes0,
			true,
		},
		{
			"spec mismatch",
			header.RangeValue{Unit: "bytes", Specs: []header.RangeSpec{{First: 0, Last: 500}}},
			bytes0,
			false,
		},
		{"match", bytes0, &bytes0, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rng.Equal(c.val); got != c.want {
				t.Errorf("rng.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRange_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    *header.RangeValue
		wantErr error
	}{
		{
			"single",
			"bytes=0-499",
			ptr(header.RangeValue{Unit: "bytes", Specs: []header.RangeSpec{{First: 0, Last: 499}}}),
			nil,
		},
		{
			"all forms",
			"bytes=0-499,500-,-500",
			ptr(header.RangeValue{Unit: "bytes", Specs: []header.RangeSpec{
				{First: 0, Last: 499},
				{First: 500, Last: -1},
				{First: -1, Last: 500},
			}}),
			nil,
		},
		{
			"spaced list",
			"bytes=0-0, -1",
			ptr(header.RangeValue{Unit: "bytes", Specs: []header.RangeSpec{
				{First: 0, Last: 0},
				{First: -1, Last: 1},
			}}),
			nil,
		},
		{"inverted", "bytes=500-400", nil, header.ErrSyntax},
		{"no specs", "bytes=", nil, header.ErrSyntax},
		{"bare dash", "bytes=-", nil, header.ErrSyntax},
		{"no unit", "=0-499", nil, header.ErrSyntax},
		{"empty", "", nil, header.ErrSyntax},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdrs := header.NewRequestHeaders(nil)
			if err := hdrs.AddRaw(header.NameRange, c.raw); err != nil {
				t.Fatalf("hdrs.AddRaw(%q, %q) error = %v, want nil", header.NameRange, c.raw, err)
			}

			got, err := hdrs.Range()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("hdrs.Range() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("hdrs.Range() = %v, want %v\ndiff (-got +want):\n%v", got, c.want, diff)
			}
		})
	}
}
