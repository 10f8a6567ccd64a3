package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gohttphdr/header"
)

func TestRequestHeaders_ExpectContinue(t *testing.T) {
	t.Parallel()

	hdrs := header.NewRequestHeaders(nil)

	if got := hdrs.ExpectContinue(); got != header.TernaryUnknown {
		t.Fatalf("hdrs.ExpectContinue() = %v, want %v", got, header.TernaryUnknown)
	}

	// The directive is found in raw text case-insensitively without a parse.
	if err := hdrs.AddRaw(header.NameExpect, "100-Continue"); err != nil {
		t.Fatalf("hdrs.AddRaw(%q) error = %v, want nil", header.NameExpect, err)
	}
	if got := hdrs.ExpectContinue(); got != header.TernaryTrue {
		t.Errorf("hdrs.ExpectContinue() = %v, want %v", got, header.TernaryTrue)
	}
	if _, err := hdrs.Expect().Values(); err != nil {
		t.Fatalf("hdrs.Expect().Values() error = %v, want nil", err)
	}
	if got := hdrs.ExpectContinue(); got != header.TernaryTrue {
		t.Errorf("hdrs.ExpectContinue() after parse = %v, want %v", got, header.TernaryTrue)
	}

	if err := hdrs.SetExpectContinue(header.TernaryFalse); err != nil {
		t.Fatalf("hdrs.SetExpectContinue(false) error = %v, want nil", err)
	}
	if got := hdrs.ExpectContinue(); got != header.TernaryFalse {
		t.Errorf("hdrs.ExpectContinue() = %v, want %v", got, header.TernaryFalse)
	}
	if hdrs.Has(header.NameExpect) {
		t.Errorf("hdrs.Has(%q) = true, want false", header.NameExpect)
	}

	if err := hdrs.SetExpectContinue(header.TernaryTrue); err != nil {
		t.Fatalf("hdrs.SetExpectContinue(true) error = %v, want nil", err)
	}
	if got, want := hdrs.Raw(header.NameExpect), []string{"100-continue"}; !cmp.Equal(got, want) {
		t.Errorf("hdrs.Raw(%q) = %q, want %q", header.NameExpect, got, want)
	}

	if err := hdrs.SetExpectContinue(header.TernaryUnknown); err != nil {
		t.Fatalf("hdrs.SetExpectContinue(unknown) error = %v, want nil", err)
	}
	if got := hdrs.ExpectContinue(); got != header.TernaryUnknown {
		t.Errorf("hdrs.ExpectContinue() = %v, want %v", got, header.TernaryUnknown)
	}
}

func TestRequestHeaders_MaxForwards(t *testing.T) {
	t.Parallel()

	hdrs := header.NewRequestHeaders(nil)

	if err := hdrs.SetMaxForwards(ptr(header.Integer(5))); err != nil {
		t.Fatalf("hdrs.SetMaxForwards() error = %v, want nil", err)
	}
	got, err := hdrs.MaxForwards()
	if err != nil {
		t.Fatalf("hdrs.MaxForwards() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, ptr(header.Integer(5))); diff != "" {
		t.Errorf("hdrs.MaxForwards() = %v, want 5\ndiff (-got +want):\n%v", got, diff)
	}

	if err := hdrs.SetMaxForwards(nil); err != nil {
		t.Fatalf("hdrs.SetMaxForwards(nil) error = %v, want nil", err)
	}
	if hdrs.Has(header.NameMaxForwards) {
		t.Errorf("hdrs.Has(%q) = true, want false", header.NameMaxForwards)
	}

	if err := hdrs.AddRaw(header.NameMaxForwards, "oops"); err != nil {
		t.Fatalf("hdrs.AddRaw(%q) error = %v, want nil", header.NameMaxForwards, err)
	}
	_, err = hdrs.MaxForwards()
	if diff := cmp.Diff(err, header.ErrSyntax, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("hdrs.MaxForwards() error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrSyntax, diff)
	}
}

func TestRequestHeaders_AddFrom(t *testing.T) {
	t.Parallel()

	src := header.NewRequestHeaders(nil)
	if err := src.SetHost("src.example.com"); err != nil {
		t.Fatalf("src.SetHost() error = %v, want nil", err)
	}
	if err := src.AddRaw(header.NameUserAgent, "agent/1.0"); err != nil {
		t.Fatalf("src.AddRaw(%q) error = %v, want nil", header.NameUserAgent, err)
	}
	if err := src.General().SetConnectionClose(header.TernaryTrue); err != nil {
		t.Fatalf("src.SetConnectionClose(true) error = %v, want nil", err)
	}
	if err := src.SetExpectContinue(header.TernaryFalse); err != nil {
		t.Fatalf("src.SetExpectContinue(false) error = %v, want nil", err)
	}

	dst := header.NewRequestHeaders(nil)
	if err := dst.SetHost("dst.example.com"); err != nil {
		t.Fatalf("dst.SetHost() error = %v, want nil", err)
	}
	// Present but unparsed, so the close flag is unknown here.
	if err := dst.AddRaw(header.NameConnection, "keep-alive"); err != nil {
		t.Fatalf("dst.AddRaw(%q) error = %v, want nil", header.NameConnection, err)
	}

	if err := dst.AddFrom(src); err != nil {
		t.Fatalf("dst.AddFrom(src) error = %v, want nil", err)
	}

	got, err := dst.Host()
	if err != nil {
		t.Fatalf("dst.Host() error = %v, want nil", err)
	}
	if want := "dst.example.com"; got != want {
		t.Errorf("dst.Host() = %q, want %q", got, want)
	}
	if gotRaw, want := dst.Raw(header.NameUserAgent), []string{"agent/1.0"}; !cmp.Equal(gotRaw, want) {
		t.Errorf("dst.Raw(%q) = %q, want %q", header.NameUserAgent, gotRaw, want)
	}

	// The flags were merged on top of the existing Connection header.
	if got := dst.General().ConnectionClose(); got != header.TernaryTrue {
		t.Errorf("dst.ConnectionClose() = %v, want %v", got, header.TernaryTrue)
	}
	gotConn, err := dst.General().Connection().Values()
	if err != nil {
		t.Fatalf("dst.Connection().Values() error = %v, want nil", err)
	}
	want := []header.Token{"keep-alive", header.TokenClose}
	if diff := cmp.Diff(gotConn, want); diff != "" {
		t.Errorf("dst.Connection().Values() = %+v, want %+v\ndiff (-got +want):\n%v", gotConn, want, diff)
	}
	if got := dst.ExpectContinue(); got != header.TernaryFalse {
		t.Errorf("dst.ExpectContinue() = %v, want %v", got, header.TernaryFalse)
	}

	// Merging again changes nothing.
	if err := dst.AddFrom(src); err != nil {
		t.Fatalf("dst.AddFrom(src) twice error = %v, want nil", err)
	}
	gotConn, err = dst.General().Connection().Values()
	if err != nil {
		t.Fatalf("dst.Connection().Values() error = %v, want nil", err)
	}
	if diff := cmp.Diff(gotConn, want); diff != "" {
		t.Errorf("dst.Connection().Values() after remerge = %+v, want %+v\ndiff (-got +want):\n%v", gotConn, want, diff)
	}

	if err := dst.AddFrom(nil); err != nil {
		t.Errorf("dst.AddFrom(nil) error = %v, want nil", err)
	}
}

func TestRequestHeaders_Clone(t *testing.T) {
	t.Parallel()

	hdrs := header.NewRequestHeaders(nil)
	if err := hdrs.SetHost("example.com"); err != nil {
		t.Fatalf("hdrs.SetHost() error = %v, want nil", err)
	}
	if err := hdrs.General().SetConnectionClose(header.TernaryFalse); err != nil {
		t.Fatalf("hdrs.SetConnectionClose(false) error = %v, want nil", err)
	}

	clone := hdrs.Clone()
	if got := clone.General().ConnectionClose(); got != header.TernaryFalse {
		t.Errorf("clone.ConnectionClose() = %v, want %v", got, header.TernaryFalse)
	}

	// The copies do not share state.
	if err := hdrs.General().SetConnectionClose(header.TernaryUnknown); err != nil {
		t.Fatalf("hdrs.SetConnectionClose(unknown) error = %v, want nil", err)
	}
	hdrs.Remove(header.NameHost)
	if got := clone.General().ConnectionClose(); got != header.TernaryFalse {
		t.Errorf("clone.ConnectionClose() = %v, want %v", got, header.TernaryFalse)
	}
	got, err := clone.Host()
	if err != nil {
		t.Fatalf("clone.Host() error = %v, want nil", err)
	}
	if want := "example.com"; got != want {
		t.Errorf("clone.Host() = %q, want %q", got, want)
	}

	if err := clone.SetHost("other.example.com"); err != nil {
		t.Fatalf("clone.SetHost() error = %v, want nil", err)
	}
	if hdrs.Has(header.NameHost) {
		t.Errorf("hdrs.Has(%q) = true, want false", header.NameHost)
	}
}
