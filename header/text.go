package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/grammar"
	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Text is an opaque single-line header value: From, unknown extension
// headers and any field whose internal structure this package does not
// model. Text compares byte-exact.
type Text string

func (t Text) String() string { return string(t) }

// Equal compares this text with another for equality.
func (t Text) Equal(val any) bool {
	var other Text
	switch v := val.(type) {
	case Text:
		other = v
	case *Text:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return t == other
}

// IsValid checks whether the text is syntactically valid: non-empty and
// free of control characters.
func (t Text) IsValid() bool {
	if t == "" {
		return false
	}
	for i := 0; i < len(t); i++ {
		if (t[i] < 0x20 && t[i] != '\t') || t[i] == 0x7F {
			return false
		}
	}
	return true
}

// Clone returns a copy of the text.
func (t Text) Clone() Value { return t }

// textParser passes a field line through as one opaque [Text] value,
// trimmed of surrounding whitespace.
type textParser struct{}

func (textParser) MultiValue() bool { return false }

func (textParser) Separator() string { return ", " }

func (textParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	t := Text(util.TrimSP(raw))
	if !t.IsValid() {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return []Value{t}, nil
}

// extParser handles extension headers without a registered grammar: every
// field line passes through as one opaque [Text] value, empty lines
// included.
type extParser struct{}

func (extParser) MultiValue() bool { return true }

func (extParser) Separator() string { return ", " }

func (extParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	t := Text(util.TrimSP(raw))
	if t != "" && !t.IsValid() {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return []Value{t}, nil
}

// hostParser validates a Host field line against the host [":" port]
// production and stores it as [Text].
type hostParser struct{}

func (hostParser) MultiValue() bool { return false }

func (hostParser) Separator() string { return ", " }

func (hostParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	h := util.TrimSP(raw)
	if !grammar.IsHostPort(h) {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return []Value{Text(h)}, nil
}
