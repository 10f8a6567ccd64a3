package header

import (
	"bytes"
	"encoding/base64"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttphdr/internal/util"
)

// Binary is a byte sequence carried in base64: Content-MD5. The wire form
// is standard base64 with padding.
type Binary []byte

func (b Binary) String() string { return base64.StdEncoding.EncodeToString(b) }

// Equal compares this value with another for equality.
func (b Binary) Equal(val any) bool {
	var other Binary
	switch v := val.(type) {
	case Binary:
		other = v
	case *Binary:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return bytes.Equal(b, other)
}

// IsValid checks whether the value is non-empty.
func (b Binary) IsValid() bool { return len(b) > 0 }

// Clone returns a copy of the value.
func (b Binary) Clone() Value {
	if b == nil {
		return Binary(nil)
	}
	b2 := make(Binary, len(b))
	copy(b2, b)
	return b2
}

// binaryParser parses single-valued base64 fields.
type binaryParser struct{}

func (binaryParser) MultiValue() bool { return false }

func (binaryParser) Separator() string { return ", " }

func (binaryParser) ParseValue(raw string, _ []Value) ([]Value, error) {
	data, err := base64.StdEncoding.DecodeString(util.TrimSP(raw))
	if err != nil {
		return nil, errtrace.Wrap(NewSyntaxError("%q: %w", raw, err))
	}
	if len(data) == 0 {
		return nil, errtrace.Wrap(NewSyntaxError("%q", raw))
	}
	return []Value{Binary(data)}, nil
}
