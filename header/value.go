package header

import (
	"fmt"
)

// Value is a typed, parsed header value. Implementations are immutable once
// produced by a [Parser]; mutating accessors always return or operate on
// copies obtained via Clone.
type Value interface {
	fmt.Stringer
	// Equal compares this value with another for equality.
	Equal(val any) bool
	// IsValid checks whether the value is syntactically valid.
	IsValid() bool
	// Clone returns a copy of the value.
	Clone() Value
}

// Parser parses raw header field text into typed values. Every header name
// known to a store is bound to exactly one Parser; stores never talk to
// concrete grammars directly.
type Parser interface {
	// MultiValue reports whether one field line may carry a
	// delimiter-separated list of values.
	MultiValue() bool
	// Separator is rendered between values of a multi-valued field.
	Separator() string
	// ParseValue parses one complete raw field line into typed values.
	// prev holds values already parsed from earlier lines of the same
	// field; it is reserved for grammars whose later values depend on
	// earlier ones and is nil for first lines.
	ParseValue(raw string, prev []Value) ([]Value, error)
}
