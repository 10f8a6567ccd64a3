package header

import (
	"braces.dev/errtrace"
)

// Ternary is a three-valued flag for the distinguished values some headers
// carry, such as "close" in Connection or "chunked" in Transfer-Encoding.
// TernaryUnknown means nothing was stated either way, TernaryFalse means
// the value was explicitly retracted. Only an explicit retraction ever
// yields TernaryFalse: removing the concrete value from its collection
// falls back to TernaryUnknown.
type Ternary uint8

const (
	TernaryUnknown Ternary = iota
	TernaryTrue
	TernaryFalse
)

func (t Ternary) String() string {
	switch t {
	case TernaryTrue:
		return "true"
	case TernaryFalse:
		return "false"
	default:
		return "unknown"
	}
}

// Collection is an ordered typed view over all values of one multi-valued
// header in its owning store. Mutations write through to the store
// immediately. Collections are created by the role accessors on first use
// and stay bound to the store for its lifetime.
type Collection[T Value] struct {
	hdrs *Store
	name Name
}

func newCollection[T Value](hdrs *Store, name Name) *Collection[T] {
	return &Collection[T]{hdrs: hdrs, name: name}
}

// Name returns the header name the collection is bound to.
func (col *Collection[T]) Name() Name { return col.name }

// Values returns all values of the header in order. Raw text that was never
// parsed is parsed now; malformed text surfaces the parse error.
func (col *Collection[T]) Values() ([]T, error) {
	vals, err := col.hdrs.Values(col.name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if vals == nil {
		return nil, nil
	}
	tvals := make([]T, 0, len(vals))
	for _, v := range vals {
		tv, ok := v.(T)
		if !ok {
			return nil, errtrace.Wrap(NewInvalidArgumentError("unexpected %T value in %q", v, col.name))
		}
		tvals = append(tvals, tv)
	}
	return tvals, nil
}

// Len returns the number of values. Raw text that fails to parse counts
// as zero.
func (col *Collection[T]) Len() int {
	vals, err := col.hdrs.Values(col.name)
	if err != nil {
		return 0
	}
	return len(vals)
}

// Add appends a value. The value is validated first; an invalid value
// fails with a syntax error and leaves the store unchanged.
func (col *Collection[T]) Add(val T) error {
	return errtrace.Wrap(col.hdrs.AddValue(col.name, val))
}

// Remove removes the first value equal to val. It returns false when no
// value matched.
func (col *Collection[T]) Remove(val T) bool {
	return col.hdrs.RemoveValue(col.name, val)
}

// Clear removes the header entirely.
func (col *Collection[T]) Clear() {
	col.hdrs.Remove(col.name)
}
