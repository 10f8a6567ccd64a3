package header

import "github.com/ghettovoice/gohttphdr/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument

	// ErrSyntax is returned when a raw header value does not match the bound
	// grammar, or when a caller-supplied value fails validation.
	ErrSyntax Error = "malformed header value"
	// ErrInvalidName is returned when a header name belonging to another
	// store role is added to a store.
	ErrInvalidName Error = "header name not allowed on this store"
	// ErrRange is returned when a bounded numeric value, such as a quality
	// factor, falls outside its allowed range.
	ErrRange Error = "value out of range"
	// ErrSingleValue is returned when a second value is added to a header
	// that carries exactly one value.
	ErrSingleValue Error = "header allows a single value"
)

// Error represents a header error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// NewSyntaxError creates a new error with [ErrSyntax] or wraps provided
// error with [ErrSyntax].
func NewSyntaxError(args ...any) error {
	return errorutil.NewWrapperError(ErrSyntax, args...) //errtrace:skip
}

// NewInvalidNameError creates a new error with [ErrInvalidName] or wraps
// provided error with [ErrInvalidName].
func NewInvalidNameError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidName, args...) //errtrace:skip
}

// NewRangeError creates a new error with [ErrRange] or wraps provided error
// with [ErrRange].
func NewRangeError(args ...any) error {
	return errorutil.NewWrapperError(ErrRange, args...) //errtrace:skip
}

// NewSingleValueError creates a new error with [ErrSingleValue] or wraps
// provided error with [ErrSingleValue].
func NewSingleValueError(args ...any) error {
	return errorutil.NewWrapperError(ErrSingleValue, args...) //errtrace:skip
}
