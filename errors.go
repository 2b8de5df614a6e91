package tablefor

import "errors"

// Sentinel errors for programmatic error handling.
var (
	// ErrNilDefineFunc is returned when a renderer is invoked
	// without a DefineFunc to declare columns with.
	ErrNilDefineFunc = errors.New("table definition function is nil")

	// ErrHelperNotFound is returned when a Helper option names
	// a helper that is missing from the Helpers registry.
	ErrHelperNotFound = errors.New("helper not found")

	// ErrInvalidHelper is returned when a registered helper is not
	// a function or its signature does not fit the declared arguments.
	ErrInvalidHelper = errors.New("invalid helper")

	// ErrNoAccessor is returned when a record has no method,
	// struct field, or map key matching a column's accessor.
	ErrNoAccessor = errors.New("no accessor")
)
