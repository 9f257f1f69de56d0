package kernel

import "errors"

// Common errors returned by the registry and registrar.
var (
	// ErrNotFound reports a lookup for a name or key with no
	// registered kernel.
	ErrNotFound = errors.New("kernel not found")

	// ErrBadKernel reports an invalid registration: a nil or
	// non-function value, a variadic signature, a missing error
	// return, or a context parameter that contradicts the target
	// backend.
	ErrBadKernel = errors.New("invalid kernel")

	// ErrBadArgument reports an invocation whose arguments do not
	// match the kernel's signature.
	ErrBadArgument = errors.New("bad kernel argument")
)
