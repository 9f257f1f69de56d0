// Package device provides the execution contexts kernels receive as
// their first argument. The registry never stores contexts; callers
// pass one per invocation.
package device

import "github.com/flint-ml/flint/internal/tensor"

// Context is the execution state a kernel runs against.
type Context interface {
	// Backend identifies the execution target this context drives.
	Backend() tensor.Backend
	// String returns a human-readable description of the context.
	String() string
}
