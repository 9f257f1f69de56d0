// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/flint-ml/flint/internal/kernel"
	"github.com/flint-ml/flint/tensor"
)

// Type aliases for the public API

// Key is the dispatch coordinate a kernel registers under.
type Key = kernel.Key

// Kernel is a registered function plus its classified argument
// signature.
type Kernel = kernel.Kernel

// Registry maps kernel names to per-key kernel tables. Safe for
// concurrent use.
type Registry = kernel.Registry

// ArgsDef is a kernel's classified argument signature.
type ArgsDef = kernel.ArgsDef

// TensorDesc describes one tensor input or output.
type TensorDesc = kernel.TensorDesc

// AttrDef describes one attribute parameter.
type AttrDef = kernel.AttrDef

// Instantiation pairs a dtype with the kernel function compiled for
// it.
type Instantiation = kernel.Instantiation

// DefFn runs after classification so a registration can adjust the
// argument signature or attach attribute defaults.
type DefFn = kernel.DefFn

// Global is the process-wide registry the built-in kernel packages
// populate from their init functions.
var Global = kernel.Global

// Sentinel errors.
var (
	ErrNotFound    = kernel.ErrNotFound
	ErrBadKernel   = kernel.ErrBadKernel
	ErrBadArgument = kernel.ErrBadArgument
)

// NewKey builds a dispatch key, resolving AnyLayout to the default
// layout.
func NewKey(backend tensor.Backend, layout tensor.Layout, dtype tensor.DataType) Key {
	return kernel.NewKey(backend, layout, dtype)
}

// NewRegistry returns an empty registry independent of Global.
func NewRegistry() *Registry {
	return kernel.NewRegistry()
}

// NewKernel wraps fn as a dispatchable kernel. fn must be a
// non-variadic function returning exactly one error.
func NewKernel(fn any) (Kernel, error) {
	return kernel.NewKernel(fn)
}

// ForType binds a kernel function to the dtype it was instantiated
// for.
//
// Example:
//
//	kernel.ForType[float32](Scale[float32])
func ForType[T tensor.Elem](fn any) Instantiation {
	return kernel.ForType[T](fn)
}

// Register registers one instantiation per listed dtype under
// name/backend/layout. Registration continues past per-dtype
// failures and returns the accumulated errors.
func Register(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, insts ...Instantiation) error {
	return kernel.Register(r, name, backend, layout, def, insts...)
}

// RegisterAllTypes registers a single dtype-agnostic kernel function
// under every concrete dtype.
func RegisterAllTypes(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, fn any) error {
	return kernel.RegisterAllTypes(r, name, backend, layout, def, fn)
}

// MustRegister is Register, panicking on error. Intended for package
// init functions.
func MustRegister(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, insts ...Instantiation) {
	kernel.MustRegister(r, name, backend, layout, def, insts...)
}

// MustRegisterAllTypes is RegisterAllTypes, panicking on error.
func MustRegisterAllTypes(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, fn any) {
	kernel.MustRegisterAllTypes(r, name, backend, layout, def, fn)
}
