// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/flint-ml/flint/internal/tensor"
)

// Type aliases for the public API

// Elem is the constraint for tensor element types.
// Supported types: bool, uint8, int8, int16, int32, int64,
// float16.Float16, float32, float64.
type Elem = tensor.Elem

// DataType identifies the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Undefined DataType = tensor.Undefined
	Bool      DataType = tensor.Bool
	Uint8     DataType = tensor.Uint8
	Int8      DataType = tensor.Int8
	Int16     DataType = tensor.Int16
	Int32     DataType = tensor.Int32
	Int64     DataType = tensor.Int64
	Float16   DataType = tensor.Float16
	Float32   DataType = tensor.Float32
	Float64   DataType = tensor.Float64
)

// Backend identifies where tensor data lives and which kernels may
// operate on it.
type Backend = tensor.Backend

// Backend constants.
const (
	BackendUndefined Backend = tensor.BackendUndefined
	CPU              Backend = tensor.CPU
	GPU              Backend = tensor.GPU
	XPU              Backend = tensor.XPU
	NPU              Backend = tensor.NPU
)

// Layout describes how tensor dimensions map onto memory.
type Layout = tensor.Layout

// Layout constants. AnyLayout is a wildcard that resolves to
// DefaultLayout wherever a concrete layout is required.
const (
	LayoutUndefined Layout = tensor.LayoutUndefined
	NCHW            Layout = tensor.NCHW
	NHWC            Layout = tensor.NHWC
	AnyLayout       Layout = tensor.AnyLayout
	DefaultLayout   Layout = tensor.DefaultLayout
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is dense n-dimensional tensor storage. The value is a cheap
// header; copies share the underlying buffer.
type Dense = tensor.Dense

// Opt is an optional tensor argument.
type Opt = tensor.Opt

// NewDense allocates zeroed storage for the given shape and dtype.
//
// Example:
//
//	out, err := tensor.NewDense(tensor.Shape{2, 3}, tensor.Float32,
//	    tensor.NCHW, tensor.CPU)
func NewDense(shape Shape, dtype DataType, layout Layout, backend Backend) (Dense, error) {
	return tensor.NewDense(shape, dtype, layout, backend)
}

// FromSlice builds a tensor holding a copy of data. The slice's
// element type determines the tensor's dtype.
//
// Example:
//
//	x, err := tensor.FromSlice([]int32{1, 2, 3}, tensor.Shape{3},
//	    tensor.NCHW, tensor.CPU)
func FromSlice[T Elem](data []T, shape Shape, layout Layout, backend Backend) (Dense, error) {
	return tensor.FromSlice(data, shape, layout, backend)
}

// Data returns a zero-copy typed view of d's storage. It panics when
// T does not match d's dtype.
func Data[T Elem](d Dense) []T {
	return tensor.Data[T](d)
}

// Float16s converts a float16 tensor's elements to float32.
func Float16s(d Dense) []float32 {
	return tensor.Float16s(d)
}

// SetFloat16s stores float32 values into a float16 tensor, rounding
// each to the nearest representable half-precision value.
func SetFloat16s(d Dense, vals []float32) {
	tensor.SetFloat16s(d, vals)
}

// TypeFor maps an element type to its DataType constant.
func TypeFor[T Elem]() DataType {
	return tensor.TypeFor[T]()
}

// AllDataTypes lists every concrete dtype, Bool through Float64.
func AllDataTypes() []DataType {
	return tensor.AllDataTypes()
}

// Some wraps a present optional tensor.
func Some(t Dense) Opt {
	return tensor.Some(t)
}

// None returns an absent optional tensor.
func None() Opt {
	return tensor.None()
}
