// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types for the Flint
// kernel dispatch engine.
//
// # Overview
//
// Dense is the storage type every kernel operates on: a flat byte
// buffer tagged with a shape, an element dtype, a memory layout, and
// the backend the data belongs to. This package provides:
//   - Dense: dense n-dimensional storage with value semantics
//   - DataType, Layout, Backend: the descriptor dimensions kernels
//     are registered under
//   - Data[T]: zero-copy typed access to tensor storage
//   - Opt: an optional tensor argument for kernels with omittable
//     inputs
//
// # Basic Usage
//
//	import "github.com/flint-ml/flint/tensor"
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6},
//	    tensor.Shape{2, 3}, tensor.NCHW, tensor.CPU)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := tensor.Data[float32](x) // zero-copy view
//
// # Supported Data Types
//
// The Elem constraint covers the element types a tensor can hold:
//   - float32, float64 (floating-point)
//   - float16.Float16 (half-precision storage)
//   - int8, int16, int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//
// # Layouts and Backends
//
// Layout describes how dimensions map onto memory (NCHW or NHWC);
// AnyLayout is a registration wildcard that resolves to the default.
// Backend names where data lives and which kernels may touch it:
// CPU and GPU are implemented, XPU and NPU are reserved.
package tensor
