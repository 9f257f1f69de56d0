// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides the kernel registry and dispatch engine.
//
// # Overview
//
// A kernel is an ordinary Go function indexed by name and by a
// (backend, layout, dtype) key. The registry stores the function
// together with a classified argument signature, so callers can
// dispatch either through a typed function value or reflectively
// with runtime argument checking.
//
//   - Registry: name and key indexed kernel table, safe for
//     concurrent use
//   - Key: the (Backend, Layout, DType) dispatch coordinate
//   - Kernel: a registered function plus its argument signature
//   - ForType, Register: per-dtype template instantiation at
//     registration time
//
// # Registering Kernels
//
// A kernel template is a generic function whose first parameter is
// an execution context. Register instantiates it once per dtype:
//
//	func Scale[T Num](ctx *device.CPUContext, x tensor.Dense,
//	    factor float64, out *tensor.Dense) error { ... }
//
//	err := kernel.Register(r, "scale", tensor.CPU, tensor.AnyLayout, nil,
//	    kernel.ForType[float32](Scale[float32]),
//	    kernel.ForType[float64](Scale[float64]),
//	)
//
// Parameter classification is static: tensor.Dense values are
// inputs, *tensor.Dense are outputs, everything else is an
// attribute. The classified signature is inspectable via
// Kernel.Args.
//
// # Dispatching
//
//	k, err := kernel.Global.Lookup("scale",
//	    kernel.NewKey(tensor.CPU, tensor.AnyLayout, tensor.Float32))
//	if err != nil {
//	    return err
//	}
//	fn := k.Fn().(func(*device.CPUContext, tensor.Dense, float64, *tensor.Dense) error)
//	return fn(ctx, x, 2.0, &out)
//
// The typed assertion above costs nothing per call; Kernel.Call is
// the reflective alternative when the signature is only known at
// runtime.
package kernel
