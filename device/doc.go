// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device provides the execution contexts kernels run
// against.
//
// # Overview
//
// A kernel's first parameter is its execution context. The context
// type doubles as a registration contract: a kernel declaring
// *CPUContext only registers under the CPU backend, while a kernel
// declaring the Context interface registers under any backend.
//
//   - Context: the backend-agnostic execution context interface
//   - CPUContext: CPU state, carries the parallel loop configuration
//   - GPUContext: WebGPU device state with a compiled pipeline cache
//
// # GPU Availability
//
// GPUContext needs the wgpu-native shared library at runtime. Probe
// before constructing one:
//
//	if device.Available() {
//	    ctx, err := device.NewGPUContext()
//	    ...
//	    defer ctx.Release()
//	}
package device
