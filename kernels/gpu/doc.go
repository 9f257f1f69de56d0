// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gpu registers the built-in WebGPU kernels.
//
// Importing the package populates the global registry:
//
//	import _ "github.com/flint-ml/flint/kernels/gpu"
//
// The registered kernel names are add, multiply, and scale, all
// float32. Registration never touches the device; construct a
// device.GPUContext to dispatch.
package gpu
