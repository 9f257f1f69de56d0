// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package device

import (
	"github.com/flint-ml/flint/internal/device"
)

// Context is the execution context every kernel takes as its first
// parameter.
type Context = device.Context

// CPUContext carries the state CPU kernels execute with.
type CPUContext = device.CPUContext

// GPUContext owns a WebGPU device and caches compiled compute
// pipelines. Call Release when done.
type GPUContext = device.GPUContext

// NewCPUContext returns a CPU context with the default parallel
// configuration.
func NewCPUContext() *CPUContext {
	return device.NewCPUContext()
}

// NewGPUContext initializes the WebGPU instance, adapter, and
// device. It fails when no adapter is present or the native library
// is missing.
func NewGPUContext() (*GPUContext, error) {
	return device.NewGPUContext()
}

// Available reports whether a WebGPU adapter can be acquired.
func Available() bool {
	return device.Available()
}
