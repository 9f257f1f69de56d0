package device

import (
	"github.com/flint-ml/flint/internal/parallel"
	"github.com/flint-ml/flint/internal/tensor"
)

// CPUContext carries host-side execution state for CPU kernels.
type CPUContext struct {
	par parallel.Config
}

// NewCPUContext returns a CPU context with default parallelism.
func NewCPUContext() *CPUContext {
	return &CPUContext{par: parallel.DefaultConfig()}
}

// Backend returns tensor.CPU.
func (c *CPUContext) Backend() tensor.Backend { return tensor.CPU }

// String returns a human-readable description of the context.
func (c *CPUContext) String() string { return "CPU" }

// Parallel returns the parallel execution configuration.
func (c *CPUContext) Parallel() parallel.Config { return c.par }

// SetParallel replaces the parallel execution configuration.
func (c *CPUContext) SetParallel(cfg parallel.Config) { c.par = cfg }
