// Package gpu implements the WebGPU compute kernels and registers
// them into the global kernel registry.
//
// The GPU backend covers float32 only. Registration stores functions
// and metadata without touching the device; callers construct a
// device.GPUContext when they dispatch.
package gpu

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/flint-ml/flint/internal/kernel"
	"github.com/flint-ml/flint/internal/tensor"
)

func init() {
	if err := RegisterAll(kernel.Global); err != nil {
		panic(fmt.Sprintf("gpu kernels: %v", err))
	}
}

// RegisterAll registers every built-in GPU kernel into r.
func RegisterAll(r *kernel.Registry) error {
	var errs error
	reg := func(name string, def kernel.DefFn, insts ...kernel.Instantiation) {
		errs = multierr.Append(errs, kernel.Register(r, name, tensor.GPU, tensor.AnyLayout, def, insts...))
	}

	reg("add", nil, kernel.ForType[float32](Add))
	reg("multiply", nil, kernel.ForType[float32](Multiply))
	reg("scale", scaleDef, kernel.ForType[float32](Scale))

	return errs
}

// scaleDef attaches the same attribute defaults as the CPU scale
// kernel: scale 1, bias 0, bias applied after scaling.
func scaleDef(k *kernel.Kernel) {
	k.Args().Attr(0).Default = float64(1)
	k.Args().Attr(1).Default = float64(0)
	k.Args().Attr(2).Default = true
}
