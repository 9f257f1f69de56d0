// Package cpu implements the built-in CPU kernels and registers them
// into the global kernel registry.
//
// Every arithmetic kernel is a generic template over Number,
// instantiated once per dtype at registration. Float16 gets dedicated
// kernels because its storage type has no native arithmetic, and copy
// is dtype-agnostic so a single implementation registers under every
// dtype.
package cpu

import (
	"fmt"

	"github.com/x448/float16"
	"go.uber.org/multierr"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/kernel"
	"github.com/flint-ml/flint/internal/tensor"
)

func init() {
	if err := RegisterAll(kernel.Global); err != nil {
		panic(fmt.Sprintf("cpu kernels: %v", err))
	}
}

// numericInsts expands one kernel template over the numeric dtypes.
// The instantiations must be listed explicitly so the compiler emits
// each specialization.
func numericInsts(u8, i8, i16, i32, i64, f32, f64 any) []kernel.Instantiation {
	return []kernel.Instantiation{
		kernel.ForType[uint8](u8),
		kernel.ForType[int8](i8),
		kernel.ForType[int16](i16),
		kernel.ForType[int32](i32),
		kernel.ForType[int64](i64),
		kernel.ForType[float32](f32),
		kernel.ForType[float64](f64),
	}
}

// RegisterAll registers every built-in CPU kernel into r. init wires
// the package into kernel.Global; tests register into fresh
// registries instead.
func RegisterAll(r *kernel.Registry) error {
	var errs error
	reg := func(name string, def kernel.DefFn, insts ...kernel.Instantiation) {
		errs = multierr.Append(errs, kernel.Register(r, name, tensor.CPU, tensor.AnyLayout, def, insts...))
	}

	reg("add", nil, numericInsts(
		Add[uint8], Add[int8], Add[int16], Add[int32], Add[int64], Add[float32], Add[float64])...)
	reg("add", nil, kernel.ForType[float16.Float16](AddF16))

	reg("subtract", nil, numericInsts(
		Subtract[uint8], Subtract[int8], Subtract[int16], Subtract[int32], Subtract[int64], Subtract[float32], Subtract[float64])...)

	reg("multiply", nil, numericInsts(
		Multiply[uint8], Multiply[int8], Multiply[int16], Multiply[int32], Multiply[int64], Multiply[float32], Multiply[float64])...)

	reg("divide", nil, numericInsts(
		Divide[uint8], Divide[int8], Divide[int16], Divide[int32], Divide[int64], Divide[float32], Divide[float64])...)

	reg("floor_divide", nil, numericInsts(
		FloorDivide[uint8], FloorDivide[int8], FloorDivide[int16], FloorDivide[int32], FloorDivide[int64], FloorDivide[float32], FloorDivide[float64])...)

	reg("maximum", nil, numericInsts(
		Maximum[uint8], Maximum[int8], Maximum[int16], Maximum[int32], Maximum[int64], Maximum[float32], Maximum[float64])...)

	reg("minimum", nil, numericInsts(
		Minimum[uint8], Minimum[int8], Minimum[int16], Minimum[int32], Minimum[int64], Minimum[float32], Minimum[float64])...)

	reg("scale", scaleDef, numericInsts(
		Scale[uint8], Scale[int8], Scale[int16], Scale[int32], Scale[int64], Scale[float32], Scale[float64])...)
	reg("scale", scaleDef, kernel.ForType[float16.Float16](ScaleF16))

	reg("cast", castDef, numericInsts(
		Cast[uint8], Cast[int8], Cast[int16], Cast[int32], Cast[int64], Cast[float32], Cast[float64])...)

	reg("fill", nil, numericInsts(
		Fill[uint8, *device.CPUContext],
		Fill[int8, *device.CPUContext],
		Fill[int16, *device.CPUContext],
		Fill[int32, *device.CPUContext],
		Fill[int64, *device.CPUContext],
		Fill[float32, *device.CPUContext],
		Fill[float64, *device.CPUContext])...)

	errs = multierr.Append(errs, kernel.RegisterAllTypes(r, "copy", tensor.CPU, tensor.AnyLayout, nil, Copy))

	return errs
}

// scaleDef attaches the scale kernel's attribute defaults: scale 1,
// bias 0, bias applied after scaling.
func scaleDef(k *kernel.Kernel) {
	k.Args().Attr(0).Default = float64(1)
	k.Args().Attr(1).Default = float64(0)
	k.Args().Attr(2).Default = true
}

// castDef marks the output dtype as decided per call rather than by
// the registered key.
func castDef(k *kernel.Kernel) {
	k.Args().Output(0).DType = tensor.Undefined
}
