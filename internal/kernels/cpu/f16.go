package cpu

import (
	"github.com/x448/float16"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/parallel"
	"github.com/flint-ml/flint/internal/tensor"
)

// Half-precision kernels. float16 has no native arithmetic, so these
// widen each element to float32, compute, and round back.

// AddF16 computes out[i] = x[i] + y[i] for float16 tensors.
func AddF16(ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("add", x, y, out); err != nil {
		return err
	}
	xs := tensor.Data[float16.Float16](x)
	ys := tensor.Data[float16.Float16](y)
	dst := tensor.Data[float16.Float16](*out)
	parallel.Ranges(x.NumElements(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = float16.Fromfloat32(xs[i].Float32() + ys[i].Float32())
		}
	}, config(ctx))
	return nil
}

// ScaleF16 computes the float16 variant of Scale.
func ScaleF16(ctx *device.CPUContext, x tensor.Dense, scale, bias float64, biasAfterScale bool, out *tensor.Dense) error {
	if err := checkUnary("scale", x, out); err != nil {
		return err
	}
	s, b := float32(scale), float32(bias)
	xs := tensor.Data[float16.Float16](x)
	dst := tensor.Data[float16.Float16](*out)
	parallel.Ranges(x.NumElements(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v := xs[i].Float32()
			if biasAfterScale {
				v = v*s + b
			} else {
				v = (v + b) * s
			}
			dst[i] = float16.Fromfloat32(v)
		}
	}, config(ctx))
	return nil
}
