package cpu

import (
	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/parallel"
	"github.com/flint-ml/flint/internal/tensor"
)

// Scale computes out = x*scale + bias, or (x + bias)*scale when
// biasAfterScale is false. The scalar attributes arrive as float64
// and convert to the element type before the loop.
func Scale[T Number](ctx *device.CPUContext, x tensor.Dense, scale, bias float64, biasAfterScale bool, out *tensor.Dense) error {
	if err := checkUnary("scale", x, out); err != nil {
		return err
	}
	s, b := T(scale), T(bias)
	xs, dst := tensor.Data[T](x), tensor.Data[T](*out)
	if biasAfterScale {
		parallel.Ranges(x.NumElements(), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = xs[i]*s + b
			}
		}, config(ctx))
		return nil
	}
	parallel.Ranges(x.NumElements(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = (xs[i] + b) * s
		}
	}, config(ctx))
	return nil
}
