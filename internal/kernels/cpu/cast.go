package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/parallel"
	"github.com/flint-ml/flint/internal/tensor"
)

// Cast converts x's elements to the target dtype. The output tensor
// must already be allocated with dtype to; float-to-integer
// conversion truncates toward zero.
func Cast[T Number](ctx *device.CPUContext, x tensor.Dense, to tensor.DataType, out *tensor.Dense) error {
	if out == nil {
		return fmt.Errorf("cast: nil output")
	}
	if !out.Shape().Equal(x.Shape()) {
		return fmt.Errorf("cast: output shape %v, want %v", out.Shape(), x.Shape())
	}
	if out.DType() != to {
		return fmt.Errorf("cast: output dtype %s, want %s", out.DType(), to)
	}
	xs := tensor.Data[T](x)
	switch to {
	case tensor.Bool:
		dst := tensor.Data[bool](*out)
		parallel.Ranges(len(xs), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = xs[i] != 0
			}
		}, config(ctx))
	case tensor.Uint8:
		castTo[T, uint8](ctx, xs, *out)
	case tensor.Int8:
		castTo[T, int8](ctx, xs, *out)
	case tensor.Int16:
		castTo[T, int16](ctx, xs, *out)
	case tensor.Int32:
		castTo[T, int32](ctx, xs, *out)
	case tensor.Int64:
		castTo[T, int64](ctx, xs, *out)
	case tensor.Float16:
		dst := tensor.Data[float16.Float16](*out)
		parallel.Ranges(len(xs), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = float16.Fromfloat32(float32(xs[i]))
			}
		}, config(ctx))
	case tensor.Float32:
		castTo[T, float32](ctx, xs, *out)
	case tensor.Float64:
		castTo[T, float64](ctx, xs, *out)
	default:
		return fmt.Errorf("cast: unsupported target dtype %s", to)
	}
	return nil
}

// castTo converts src chunkwise into out's storage.
func castTo[From, To Number](ctx *device.CPUContext, src []From, out tensor.Dense) {
	dst := tensor.Data[To](out)
	parallel.Ranges(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = To(src[i])
		}
	}, config(ctx))
}
