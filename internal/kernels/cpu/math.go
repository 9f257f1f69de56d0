package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/elemwise"
	"github.com/flint-ml/flint/internal/parallel"
	"github.com/flint-ml/flint/internal/tensor"
)

// Number constrains the arithmetic kernels to the numeric dtypes:
// every concrete element type except bool and float16.
type Number interface {
	~uint8 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// config returns the context's parallel configuration, or defaults
// when no context is supplied.
func config(ctx *device.CPUContext) parallel.Config {
	if ctx == nil {
		return parallel.DefaultConfig()
	}
	return ctx.Parallel()
}

// checkBinary validates a same-shape binary elementwise call.
func checkBinary(op string, x, y tensor.Dense, out *tensor.Dense) error {
	if out == nil {
		return fmt.Errorf("%s: nil output", op)
	}
	if x.Empty() || y.Empty() || out.Empty() {
		return fmt.Errorf("%s: empty tensor", op)
	}
	if !x.Shape().Equal(y.Shape()) {
		return fmt.Errorf("%s: shape mismatch: %v vs %v", op, x.Shape(), y.Shape())
	}
	if !out.Shape().Equal(x.Shape()) {
		return fmt.Errorf("%s: output shape %v, want %v", op, out.Shape(), x.Shape())
	}
	if x.DType() != y.DType() || x.DType() != out.DType() {
		return fmt.Errorf("%s: dtype mismatch: %s, %s, %s", op, x.DType(), y.DType(), out.DType())
	}
	return nil
}

// checkUnary validates a same-shape unary elementwise call.
func checkUnary(op string, x tensor.Dense, out *tensor.Dense) error {
	if out == nil {
		return fmt.Errorf("%s: nil output", op)
	}
	if x.Empty() || out.Empty() {
		return fmt.Errorf("%s: empty tensor", op)
	}
	if !out.Shape().Equal(x.Shape()) {
		return fmt.Errorf("%s: output shape %v, want %v", op, out.Shape(), x.Shape())
	}
	if x.DType() != out.DType() {
		return fmt.Errorf("%s: dtype mismatch: %s vs %s", op, x.DType(), out.DType())
	}
	return nil
}

// scanZeroDivisor fails when an integer divisor tensor contains a
// zero. Runs before division so no output element is written.
func scanZeroDivisor[T Number](op string, y tensor.Dense) error {
	if !y.DType().IsInteger() {
		return nil
	}
	for _, v := range tensor.Data[T](y) {
		if v == 0 {
			return fmt.Errorf("%s: %w", op, elemwise.ErrDivideByZero)
		}
	}
	return nil
}

// binary loops a functor over the operands in parallel chunks.
func binary[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense, f func(a, b T) T) {
	xs, ys, dst := tensor.Data[T](x), tensor.Data[T](y), tensor.Data[T](*out)
	parallel.Ranges(x.NumElements(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(xs[i], ys[i])
		}
	}, config(ctx))
}

// fastBinary applies a gonum slice routine to float64 chunks.
func fastBinary(ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense, f func(dst, s, t []float64) []float64) {
	xs, ys, dst := tensor.Data[float64](x), tensor.Data[float64](y), tensor.Data[float64](*out)
	parallel.Ranges(x.NumElements(), func(lo, hi int) {
		f(dst[lo:hi], xs[lo:hi], ys[lo:hi])
	}, config(ctx))
}

// Add computes out[i] = x[i] + y[i].
func Add[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("add", x, y, out); err != nil {
		return err
	}
	if x.DType() == tensor.Float64 {
		fastBinary(ctx, x, y, out, floats.AddTo)
		return nil
	}
	binary(ctx, x, y, out, elemwise.Add[T])
	return nil
}

// Subtract computes out[i] = x[i] - y[i].
func Subtract[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("subtract", x, y, out); err != nil {
		return err
	}
	if x.DType() == tensor.Float64 {
		fastBinary(ctx, x, y, out, floats.SubTo)
		return nil
	}
	binary(ctx, x, y, out, elemwise.Sub[T])
	return nil
}

// Multiply computes out[i] = x[i] * y[i].
func Multiply[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("multiply", x, y, out); err != nil {
		return err
	}
	if x.DType() == tensor.Float64 {
		fastBinary(ctx, x, y, out, floats.MulTo)
		return nil
	}
	binary(ctx, x, y, out, elemwise.Mul[T])
	return nil
}

// Divide computes out[i] = x[i] / y[i]. Integer kernels scan the
// divisor first and fail before any output element is written;
// floating-point division follows IEEE semantics.
func Divide[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("divide", x, y, out); err != nil {
		return err
	}
	if err := scanZeroDivisor[T]("divide", y); err != nil {
		return err
	}
	if x.DType() == tensor.Float64 {
		fastBinary(ctx, x, y, out, floats.DivTo)
		return nil
	}
	binary(ctx, x, y, out, func(a, b T) T {
		// The divisor scan above guarantees a nil error.
		q, _ := elemwise.Div(a, b)
		return q
	})
	return nil
}

// FloorDivide computes out[i] = x[i] / y[i] truncated toward zero,
// with the same zero-divisor contract as Divide.
func FloorDivide[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("floor_divide", x, y, out); err != nil {
		return err
	}
	if err := scanZeroDivisor[T]("floor_divide", y); err != nil {
		return err
	}
	binary(ctx, x, y, out, func(a, b T) T {
		q, _ := elemwise.FloorDiv(a, b)
		return q
	})
	return nil
}

// Maximum computes out[i] = max(x[i], y[i]).
func Maximum[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("maximum", x, y, out); err != nil {
		return err
	}
	binary(ctx, x, y, out, elemwise.Max[T])
	return nil
}

// Minimum computes out[i] = min(x[i], y[i]).
func Minimum[T Number](ctx *device.CPUContext, x, y tensor.Dense, out *tensor.Dense) error {
	if err := checkBinary("minimum", x, y, out); err != nil {
		return err
	}
	binary(ctx, x, y, out, elemwise.Min[T])
	return nil
}
