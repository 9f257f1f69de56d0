package cpu

import (
	"fmt"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/parallel"
	"github.com/flint-ml/flint/internal/tensor"
)

// Fill sets every element of out to value, converted to the output's
// element type. The second type parameter fixes which backend's
// context an instantiation accepts, so the same template can be
// registered under several backends.
func Fill[T Number, C device.Context](ctx C, value float64, out *tensor.Dense) error {
	if out == nil {
		return fmt.Errorf("fill: nil output")
	}
	cfg := parallel.DefaultConfig()
	if c, ok := any(ctx).(*device.CPUContext); ok {
		cfg = c.Parallel()
	}
	v := T(value)
	dst := tensor.Data[T](*out)
	parallel.For(len(dst), func(i int) {
		dst[i] = v
	}, cfg)
	return nil
}
