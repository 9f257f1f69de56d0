package cpu

import (
	"fmt"
	"testing"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/kernel"
	"github.com/flint-ml/flint/internal/tensor"
)

func benchDense[T tensor.Elem](b *testing.B, n int, v T) tensor.Dense {
	b.Helper()
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	d, err := tensor.FromSlice(data, tensor.Shape{n}, tensor.NCHW, tensor.CPU)
	if err != nil {
		b.Fatal(err)
	}
	return d
}

func BenchmarkElementWise(b *testing.B) {
	ctx := device.NewCPUContext()
	sizes := []int{100, 1000, 100000}

	for _, size := range sizes {
		x := benchDense[float32](b, size, 1.5)
		y := benchDense[float32](b, size, 2.5)
		out := benchDense[float32](b, size, 0)

		b.Run(fmt.Sprintf("Add-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Add[float32](ctx, x, y, &out)
			}
		})

		b.Run(fmt.Sprintf("Multiply-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Multiply[float32](ctx, x, y, &out)
			}
		})

		b.Run(fmt.Sprintf("Divide-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Divide[float32](ctx, x, y, &out)
			}
		})
	}
}

// BenchmarkAddFloat64 measures the gonum fast path against the
// generic loop on float32.
func BenchmarkAddFloat64(b *testing.B) {
	ctx := device.NewCPUContext()
	sizes := []int{1000, 100000}

	for _, size := range sizes {
		x := benchDense[float64](b, size, 1.5)
		y := benchDense[float64](b, size, 2.5)
		out := benchDense[float64](b, size, 0)

		b.Run(fmt.Sprintf("Add-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Add[float64](ctx, x, y, &out)
			}
		})
	}
}

func BenchmarkScale(b *testing.B) {
	ctx := device.NewCPUContext()
	x := benchDense[float32](b, 10000, 3)
	out := benchDense[float32](b, 10000, 0)

	b.Run("BiasAfterScale", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Scale[float32](ctx, x, 2, 1, true, &out)
		}
	})

	b.Run("BiasBeforeScale", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Scale[float32](ctx, x, 2, 1, false, &out)
		}
	})
}

// BenchmarkDispatch measures the full lookup-and-invoke path against
// a direct kernel call.
func BenchmarkDispatch(b *testing.B) {
	r := kernel.NewRegistry()
	if err := RegisterAll(r); err != nil {
		b.Fatal(err)
	}

	ctx := device.NewCPUContext()
	key := kernel.NewKey(tensor.CPU, tensor.AnyLayout, tensor.Float32)
	x := benchDense[float32](b, 1000, 1)
	y := benchDense[float32](b, 1000, 2)
	out := benchDense[float32](b, 1000, 0)

	b.Run("Direct", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Add[float32](ctx, x, y, &out)
		}
	})

	b.Run("LookupTyped", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			k, err := r.Lookup("add", key)
			if err != nil {
				b.Fatal(err)
			}
			fn := k.Fn().(func(*device.CPUContext, tensor.Dense, tensor.Dense, *tensor.Dense) error)
			_ = fn(ctx, x, y, &out)
		}
	})

	b.Run("LookupReflect", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			k, err := r.Lookup("add", key)
			if err != nil {
				b.Fatal(err)
			}
			_ = k.Call(ctx, x, y, &out)
		}
	})
}
