package kernel

import (
	"reflect"
	"testing"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/tensor"
)

func BenchmarkLookup(b *testing.B) {
	r := NewRegistry()
	k, err := NewKernel(func(x tensor.Dense, out *tensor.Dense) error { return nil })
	if err != nil {
		b.Fatalf("NewKernel failed: %v", err)
	}
	for _, dt := range tensor.AllDataTypes() {
		r.Register("add", NewKey(tensor.CPU, tensor.NCHW, dt), k)
	}
	key := NewKey(tensor.CPU, tensor.NCHW, tensor.Float32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Lookup("add", key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	fn := reflect.TypeOf(func(ctx *device.CPUContext, x, y tensor.Dense, scale float64, out *tensor.Dense) error {
		return nil
	})
	key := NewKey(tensor.CPU, tensor.AnyLayout, tensor.Float32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Classify(fn, key)
	}
}

func BenchmarkCall(b *testing.B) {
	fn := func(x tensor.Dense, out *tensor.Dense) error {
		copy(tensor.Data[float32](*out), tensor.Data[float32](x))
		return nil
	}
	k, err := NewKernel(fn)
	if err != nil {
		b.Fatalf("NewKernel failed: %v", err)
	}

	x, err := tensor.FromSlice(make([]float32, 1024), tensor.Shape{1024}, tensor.NCHW, tensor.CPU)
	if err != nil {
		b.Fatalf("FromSlice failed: %v", err)
	}
	out, err := tensor.NewDense(tensor.Shape{1024}, tensor.Float32, tensor.NCHW, tensor.CPU)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}

	b.Run("reflect", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := k.Call(x, &out); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("typed", func(b *testing.B) {
		typed := k.Fn().(func(tensor.Dense, *tensor.Dense) error)
		for i := 0; i < b.N; i++ {
			if err := typed(x, &out); err != nil {
				b.Fatal(err)
			}
		}
	})
}
