// Copyright 2025 Flint ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/flint-ml/flint/tensor"
)

// TestDenseAPI verifies the Dense alias exposes the expected API.
func TestDenseAPI(t *testing.T) {
	d, err := tensor.NewDense(tensor.Shape{2, 3}, tensor.Float32, tensor.NCHW, tensor.CPU)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	if !d.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", d.Shape())
	}
	if d.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", d.DType())
	}
	if d.Layout() != tensor.NCHW {
		t.Errorf("Layout() = %v, want NCHW", d.Layout())
	}
	if d.Backend() != tensor.CPU {
		t.Errorf("Backend() = %v, want CPU", d.Backend())
	}
	if n := d.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}
	if got := d.ByteSize(); got != 24 {
		t.Errorf("ByteSize() = %d, want 24", got)
	}
}

func TestFromSliceRoundTrip(t *testing.T) {
	vals := []int32{1, -2, 3, -4}
	d, err := tensor.FromSlice(vals, tensor.Shape{4}, tensor.NCHW, tensor.CPU)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	got := tensor.Data[int32](d)
	for i, want := range vals {
		if got[i] != want {
			t.Errorf("Data[int32]()[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestTypeFor(t *testing.T) {
	if got := tensor.TypeFor[float32](); got != tensor.Float32 {
		t.Errorf("TypeFor[float32]() = %v, want Float32", got)
	}
	if got := tensor.TypeFor[bool](); got != tensor.Bool {
		t.Errorf("TypeFor[bool]() = %v, want Bool", got)
	}
}

func TestAllDataTypes(t *testing.T) {
	all := tensor.AllDataTypes()
	if len(all) != 9 {
		t.Fatalf("AllDataTypes() returned %d dtypes, want 9", len(all))
	}
	if all[0] != tensor.Bool || all[len(all)-1] != tensor.Float64 {
		t.Errorf("AllDataTypes() = %v, want Bool..Float64", all)
	}
}

func TestOpt(t *testing.T) {
	d, err := tensor.NewDense(tensor.Shape{1}, tensor.Float32, tensor.NCHW, tensor.CPU)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	some := tensor.Some(d)
	if !some.Valid() {
		t.Error("Some(d).Valid() = false, want true")
	}

	none := tensor.None()
	if none.Valid() {
		t.Error("None().Valid() = true, want false")
	}
	if _, ok := none.Get(); ok {
		t.Error("None().Get() reported a value")
	}
}
