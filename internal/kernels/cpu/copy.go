package cpu

import (
	"fmt"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/tensor"
)

// Copy clones x's raw bytes into out. One dtype-agnostic
// implementation serves every element type, so it registers through
// the all-types expansion rather than per-type instantiation.
func Copy(ctx device.Context, x tensor.Dense, out *tensor.Dense) error {
	if out == nil {
		return fmt.Errorf("copy: nil output")
	}
	if !out.Shape().Equal(x.Shape()) {
		return fmt.Errorf("copy: output shape %v, want %v", out.Shape(), x.Shape())
	}
	if out.DType() != x.DType() {
		return fmt.Errorf("copy: dtype mismatch: %s vs %s", out.DType(), x.DType())
	}
	copy(out.Bytes(), x.Bytes())
	return nil
}
