package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/tensor"
)

func TestFill_Float32(t *testing.T) {
	ctx := device.NewCPUContext()
	out, err := tensor.NewDense(tensor.Shape{5}, tensor.Float32, tensor.NCHW, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, Fill[float32](ctx, 3.5, &out))
	assert.Equal(t, []float32{3.5, 3.5, 3.5, 3.5, 3.5}, tensor.Data[float32](out))
}

// TestFill_Int64 checks that the fill value converts to the output's
// element type.
func TestFill_Int64(t *testing.T) {
	ctx := device.NewCPUContext()
	out, err := tensor.NewDense(tensor.Shape{3}, tensor.Int64, tensor.NCHW, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, Fill[int64](ctx, 7, &out))
	assert.Equal(t, []int64{7, 7, 7}, tensor.Data[int64](out))
}

func TestFill_NilOutput(t *testing.T) {
	ctx := device.NewCPUContext()
	err := Fill[float32](ctx, 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil output")
}

func TestFill_Overwrites(t *testing.T) {
	ctx := device.NewCPUContext()
	out := denseOf(t, []int32{1, 2, 3}, tensor.Shape{3})

	require.NoError(t, Fill[int32](ctx, -4, &out))
	assert.Equal(t, []int32{-4, -4, -4}, tensor.Data[int32](out))
}
