package cpu

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/elemwise"
	"github.com/flint-ml/flint/internal/kernel"
	"github.com/flint-ml/flint/internal/tensor"
)

var numericDTypes = []tensor.DataType{
	tensor.Uint8, tensor.Int8, tensor.Int16, tensor.Int32, tensor.Int64,
	tensor.Float32, tensor.Float64,
}

func cpuKey(dt tensor.DataType) kernel.Key {
	return kernel.NewKey(tensor.CPU, tensor.AnyLayout, dt)
}

func TestRegisterAll(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	assert.Equal(t, []string{
		"add", "cast", "copy", "divide", "fill", "floor_divide",
		"maximum", "minimum", "multiply", "scale", "subtract",
	}, r.Names())

	// Seven numeric instantiations per arithmetic kernel, plus
	// float16 for add and scale, plus all nine dtypes for copy.
	counts := map[string]int{
		"add":          8,
		"subtract":     7,
		"multiply":     7,
		"divide":       7,
		"floor_divide": 7,
		"maximum":      7,
		"minimum":      7,
		"scale":        8,
		"cast":         7,
		"fill":         7,
		"copy":         9,
	}
	total := 0
	for name, want := range counts {
		assert.Len(t, r.Keys(name), want, "key count for %q", name)
		total += want
	}
	assert.Equal(t, total, r.Len())

	for _, dt := range numericDTypes {
		assert.True(t, r.Has("add", cpuKey(dt)), "add missing for %s", dt)
	}
	assert.True(t, r.Has("add", cpuKey(tensor.Float16)))
	assert.False(t, r.Has("subtract", cpuKey(tensor.Float16)))
}

// TestGlobalRegistration checks that importing the package populates
// the global registry.
func TestGlobalRegistration(t *testing.T) {
	assert.True(t, kernel.Global.Has("add", cpuKey(tensor.Float32)))
	assert.True(t, kernel.Global.Has("copy", cpuKey(tensor.Bool)))
	assert.True(t, kernel.Global.Has("scale", cpuKey(tensor.Float16)))
}

func TestCopyRegisteredForAllDTypes(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	for _, dt := range tensor.AllDataTypes() {
		assert.True(t, r.Has("copy", cpuKey(dt)), "copy missing for %s", dt)
	}
}

// TestTypedDispatch looks a kernel up and invokes it through the
// typed function path.
func TestTypedDispatch(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	k, err := r.Lookup("add", cpuKey(tensor.Float32))
	require.NoError(t, err)

	fn, ok := k.Fn().(func(*device.CPUContext, tensor.Dense, tensor.Dense, *tensor.Dense) error)
	require.True(t, ok, "unexpected kernel function type %T", k.Fn())

	ctx := device.NewCPUContext()
	x := denseOf(t, []float32{1, 2}, tensor.Shape{2})
	y := denseOf(t, []float32{10, 20}, tensor.Shape{2})
	out := emptyLike(t, x)

	require.NoError(t, fn(ctx, x, y, &out))
	assert.Equal(t, []float32{11, 22}, tensor.Data[float32](out))
}

// TestReflectDispatch invokes a kernel through the reflective Call
// path and checks that kernel errors pass through.
func TestReflectDispatch(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	k, err := r.Lookup("divide", cpuKey(tensor.Int32))
	require.NoError(t, err)

	ctx := device.NewCPUContext()
	x := denseOf(t, []int32{10, 20}, tensor.Shape{2})
	y := denseOf(t, []int32{2, 5}, tensor.Shape{2})
	out := emptyLike(t, x)

	require.NoError(t, k.Call(ctx, x, y, &out))
	assert.Equal(t, []int32{5, 4}, tensor.Data[int32](out))

	zero := denseOf(t, []int32{0, 1}, tensor.Shape{2})
	err = k.Call(ctx, x, zero, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, elemwise.ErrDivideByZero))
}

func TestFillTypedDispatch(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	k, err := r.Lookup("fill", cpuKey(tensor.Int32))
	require.NoError(t, err)

	fn, ok := k.Fn().(func(*device.CPUContext, float64, *tensor.Dense) error)
	require.True(t, ok, "unexpected kernel function type %T", k.Fn())

	out, err := tensor.NewDense(tensor.Shape{4}, tensor.Int32, tensor.NCHW, tensor.CPU)
	require.NoError(t, err)
	require.NoError(t, fn(device.NewCPUContext(), 9, &out))
	assert.Equal(t, []int32{9, 9, 9, 9}, tensor.Data[int32](out))
}

// TestScaleDefaults checks the attribute defaults attached by the
// definition pass.
func TestScaleDefaults(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	k, err := r.Lookup("scale", cpuKey(tensor.Float32))
	require.NoError(t, err)

	args := k.Args()
	require.Equal(t, 3, args.NumAttrs())
	assert.Equal(t, reflect.TypeOf(float64(0)), args.Attr(0).Type)
	assert.Equal(t, float64(1), args.Attr(0).Default)
	assert.Equal(t, float64(0), args.Attr(1).Default)
	assert.Equal(t, reflect.TypeOf(true), args.Attr(2).Type)
	assert.Equal(t, true, args.Attr(2).Default)
}

// TestCastOutputDType checks that cast's output descriptor is marked
// as call-time decided while the input keeps the registered dtype.
func TestCastOutputDType(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	k, err := r.Lookup("cast", cpuKey(tensor.Float64))
	require.NoError(t, err)

	args := k.Args()
	require.Equal(t, 1, args.NumInputs())
	require.Equal(t, 1, args.NumOutputs())
	assert.Equal(t, tensor.Float64, args.Input(0).DType)
	assert.Equal(t, tensor.Undefined, args.Output(0).DType)
}

// TestArgsDescriptors spot-checks the classified argument layout of a
// registered kernel.
func TestArgsDescriptors(t *testing.T) {
	r := kernel.NewRegistry()
	require.NoError(t, RegisterAll(r))

	k, err := r.Lookup("add", cpuKey(tensor.Float32))
	require.NoError(t, err)

	args := k.Args()
	assert.Equal(t, 2, args.NumInputs())
	assert.Equal(t, 1, args.NumOutputs())
	assert.Equal(t, 0, args.NumAttrs())
	assert.Equal(t, tensor.NCHW, args.Input(0).Layout)
	assert.Equal(t, tensor.CPU, args.Input(0).Backend)
}
