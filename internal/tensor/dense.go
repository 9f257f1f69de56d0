package tensor

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"
)

// Dense is a dense, contiguously stored tensor. The header has value
// semantics: copying a Dense copies the view, while the underlying
// storage stays shared.
type Dense struct {
	data    []byte
	shape   Shape
	dtype   DataType
	layout  Layout
	backend Backend
}

// NewDense allocates a zero-filled tensor with the given metadata.
func NewDense(shape Shape, dtype DataType, layout Layout, backend Backend) (Dense, error) {
	if err := shape.Validate(); err != nil {
		return Dense{}, fmt.Errorf("invalid shape: %w", err)
	}
	if dtype <= Undefined || dtype >= numDataTypes {
		return Dense{}, fmt.Errorf("invalid data type: %d", int(dtype))
	}
	return Dense{
		data:    make([]byte, shape.NumElements()*dtype.Size()),
		shape:   shape,
		dtype:   dtype,
		layout:  layout,
		backend: backend,
	}, nil
}

// FromSlice builds a tensor holding a copy of data. The element type
// of the slice determines the tensor's data type.
func FromSlice[T Elem](data []T, shape Shape, layout Layout, backend Backend) (Dense, error) {
	d, err := NewDense(shape, TypeFor[T](), layout, backend)
	if err != nil {
		return Dense{}, err
	}
	if len(data) != d.NumElements() {
		return Dense{}, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, d.NumElements())
	}
	copy(Data[T](d), data)
	return d, nil
}

// Shape returns the tensor's dimensions.
func (d Dense) Shape() Shape { return d.shape }

// DType returns the element data type.
func (d Dense) DType() DataType { return d.dtype }

// Layout returns the memory layout.
func (d Dense) Layout() Layout { return d.layout }

// Backend returns the execution target the tensor belongs to.
func (d Dense) Backend() Backend { return d.backend }

// NumElements returns the total number of elements.
func (d Dense) NumElements() int { return d.shape.NumElements() }

// ByteSize returns the size of the backing storage in bytes.
func (d Dense) ByteSize() int { return len(d.data) }

// Bytes returns the raw backing storage.
func (d Dense) Bytes() []byte { return d.data }

// Empty reports whether the tensor has no backing storage.
func (d Dense) Empty() bool { return d.data == nil }

// String returns a short description of the tensor.
func (d Dense) String() string {
	return fmt.Sprintf("Dense(%v, %s, %s, %s)", d.shape, d.dtype, d.layout, d.backend)
}

// Data returns the tensor's storage viewed as []T without copying.
// Panics if T does not match the tensor's data type.
func Data[T Elem](d Dense) []T {
	if want := TypeFor[T](); d.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", d.dtype, want))
	}
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// Float16s converts a Float16 tensor's elements to []float32.
// Panics if the tensor's data type is not Float16.
func Float16s(d Dense) []float32 {
	raw := Data[float16.Float16](d)
	out := make([]float32, len(raw))
	for i, h := range raw {
		out[i] = h.Float32()
	}
	return out
}

// SetFloat16s fills a Float16 tensor from float32 values, rounding
// each to the nearest representable half-precision value. Panics if
// the tensor's data type is not Float16 or the value count does not
// match the element count.
func SetFloat16s(d Dense, vals []float32) {
	raw := Data[float16.Float16](d)
	if len(vals) != len(raw) {
		panic(fmt.Sprintf("value count %d does not match element count %d", len(vals), len(raw)))
	}
	for i, v := range vals {
		raw[i] = float16.Fromfloat32(v)
	}
}

// Opt is an optional tensor input. The zero value is absent.
type Opt struct {
	t  Dense
	ok bool
}

// Some wraps t in a present Opt.
func Some(t Dense) Opt { return Opt{t: t, ok: true} }

// None returns an absent Opt.
func None() Opt { return Opt{} }

// Get returns the wrapped tensor and whether one is present.
func (o Opt) Get() (Dense, bool) { return o.t, o.ok }

// Valid reports whether a tensor is present.
func (o Opt) Valid() bool { return o.ok }
