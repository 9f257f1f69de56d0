package kernel

import (
	"reflect"

	"github.com/flint-ml/flint/internal/tensor"
)

// TensorDesc describes one tensor parameter of a kernel signature.
type TensorDesc struct {
	Backend tensor.Backend
	Layout  tensor.Layout
	DType   tensor.DataType
}

// AttrDef describes one attribute parameter: its Go type, plus an
// optional default value attached by the definition pass.
type AttrDef struct {
	Type    reflect.Type
	Default any
}

// ArgsDef records a kernel's parameter roles in declared order, with
// context parameters elided. It is built during registration and
// read-only once the record is stored.
type ArgsDef struct {
	inputs  []TensorDesc
	outputs []TensorDesc
	attrs   []AttrDef
}

// AppendInput adds an input descriptor.
func (a *ArgsDef) AppendInput(d TensorDesc) { a.inputs = append(a.inputs, d) }

// AppendOutput adds an output descriptor.
func (a *ArgsDef) AppendOutput(d TensorDesc) { a.outputs = append(a.outputs, d) }

// AppendAttr adds an attribute definition.
func (a *ArgsDef) AppendAttr(d AttrDef) { a.attrs = append(a.attrs, d) }

// Input returns the i-th input descriptor for in-place modification.
func (a *ArgsDef) Input(i int) *TensorDesc { return &a.inputs[i] }

// Output returns the i-th output descriptor for in-place modification.
func (a *ArgsDef) Output(i int) *TensorDesc { return &a.outputs[i] }

// Attr returns the i-th attribute definition for in-place modification.
func (a *ArgsDef) Attr(i int) *AttrDef { return &a.attrs[i] }

// NumInputs returns the number of input descriptors.
func (a *ArgsDef) NumInputs() int { return len(a.inputs) }

// NumOutputs returns the number of output descriptors.
func (a *ArgsDef) NumOutputs() int { return len(a.outputs) }

// NumAttrs returns the number of attribute definitions.
func (a *ArgsDef) NumAttrs() int { return len(a.attrs) }

// Clone returns a deep copy of the definition.
func (a *ArgsDef) Clone() ArgsDef {
	return ArgsDef{
		inputs:  append([]TensorDesc(nil), a.inputs...),
		outputs: append([]TensorDesc(nil), a.outputs...),
		attrs:   append([]AttrDef(nil), a.attrs...),
	}
}
