package kernel

import (
	"reflect"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/tensor"
)

// Static parameter patterns the classifier matches against.
var (
	cpuContextType = reflect.TypeOf((*device.CPUContext)(nil))
	gpuContextType = reflect.TypeOf((*device.GPUContext)(nil))
	contextType    = reflect.TypeOf((*device.Context)(nil)).Elem()

	denseType         = reflect.TypeOf(tensor.Dense{})
	optType           = reflect.TypeOf(tensor.Opt{})
	denseSliceType    = reflect.TypeOf([]tensor.Dense(nil))
	densePtrType      = reflect.TypeOf((*tensor.Dense)(nil))
	densePtrSliceType = reflect.TypeOf([]*tensor.Dense(nil))
)

// isContext reports whether t is an execution context parameter.
func isContext(t reflect.Type) bool {
	return t == cpuContextType || t == gpuContextType || t == contextType
}

// Classify derives a kernel's argument signature from its parameter
// types. Context parameters are skipped. Tensor views and view slices
// become inputs; tensor pointers and pointer slices become outputs;
// everything else is an attribute. Descriptors inherit the key's
// backend, layout, and data type, with AnyLayout resolved to
// DefaultLayout. The same function type and key always produce the
// same signature.
func Classify(fn reflect.Type, key Key) ArgsDef {
	layout := key.Layout
	if layout == tensor.AnyLayout {
		layout = tensor.DefaultLayout
	}
	desc := TensorDesc{Backend: key.Backend, Layout: layout, DType: key.DType}

	var args ArgsDef
	for i := 0; i < fn.NumIn(); i++ {
		in := fn.In(i)
		switch {
		case isContext(in):
			// Execution contexts are call-time state, not arguments.
		case in == denseType, in == optType, in == denseSliceType:
			args.AppendInput(desc)
		case in == densePtrType, in == densePtrSliceType:
			args.AppendOutput(desc)
		default:
			// Any other type passes as an attribute.
			// TODO: tighten to a known attribute type list so
			// misdeclared tensor parameters fail at registration.
			args.AppendAttr(AttrDef{Type: in})
		}
	}
	return args
}
