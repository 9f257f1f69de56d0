package kernel

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Kernel is one registered record: the callable plus its argument
// signature. Records are immutable once stored in a registry.
type Kernel struct {
	fn    reflect.Value
	typed any
	args  ArgsDef
}

// NewKernel validates fn and builds a record with an empty signature.
// fn must be a non-variadic function returning exactly one error.
func NewKernel(fn any) (Kernel, error) {
	if fn == nil {
		return Kernel{}, fmt.Errorf("%w: nil function", ErrBadKernel)
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return Kernel{}, fmt.Errorf("%w: %s is not a function", ErrBadKernel, t.Kind())
	}
	if t.IsVariadic() {
		return Kernel{}, fmt.Errorf("%w: variadic functions are not supported", ErrBadKernel)
	}
	if t.NumOut() != 1 || t.Out(0) != errorType {
		return Kernel{}, fmt.Errorf("%w: must return exactly one error", ErrBadKernel)
	}
	return Kernel{fn: v, typed: fn}, nil
}

// Valid reports whether the record holds a callable function.
func (k Kernel) Valid() bool { return k.fn.IsValid() }

// Fn returns the registered function with its original type. Call
// sites that know the concrete signature type-assert and invoke it
// without reflection.
func (k Kernel) Fn() any { return k.typed }

// Args returns the argument signature. The definition pass mutates it
// during registration; it is read-only afterwards.
func (k *Kernel) Args() *ArgsDef { return &k.args }

// Call invokes the kernel through reflection. Mismatched arity or
// argument types return an error wrapping ErrBadArgument; the
// kernel's own error return passes through unchanged.
func (k Kernel) Call(args ...any) error {
	if !k.fn.IsValid() {
		return fmt.Errorf("%w: empty kernel", ErrBadKernel)
	}
	t := k.fn.Type()
	if len(args) != t.NumIn() {
		return fmt.Errorf("%w: got %d arguments, want %d", ErrBadArgument, len(args), t.NumIn())
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := t.In(i)
		if arg == nil {
			// Untyped nil only fits nilable parameter types.
			switch pt.Kind() {
			case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
				in[i] = reflect.Zero(pt)
			default:
				return fmt.Errorf("%w: argument %d is nil, want %s", ErrBadArgument, i, pt)
			}
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return fmt.Errorf("%w: argument %d is %s, want %s", ErrBadArgument, i, v.Type(), pt)
		}
		in[i] = v
	}

	out := k.fn.Call(in)
	if err, ok := out[0].Interface().(error); ok && err != nil {
		return err
	}
	return nil
}
