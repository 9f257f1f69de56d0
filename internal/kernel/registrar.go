package kernel

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"github.com/flint-ml/flint/internal/tensor"
)

// Instantiation pairs one compile-time instantiation of a kernel
// template with the data type it serves.
type Instantiation struct {
	DType tensor.DataType
	Fn    any
}

// ForType binds fn, an instantiation of a kernel template for element
// type T, to T's data type. Referencing the instantiation in the
// argument forces it into the binary.
func ForType[T tensor.Elem](fn any) Instantiation {
	return Instantiation{DType: tensor.TypeFor[T](), Fn: fn}
}

// DefFn is the author's definition pass, run on each record after
// classification. It can attach attribute defaults or override
// descriptors before the record is stored.
type DefFn func(*Kernel)

// Register builds and inserts one record per instantiation, in list
// order. AnyLayout resolves to DefaultLayout before keys are built.
// Instantiations that fail validation are reported in the returned
// error; the remaining ones still register.
func Register(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, insts ...Instantiation) error {
	var errs error
	for _, inst := range insts {
		if err := registerOne(r, name, backend, layout, def, inst.DType, inst.Fn); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// RegisterAllTypes inserts one record per concrete data type, all
// sharing fn. For kernels whose implementation is dtype-agnostic,
// such as raw-byte copy.
func RegisterAllTypes(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, fn any) error {
	var errs error
	for _, dt := range tensor.AllDataTypes() {
		if err := registerOne(r, name, backend, layout, def, dt, fn); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// MustRegister is Register for init-time use; it panics on error.
func MustRegister(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, insts ...Instantiation) {
	if err := Register(r, name, backend, layout, def, insts...); err != nil {
		panic(fmt.Sprintf("kernel: registering %q: %v", name, err))
	}
}

// MustRegisterAllTypes is RegisterAllTypes for init-time use.
func MustRegisterAllTypes(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, fn any) {
	if err := RegisterAllTypes(r, name, backend, layout, def, fn); err != nil {
		panic(fmt.Sprintf("kernel: registering %q: %v", name, err))
	}
}

func registerOne(r *Registry, name string, backend tensor.Backend, layout tensor.Layout, def DefFn, dtype tensor.DataType, fn any) error {
	key := NewKey(backend, layout, dtype)
	if dtype == tensor.Undefined {
		return fmt.Errorf("%s [%s]: %w: undefined data type", name, key, ErrBadKernel)
	}
	k, err := NewKernel(fn)
	if err != nil {
		return fmt.Errorf("%s [%s]: %w", name, key, err)
	}
	if err := checkContext(k.fn.Type(), backend); err != nil {
		return fmt.Errorf("%s [%s]: %w", name, key, err)
	}
	*k.Args() = Classify(k.fn.Type(), key)
	if def != nil {
		def(&k)
	}
	r.Register(name, key, k)
	return nil
}

// checkContext verifies that a leading context parameter agrees with
// the target backend. Kernels taking the Context interface run on any
// backend and pass unchecked.
func checkContext(fn reflect.Type, backend tensor.Backend) error {
	if fn.NumIn() == 0 {
		return nil
	}
	switch fn.In(0) {
	case cpuContextType:
		if backend != tensor.CPU {
			return fmt.Errorf("%w: CPU context parameter with %s backend", ErrBadKernel, backend)
		}
	case gpuContextType:
		if backend != tensor.GPU {
			return fmt.Errorf("%w: GPU context parameter with %s backend", ErrBadKernel, backend)
		}
	}
	return nil
}
