package kernel

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// Key identifies one compiled variant of a kernel: the execution
// backend, the memory layout, and the element data type. Keys are
// comparable and used directly as map keys.
type Key struct {
	Backend tensor.Backend
	Layout  tensor.Layout
	DType   tensor.DataType
}

// NewKey returns a Key with AnyLayout resolved to DefaultLayout.
// Stored keys always carry a concrete layout.
func NewKey(backend tensor.Backend, layout tensor.Layout, dtype tensor.DataType) Key {
	if layout == tensor.AnyLayout {
		layout = tensor.DefaultLayout
	}
	return Key{Backend: backend, Layout: layout, DType: dtype}
}

// String renders the key as "CPU/NCHW/float32".
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Backend, k.Layout, k.DType)
}

// Compare orders keys by backend, then layout, then data type.
// Returns -1, 0, or 1.
func (k Key) Compare(other Key) int {
	switch {
	case k.Backend != other.Backend:
		if k.Backend < other.Backend {
			return -1
		}
		return 1
	case k.Layout != other.Layout:
		if k.Layout < other.Layout {
			return -1
		}
		return 1
	case k.DType != other.DType:
		if k.DType < other.DType {
			return -1
		}
		return 1
	default:
		return 0
	}
}
