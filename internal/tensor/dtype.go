// Package tensor provides the dense tensor container and the backend,
// layout, and data-type metadata used to key kernels in Flint.
package tensor

import "github.com/x448/float16"

// Elem is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Elem interface {
	~bool | ~uint8 | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 | float16.Float16
}

// DataType represents runtime type information for tensor elements.
type DataType int

// Supported data types for tensors. Undefined is the zero value;
// stored kernels always carry one of the concrete types.
const (
	Undefined DataType = iota
	Bool
	Uint8
	Int8
	Int16
	Int32
	Int64
	Float16
	Float32
	Float64
	numDataTypes
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8, Int8:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Undefined:
		return "undefined"
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float16 || dt == Float32 || dt == Float64
}

// IsInteger reports whether the data type is an integer type.
func (dt DataType) IsInteger() bool {
	switch dt {
	case Uint8, Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// TypeFor maps the compile-time element type T to its DataType.
func TypeFor[T Elem]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}

// AllDataTypes returns every concrete data type in declaration order,
// excluding Undefined.
func AllDataTypes() []DataType {
	all := make([]DataType, 0, int(numDataTypes)-1)
	for dt := Bool; dt < numDataTypes; dt++ {
		all = append(all, dt)
	}
	return all
}
