// Package elemwise provides the scalar functors behind Flint's
// built-in elementwise kernels. Each functor defines the per-element
// contract; kernels loop the functor over tensor storage.
//
// Division contracts differ by type class. Integer division and
// floor-division fail with ErrDivideByZero on a zero divisor.
// Floating-point division follows IEEE semantics and never fails:
// dividing by zero yields an infinity or NaN.
package elemwise

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the constraint for functor element types.
type Number interface {
	constraints.Integer | constraints.Float
}

// isIntegral reports whether T is one of the built-in integer types.
// A type switch only matches concrete types, so named types take the
// unchecked division path.
func isIntegral[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case uint8, int8, int16, int32, int64, int, uint, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// InverseAdd returns b + a.
func InverseAdd[T Number](a, b T) T { return b + a }

// Sub returns a - b.
func Sub[T Number](a, b T) T { return a - b }

// InverseSub returns b - a.
func InverseSub[T Number](a, b T) T { return b - a }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// InverseMul returns b * a.
func InverseMul[T Number](a, b T) T { return b * a }

// Max returns the larger operand.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller operand.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Div returns a / b. A zero integer divisor fails with ErrDivideByZero.
func Div[T Number](a, b T) (T, error) {
	if isIntegral[T]() && b == 0 {
		var zero T
		return zero, ErrDivideByZero
	}
	return a / b, nil
}

// InverseDiv returns b / a, checking a as the divisor.
func InverseDiv[T Number](a, b T) (T, error) {
	if isIntegral[T]() && a == 0 {
		var zero T
		return zero, ErrDivideByZero
	}
	return b / a, nil
}

// FloorDiv returns a / b truncated toward zero. A zero integer divisor
// fails with ErrDivideByZero; floating-point operands keep IEEE
// semantics, so a zero divisor yields an infinity or NaN.
func FloorDiv[T Number](a, b T) (T, error) {
	if isIntegral[T]() {
		if b == 0 {
			var zero T
			return zero, ErrDivideByZero
		}
		// Go integer division truncates toward zero.
		return a / b, nil
	}
	q := a / b
	return T(math.Trunc(float64(q))), nil
}

// InverseFloorDiv returns b / a truncated toward zero, checking a as
// the divisor.
func InverseFloorDiv[T Number](a, b T) (T, error) {
	if isIntegral[T]() {
		if a == 0 {
			var zero T
			return zero, ErrDivideByZero
		}
		return b / a, nil
	}
	q := b / a
	return T(math.Trunc(float64(q))), nil
}
