package elemwise

import "errors"

// Common errors returned by elementwise functors.
var (
	// ErrDivideByZero reports an integer division or floor-division
	// with a zero divisor.
	ErrDivideByZero = errors.New("invalid argument: integer division by zero encountered in (floor) divide, please check the input value")
)
