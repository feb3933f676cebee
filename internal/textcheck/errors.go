// Package textcheck holds the pure text and arithmetic checks: palindrome
// detection, addition, and division with zero-divisor rejection.
package textcheck

import "errors"

// ErrInvalidArgument is returned when an argument violates a precondition,
// such as a zero divisor or an operand that is not a number.
var ErrInvalidArgument = errors.New("invalid argument")
