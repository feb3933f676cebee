package textcheck

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a + b using the operand type's own addition rules.
func Add[T Number](a, b T) T {
	return a + b
}

// Divide returns a / b as a floating-point quotient.
// It fails with ErrInvalidArgument when b is exactly zero.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	}
	return float64(a) / float64(b), nil
}
