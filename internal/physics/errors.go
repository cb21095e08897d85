package physics

import (
	"errors"
	"fmt"
)

// ErrPrecondition matches every PreconditionError via errors.Is.
var ErrPrecondition = errors.New("physics: precondition violated")

// PreconditionError reports an input that makes a formula undefined
// (division by zero, log or sqrt outside its domain).
type PreconditionError struct {
	Op     string  // formula that rejected the value, e.g. "reynolds"
	Field  string  // offending quantity, e.g. "viscosity"
	Value  float64 // value as received
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("physics: %s: %s = %g: %s", e.Op, e.Field, e.Value, e.Reason)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

func precondition(op, field string, v float64, reason string) error {
	return &PreconditionError{Op: op, Field: field, Value: v, Reason: reason}
}

// requirePositive rejects zero, negative and non-finite values.
func requirePositive(op, field string, v float64) error {
	if !finite(v) {
		return precondition(op, field, v, "must be finite")
	}
	if v <= 0 {
		return precondition(op, field, v, "must be > 0")
	}
	return nil
}

// requireNonZero rejects zero and non-finite values; the sign is left to the caller.
func requireNonZero(op, field string, v float64) error {
	if !finite(v) {
		return precondition(op, field, v, "must be finite")
	}
	if v == 0 {
		return precondition(op, field, v, "must be non-zero")
	}
	return nil
}
