package bignum

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when a string is not a valid decimal literal.
	ErrFormat = errors.New("invalid decimal format")
	// ErrNilArgument is returned when a required argument is missing.
	ErrNilArgument = errors.New("nil argument")
	// ErrInvalidState is returned when the numeric state of an undefined
	// decimal is read.
	ErrInvalidState = errors.New("undefined decimal")
)

// checkArg rejects an absent argument.
func checkArg(op, name string, missing bool) error {
	if missing {
		return fmt.Errorf("%v: argument %q: %w", op, name, ErrNilArgument)
	}
	return nil
}

// checkDefined rejects an undefined receiver or operand.
func checkDefined(op string, ds ...Decimal) error {
	for _, d := range ds {
		if d.undef {
			return fmt.Errorf("%v: %w", op, ErrInvalidState)
		}
	}
	return nil
}

func formatErrorf(s, reason string, args ...any) error {
	return fmt.Errorf("parsing %q: %v: %w", s, fmt.Sprintf(reason, args...), ErrFormat)
}
