package infobox

import (
	"errors"
	"fmt"
)

var (
	// ErrType is matched by every *TypeError.
	ErrType = errors.New("invalid parameter type")
	// ErrValue is matched by every *ValueError.
	ErrValue = errors.New("invalid parameter value")
	// ErrInvalidArgument is returned by the width arithmetic when called with
	// non-positive operands. Validated specs never trigger it.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TypeError reports a parameter whose dynamic type does not match the
// declared one.
type TypeError struct {
	Param string
	Want  string
	Got   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s must be %s, got %s", e.Param, e.Want, e.Got)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType
}

// ValueError reports a parameter with the right type but an out-of-range or
// empty value.
type ValueError struct {
	Param      string
	Constraint string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Constraint)
}

func (e *ValueError) Is(target error) bool {
	return target == ErrValue
}
