package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a stored vector or playlist does not exist.
	ErrNotFound = errors.New("domain: not found")

	// ErrInvalidVector indicates a HAMMS vector failed its quality gate.
	ErrInvalidVector = errors.New("domain: invalid vector")

	// ErrInvalidRequest indicates malformed playlist request parameters.
	ErrInvalidRequest = errors.New("domain: invalid request")
)

// VectorValidationError carries the first invariant violation found while
// validating a HAMMS vector. It matches ErrInvalidVector through errors.Is.
type VectorValidationError struct {
	Dimension string
	Value     float64
	Reason    string
}

func (e *VectorValidationError) Error() string {
	return fmt.Sprintf("invalid vector: dimension %q value %v %s", e.Dimension, e.Value, e.Reason)
}

func (e *VectorValidationError) Is(target error) bool {
	return target == ErrInvalidVector
}

// RequestError describes a rejected playlist request parameter. It matches
// ErrInvalidRequest through errors.Is.
type RequestError struct {
	Param  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Param, e.Reason)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}
