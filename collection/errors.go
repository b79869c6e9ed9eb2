package collection

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes collection errors.
type ErrorCode string

const (
	// ErrCodeUnsupportedOperation indicates an operation attempted at the
	// wrong tree level, e.g. adding a reaction to a diagram-shaped collection.
	ErrCodeUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"

	// ErrCodeShapeMismatch indicates two collections built from
	// differently-shaped model trees were combined.
	ErrCodeShapeMismatch ErrorCode = "SHAPE_MISMATCH"

	// ErrCodeTypeMismatch indicates a narrowing accessor found a collection
	// of an unexpected concrete variant.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

// Error represents an expected, checkable misuse of a collection: an
// operation at the wrong tree level, or two structures built from
// incompatible trees. These must surface to the caller rather than be
// silently ignored, since silent handling would desynchronize the
// reaction/kind pairing across a composite tree.
//
// Programming errors (nil arguments, out-of-range indices) are not Errors;
// they panic. See the package documentation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operation that failed.
	Op string

	// Message is a human-readable description.
	Message string

	// Want and Got describe the expected and actual shape or variant,
	// for shape and type mismatches.
	Want string
	Got  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Want != "" || e.Got != "" {
		return fmt.Sprintf("%s: %s: %s (want %s, got %s)", e.Op, e.Code, e.Message, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
}

// IsUnsupportedOperation returns true if err is an unsupported-operation
// error. Uses errors.As to handle wrapped errors.
func IsUnsupportedOperation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnsupportedOperation
}

// IsShapeMismatch returns true if err is a shape-mismatch error.
// Uses errors.As to handle wrapped errors.
func IsShapeMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeShapeMismatch
}

// IsTypeMismatch returns true if err is a type-mismatch error.
// Uses errors.As to handle wrapped errors.
func IsTypeMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTypeMismatch
}

func newUnsupportedError(op, message string) *Error {
	return &Error{Code: ErrCodeUnsupportedOperation, Op: op, Message: message}
}

func newShapeMismatchError(op, message, want, got string) *Error {
	return &Error{Code: ErrCodeShapeMismatch, Op: op, Message: message, Want: want, Got: got}
}

func newTypeMismatchError(op, message, want, got string) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Op: op, Message: message, Want: want, Got: got}
}
