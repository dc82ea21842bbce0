package bindgen

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes generation failures. All of them are fatal for
// the build invocation; there is no partial or degraded output.
type ErrorCode string

const (
	// ErrCodeParseFailed means the front end could not produce
	// declarations (missing header, unresolvable include, syntax it
	// cannot model).
	ErrCodeParseFailed ErrorCode = "GENERATION_FAILED"

	// ErrCodeSymbolMissing means an allow-listed name did not resolve
	// in the parsed header.
	ErrCodeSymbolMissing ErrorCode = "SYMBOL_MISSING"

	// ErrCodeWriteFailed means the output file could not be written.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
)

// GenerationError is a fatal binding-generation failure.
type GenerationError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsWriteFailure reports whether err is an output write failure.
// Uses errors.As to handle wrapped errors.
func IsWriteFailure(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge) && ge.Code == ErrCodeWriteFailed
}
