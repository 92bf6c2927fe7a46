package braciole

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a flow (pressed back, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")
)

// InputError represents a failure in the input device layer (opening an
// event device, reading from it, decoding a mapping file). These errors
// mean commands can no longer be delivered to the controller and typically
// require the host application to fall back to another input source.
type InputError struct {
	Op  string // Operation that failed (e.g., "open_device", "read_event")
	Err error  // Underlying error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("braciole: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("braciole: %s", e.Op)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new input error.
func NewInputError(op string, err error) *InputError {
	return &InputError{Op: op, Err: err}
}

// IsInputError checks if an error is an input error.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
