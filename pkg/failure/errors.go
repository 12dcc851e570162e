package failure

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors caused by malformed
// verb arguments, such as a negative offset. These are caller
// defects and never carry a Descriptor.
var ErrInvalidArgument = errors.New("invalid argument")

// AssertionError is the error produced for a failed assertion.
type AssertionError struct {
	Info       Info
	Descriptor Descriptor
	Message    string
}

func (e *AssertionError) Error() string {
	if e.Info.Description != "" {
		return fmt.Sprintf("[%s] %s", e.Info.Description, e.Message)
	}
	return e.Message
}

// AsAssertionError unwraps err into an *AssertionError.
func AsAssertionError(err error) (*AssertionError, bool) {
	var ae *AssertionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// InvalidArgument builds an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
