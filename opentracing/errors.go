package opentracing

import (
	"errors"
	"fmt"
)

// InternalErrorCode is the code of errors that carry no code of their own.
const InternalErrorCode = -1

// Coder is implemented by errors that carry a numeric code.
type Coder interface {
	Code() int
}

// Error is the cleaned form of an error returned by traced work. It keeps
// the message and code; the original error is reachable through Unwrap but
// is never logged.
type Error struct {
	Message string
	Code    int
	Source  error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Source
}

// LogProjection implements logging.Loggable.
func (e *Error) LogProjection() interface{} {
	return map[string]interface{}{
		"message": e.Message,
		"code":    e.Code,
	}
}

// CleanError normalizes err into an *Error. An *Error is returned as is.
// Any other error keeps its full message and takes the code of the first
// *Error or Coder in its chain. A nil err yields nil.
func CleanError(err error) *Error {
	if err == nil {
		return nil
	}
	if cleaned, ok := err.(*Error); ok {
		return cleaned
	}
	code := InternalErrorCode
	var inner *Error
	var coder Coder
	switch {
	case errors.As(err, &inner):
		code = inner.Code
	case errors.As(err, &coder):
		code = coder.Code()
	}
	return &Error{Message: err.Error(), Code: code, Source: err}
}

// panicError converts a recovered panic value to an error.
func panicError(v interface{}) error {
	switch v := v.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("panic: %v", v)
	}
}
