package errors

import (
	"errors"
	"fmt"
)

// Error is the error type returned across package boundaries. Code decides
// the gRPC status, Message is safe to show a caller, and Meta carries
// structured context such as the layout id or field-level validation errors.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// WithMeta sets a metadata key and returns e for chaining
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds a message to err. The code and metadata of a wrapped *Error are
// kept; any other error becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: CodeInternal, Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) {
		out.Code = inner.Code
		out.Meta = inner.Meta
	}
	return out
}

func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code, copying any metadata it carries
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: code, Message: message, Cause: err, Meta: map[string]interface{}{}}
	var inner *Error
	if errors.As(err, &inner) {
		for k, v := range inner.Meta {
			out.Meta[k] = v
		}
	}
	return out
}

func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...interface{}) *Error {
	return newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...interface{}) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

func AlreadyExists(message string) *Error { return New(CodeAlreadyExists, message) }

func AlreadyExistsf(format string, args ...interface{}) *Error {
	return newf(CodeAlreadyExists, format, args...)
}

// OutOfRangef reports a grid position or index outside its bounds
func OutOfRangef(format string, args ...interface{}) *Error {
	return newf(CodeOutOfRange, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...interface{}) *Error {
	return newf(CodeInternal, format, args...)
}

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func DeadlineExceeded(message string) *Error { return New(CodeDeadlineExceeded, message) }
