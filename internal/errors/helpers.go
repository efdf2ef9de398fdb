package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost *Error in the chain. A nil error
// is OK and a plain error is Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func GetMeta(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message, falling back to err.Error()
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool         { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool  { return GetCode(err) == CodeInvalidArgument }
func IsAlreadyExists(err error) bool    { return GetCode(err) == CodeAlreadyExists }
func IsOutOfRange(err error) bool       { return GetCode(err) == CodeOutOfRange }
func IsInternal(err error) bool         { return GetCode(err) == CodeInternal }
func IsUnavailable(err error) bool      { return GetCode(err) == CodeUnavailable }
func IsDataLoss(err error) bool         { return GetCode(err) == CodeDataLoss }
func IsCanceled(err error) bool         { return GetCode(err) == CodeCanceled }
func IsDeadlineExceeded(err error) bool { return GetCode(err) == CodeDeadlineExceeded }
