package remote

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failed call to the store.
type ErrorCode string

const (
	ErrCodeTransport    ErrorCode = "TRANSPORT"
	ErrCodeHTTPStatus   ErrorCode = "HTTP_STATUS"
	ErrCodeDecode       ErrorCode = "DECODE"
	ErrCodeEncode       ErrorCode = "ENCODE"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Error is returned by every Client method.
type Error struct {
	Code   ErrorCode
	Op     string // "list items", "toggle item", ...
	Status int    // HTTP status, only for ErrCodeHTTPStatus
	Cause  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Code)
	if e.Status != 0 {
		msg += fmt.Sprintf(" %d", e.Status)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(op string, code ErrorCode, cause error) *Error {
	return &Error{Code: code, Op: op, Cause: cause}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code from err, or "" when err is not a store error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
