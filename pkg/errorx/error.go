package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string

	cause error
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Wrap returns an Error which keeps err as its cause. The message is shown to
// callers, the cause is only reachable through errors.Unwrap.
func Wrap(err error, code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...), cause: err}
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an Error with the same code, so that
// errors.Is(err, errorx.New(errorx.NotImplemented, "")) matches any message.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Code == code
}
