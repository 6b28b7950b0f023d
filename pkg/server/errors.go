package server

import (
	"errors"
	"fmt"
)

// ErrorCode. kategori error yang dipakai transport layer (rest, commands) buat nentuin response.
type ErrorCode uint

const (
	ErrUnknown ErrorCode = iota
	ErrInternalServerError
	ErrNotFound
	ErrBadParamInput
	ErrConflict
	ErrUnprocessable
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInternalServerError:
		return "internal server error"
	case ErrNotFound:
		return "not found"
	case ErrBadParamInput:
		return "bad param input"
	case ErrConflict:
		return "conflict"
	case ErrUnprocessable:
		return "unprocessable"
	default:
		return "unknown"
	}
}

type Error struct {
	orig error
	msg  string
	code ErrorCode
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() ErrorCode {
	return e.code
}

// Message. message tanpa error asal nya.
func (e *Error) Message() string {
	return e.msg
}

func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

// CodeOf. return ErrorCode dari error paling luar yang punya code, ErrUnknown kalau gak ada.
func CodeOf(err error) ErrorCode {
	var ierr *Error
	if errors.As(err, &ierr) {
		return ierr.Code()
	}
	return ErrUnknown
}
