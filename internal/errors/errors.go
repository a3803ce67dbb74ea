package errors

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

type Error struct {
	Code  ErrorCode
	msg   string
	frame xerrors.Frame
	err   error
}

func (e *Error) Error() string {
	return fmt.Sprint(e)
}

func (e *Error) FormatError(p xerrors.Printer) (next error) {
	if e.msg == "" {
		p.Printf("Code: %v", e.Code)
	} else {
		p.Printf("%s", e.msg)
	}
	e.frame.Format(p)
	return e.err
}

func (e *Error) Format(s fmt.State, c rune) {
	xerrors.FormatError(e, s, c)
}

// Unwrap returns the error underlying the receiver, which may be nil.
func (e *Error) Unwrap() error {
	return e.err
}

func new(c ErrorCode, err error, callDepth int, msg string) *Error {
	return &Error{
		Code:  c,
		msg:   msg,
		frame: xerrors.Caller(callDepth),
		err:   err,
	}
}

// New returns a new error with the given code, underlying error and message.
// Pass 1 for the call depth if New is called from the function raising the
// error; pass 2 if it is called from a helper function; and so on.
func New(c ErrorCode, err error, callDepth int, msg string) *Error {
	return new(c, err, callDepth, msg)
}

// Newf uses format and args to format a message, then calls New.
func Newf(c ErrorCode, err error, format string, args ...any) *Error {
	return new(c, err, 2, fmt.Sprintf(format, args...))
}

// Wrapf detects the underlying error code, uses format and args to format a
// message, then calls New.
func Wrapf(err error, format string, args ...any) *Error {
	return new(Code(err), err, 2, fmt.Sprintf(format, args...))
}

func Code(err error) ErrorCode {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if errors.Is(err, context.Canceled) {
		return Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return DeadlineExceeded
	}
	return Unknown
}

// An ErrorCode describes the error's category.
type ErrorCode int

func (i ErrorCode) String() string {
	switch i {
	case InvalidConfig:
		return "InvalidConfig"
	case Render:
		return "Render"
	case NotFound:
		return "NotFound"
	case Notify:
		return "Notify"
	case Internal:
		return "Internal"
	case Canceled:
		return "Canceled"
	case DeadlineExceeded:
		return "DeadlineExceeded"
	}
	return "Unknown"
}

const (
	// OK Returned by the Code function on a nil error. It is not a valid
	// code for an error.
	OK ErrorCode = 0

	// Unknown The error could not be categorized.
	Unknown ErrorCode = 1

	// InvalidConfig The config file is malformed or violates an invariant.
	// Fatal: aborts the run before any check.
	InvalidConfig ErrorCode = 2

	// Render The page could not be loaded or evaluated. Consumed by the
	// retry loop as a failed attempt.
	Render ErrorCode = 3

	// NotFound The page rendered but the expected text is absent.
	NotFound ErrorCode = 4

	// Notify The alert could not be delivered. Reported, never fatal.
	Notify ErrorCode = 5

	// Internal Something unexpected happened. Internal errors always indicate bugs.
	Internal ErrorCode = 6

	// Canceled The operation was canceled.
	Canceled ErrorCode = 7

	// DeadlineExceeded The operation timed out.
	DeadlineExceeded ErrorCode = 8
)
