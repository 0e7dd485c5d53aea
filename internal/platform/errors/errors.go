// Package errors carries coded errors from the filter core out to the wire.
//
// Import it as perr so it never shadows the standard library package.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// Code classifies an error for clients. Values are part of the wire format
type Code uint16

const (
	// CodeUnknown is anything we did not classify
	CodeUnknown Code = iota

	// CodePanic is a recovered panic
	CodePanic

	// CodeUnavailable is a dependency that is down or still starting
	CodeUnavailable

	// CodeInvalidArgument is a request the filter refused
	CodeInvalidArgument

	// CodeValidation is a body that failed struct validation
	CodeValidation

	// CodeJSON is a body that did not decode
	CodeJSON

	// CodeNotFound is a missing resource
	CodeNotFound

	// CodeConflict is a concurrent or duplicate write
	CodeConflict

	// CodeDB is a storage failure
	CodeDB
)

var codeNames = [...]string{
	CodeUnknown:         "unknown",
	CodePanic:           "panic",
	CodeUnavailable:     "unavailable",
	CodeInvalidArgument: "invalid_argument",
	CodeValidation:      "validation",
	CodeJSON:            "json",
	CodeNotFound:        "not_found",
	CodeConflict:        "conflict",
	CodeDB:              "db",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// Status maps a Code to an http status
func (c Code) Status() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case CodeValidation, CodeJSON:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a coded error with an optional field and cause
type Error struct {
	cause error
	msg   string
	field string
	code  Code
}

// Wire is the body we send for failed requests
type Wire struct {
	Code    Code   `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Code returns the classification
func (e *Error) Code() Code { return e.code }

// Field names the request field at fault, if any
func (e *Error) Field() string { return e.field }

// Wire renders the client payload; the cause stays server side
func (e *Error) Wire() Wire {
	return Wire{Code: e.code, Kind: e.code.String(), Message: e.msg, Field: e.field}
}

// New returns a coded error
func New(code Code, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code Code, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches a code and message to cause. A nil cause stays nil
func Wrap(cause error, code Code, msg string) error {
	if cause == nil {
		return nil
	}
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf is Wrap with formatting
func Wrapf(cause error, code Code, format string, a ...any) error {
	if cause == nil {
		return nil
	}
	return &Error{code: code, msg: fmt.Sprintf(format, a...), cause: cause}
}

// As returns the outermost *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of err, CodeUnknown for foreign errors
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// Is reports whether err carries code
func Is(err error, code Code) bool { return err != nil && CodeOf(err) == code }

// WithField returns a copy of err naming field. Foreign errors are wrapped as unknown
func WithField(err error, field string) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return &Error{code: CodeUnknown, msg: err.Error(), field: field, cause: err}
}

// Root walks Unwrap to the innermost cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// HTTP returns the status and wire body for err
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	if e, ok := As(err); ok {
		return e.code.Status(), e.Wire()
	}
	return http.StatusInternalServerError, Wire{Code: CodeUnknown, Kind: CodeUnknown.String(), Message: "internal error"}
}

// InvalidArgf returns a CodeInvalidArgument error
func InvalidArgf(format string, a ...any) error { return Newf(CodeInvalidArgument, format, a...) }

// NotFoundf returns a CodeNotFound error
func NotFoundf(format string, a ...any) error { return Newf(CodeNotFound, format, a...) }

// Unavailablef returns a CodeUnavailable error
func Unavailablef(format string, a ...any) error { return Newf(CodeUnavailable, format, a...) }

// JSONf returns a CodeJSON error
func JSONf(format string, a ...any) error { return Newf(CodeJSON, format, a...) }

// Panicf returns a CodePanic error
func Panicf(format string, a ...any) error { return Newf(CodePanic, format, a...) }
