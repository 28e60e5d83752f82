package apperr

import (
	"errors"
	"fmt"
)

// Kind groups codes into the classes callers branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindInfrastructure
	KindBusiness
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInfrastructure:
		return "infrastructure"
	case KindBusiness:
		return "business"
	default:
		return "unknown"
	}
}

// Error is the typed failure that crosses adapter and orchestrator boundaries.
// Message is what goes on the wire next to Code.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an error whose message is the code's base message followed by detail.
func New(code Code, detail string) *Error {
	msg := code.BaseMessage()
	if detail != "" {
		msg = msg + ": " + detail
	}
	return &Error{Kind: code.Kind(), Code: code, Message: msg}
}

// WithMessage builds an error that carries msg verbatim instead of the base message.
func WithMessage(code Code, msg string) *Error {
	return &Error{Kind: code.Kind(), Code: code, Message: msg}
}

// Wrap attaches code to err using err's text as the detail.
// An err that already carries a typed Error is returned unchanged.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	e := New(code, err.Error())
	e.Err = err
	return e
}

// Wrapf is Wrap with a step description prepended to the detail.
func Wrapf(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	e := New(code, fmt.Sprintf(format, args...)+": "+err.Error())
	e.Err = err
	return e
}

// AccountNotFound is the NotFound error for an unknown wallet address.
func AccountNotFound(address string) *Error {
	return WithMessage(CodeAccountNotFound, "Account not found: "+address)
}

// From classifies any error. Untyped errors become UNKNOWN_ERROR with their raw text.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return &Error{Kind: KindUnknown, Code: CodeUnknown, Message: err.Error(), Err: err}
}

// CodeOf returns the code carried by err, or CodeUnknown.
func CodeOf(err error) Code {
	if e := From(err); e != nil {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var typed *Error
	return errors.As(err, &typed) && typed.Code == code
}
