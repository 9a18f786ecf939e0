package services

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Every kind is terminal for the invocation.
type Kind int

const (
	UnknownError Kind = iota
	ValidationError
	ConfigError
	UpstreamFetchError
	StoreError
)

func (k Kind) String() string {
	switch k {
	case ValidationError:
		return "ValidationError"
	case ConfigError:
		return "ConfigError"
	case UpstreamFetchError:
		return "UpstreamFetchError"
	case StoreError:
		return "StoreError"
	default:
		return "UnknownError"
	}
}

func (k Kind) Status() StatusCode {
	if k == ValidationError {
		return StatusBadRequest
	}
	return StatusInternalServerError
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns UnknownError for errors not raised by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownError
}

// recoverInto turns a panic in a handler into an UnknownError response.
func recoverInto(resp *Response, render func(error) Response) {
	if r := recover(); r != nil {
		*resp = render(newError(UnknownError, "", fmt.Errorf("%v", r)))
	}
}
