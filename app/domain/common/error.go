package common

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidArgument     = errors.New("invalid argument")
)

const (
	CodeNotFound            = "not_found"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeInvalidArgument     = "invalid_argument"
)

// Error represents a standardized error with code and message
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// NewError creates a new Error instance
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewNotFoundError(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Err: ErrNotFound}
}

func NewUpstreamUnavailableError(message string) *Error {
	return &Error{Code: CodeUpstreamUnavailable, Message: message, Err: ErrUpstreamUnavailable}
}

func NewInvalidArgumentError(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message, Err: ErrInvalidArgument}
}

// IsEmpty checks if the error is empty (no error)
func (e *Error) IsEmpty() bool {
	return e == nil || e.Code == ""
}

// String returns the string representation of the error
func (e *Error) String() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EmptyError represents an empty error (no error occurred)
var EmptyError = &Error{}
