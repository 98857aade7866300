package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// BizError is a business error carrying a service error code. The HTTP layer
// maps codes to statuses and renders the message as the response detail.
type BizError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *BizError) Error() string {
	return fmt.Sprintf("BizError: code=%d, message=%s", e.Code, e.Message)
}

// GetCode returns the error code.
func (e *BizError) GetCode() int {
	return e.Code
}

// GetMessage returns the error message.
func (e *BizError) GetMessage() string {
	return e.Message
}

// New creates a business error with the code's default message.
func New(code int) *BizError {
	return &BizError{
		Code:    code,
		Message: GetMessage(code),
	}
}

// NewWithMessage creates a business error with a custom message.
func NewWithMessage(code int, message string) *BizError {
	return &BizError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a business error whose message carries err as context.
func Wrap(code int, err error) *BizError {
	if err == nil {
		return New(code)
	}
	return &BizError{
		Code:    code,
		Message: fmt.Sprintf("%s: %v", GetMessage(code), err),
	}
}

// Is reports whether err is a BizError with the given code.
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr.Code == code
	}
	return false
}

// FromError converts an error into a BizError:
//  1. *BizError (possibly wrapped with errors.Wrap): returned as-is
//  2. anything else: internal error, details hidden from the client
func FromError(err error) *BizError {
	if err == nil {
		return nil
	}
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr
	}
	return New(CodeInternalError)
}

// ============ Shortcuts ============

// ErrInternalError internal server error
func ErrInternalError() *BizError {
	return New(CodeInternalError)
}

// ErrInvalidParams request validation error
func ErrInvalidParams(msg string) *BizError {
	if msg == "" {
		return New(CodeInvalidParams)
	}
	return NewWithMessage(CodeInvalidParams, msg)
}

// ErrActivityNotFound referenced activity is not in the registry
func ErrActivityNotFound() *BizError {
	return New(CodeActivityNotFound)
}

// ErrAlreadySignedUp email already in the activity's participant list
func ErrAlreadySignedUp() *BizError {
	return New(CodeAlreadySignedUp)
}

// ErrNotRegistered email not in the activity's participant list
func ErrNotRegistered() *BizError {
	return New(CodeNotRegistered)
}
