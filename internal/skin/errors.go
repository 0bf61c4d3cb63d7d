package skin

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure categories of hint lookups and edits.
type ErrorCode string

const (
	ErrCodeHintNotFound        ErrorCode = "HINT_NOT_FOUND"
	ErrCodeUnknownControl      ErrorCode = "UNKNOWN_CONTROL"
	ErrCodeCircularInheritance ErrorCode = "CIRCULAR_INHERITANCE"
	ErrCodeInvalidHint         ErrorCode = "INVALID_HINT"
	ErrCodeTypeMismatch        ErrorCode = "TYPE_MISMATCH"
)

// SkinError is a typed error enriched with the aspect or control involved.
type SkinError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Sentinels for errors.Is. Returned errors carry the same code and message
// plus context.
var (
	ErrHintNotFound        = &SkinError{Code: ErrCodeHintNotFound, Message: "no hint matches aspect"}
	ErrUnknownControl      = &SkinError{Code: ErrCodeUnknownControl, Message: "unknown control"}
	ErrCircularInheritance = &SkinError{Code: ErrCodeCircularInheritance, Message: "circular control inheritance"}
	ErrInvalidHint         = &SkinError{Code: ErrCodeInvalidHint, Message: "invalid hint value"}
	ErrTypeMismatch        = &SkinError{Code: ErrCodeTypeMismatch, Message: "hint holds a different kind"}
)

// Error implements the error interface.
func (e *SkinError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *SkinError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another SkinError with the same code and message.
func (e *SkinError) Is(target error) bool {
	var skinErr *SkinError
	if !errors.As(target, &skinErr) {
		return false
	}
	return e.Code == skinErr.Code && e.Message == skinErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *SkinError) WithContext(ctx map[string]interface{}) *SkinError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &SkinError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// withCause clones the error wrapping cause.
func (e *SkinError) withCause(cause error) *SkinError {
	clone := e.WithContext(nil)
	clone.Cause = cause
	return clone
}
