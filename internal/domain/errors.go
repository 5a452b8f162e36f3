package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Catalog errors
	CodeEmptyCatalog    ErrorCode = "EMPTY_CATALOG"
	CodeInvalidQuestion ErrorCode = "INVALID_QUESTION"

	// Quiz errors
	CodeUnknownOption   ErrorCode = "UNKNOWN_OPTION"
	CodeNoSelection     ErrorCode = "NO_SELECTION"
	CodeQuizComplete    ErrorCode = "QUIZ_COMPLETE"
	CodeInvalidState    ErrorCode = "INVALID_QUIZ_STATE"
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"

	CodeBreedNotFound ErrorCode = "BREED_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithContext attaches a detail to the error and returns it.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err carries a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewEmptyCatalogError(what string) *DomainError {
	return NewError(CodeEmptyCatalog, fmt.Sprintf("%s list must not be empty", what), nil)
}

func NewInvalidQuestionError(index int, reason string) *DomainError {
	return NewError(CodeInvalidQuestion, fmt.Sprintf("question %d: %s", index, reason), nil).
		WithContext("index", index)
}

func NewUnknownOptionError(choice string) *DomainError {
	return NewError(CodeUnknownOption, fmt.Sprintf("%q is not an option of the current question", choice), nil).
		WithContext("choice", choice)
}

func NewNoSelectionError() *DomainError {
	return NewError(CodeNoSelection, "an option must be selected before confirming", nil)
}

func NewQuizCompleteError() *DomainError {
	return NewError(CodeQuizComplete, "quiz is already complete", nil)
}

func NewInvalidStateError(message string) *DomainError {
	return NewError(CodeInvalidState, message, nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("quiz session not found: %s", sessionID), nil).
		WithContext("session_id", sessionID)
}

func NewBreedNotFoundError(name string) *DomainError {
	return NewError(CodeBreedNotFound, fmt.Sprintf("breed not found: %s", name), nil)
}
