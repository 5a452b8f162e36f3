package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"feline-fascination/internal/domain"
	"feline-fascination/internal/util"
)

const (
	maxChoiceLength    = 200
	maxBreedNameLength = 50
)

var validBreedName = regexp.MustCompile(`^[\p{L} '-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID validates a quiz session path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateSelectOptionRequest checks the shape of a choice. Whether the
// choice belongs to the current question is decided by the quiz engine.
func (v *Validator) ValidateSelectOptionRequest(choice string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(choice) == "" {
		errors = append(errors, domain.NewMissingFieldError("choice"))
	} else if n := utf8.RuneCountInString(choice); n > maxChoiceLength {
		errors = append(errors, domain.NewOutOfRangeError("choice", n, 1, maxChoiceLength))
	}

	return errors
}

// ValidateBreedName validates a breed path parameter
func (v *Validator) ValidateBreedName(name string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
		return errors
	}
	if len(name) > maxBreedNameLength || !validBreedName.MatchString(name) {
		errors = append(errors, domain.NewInvalidFormatError("name", name))
	}

	return errors
}
