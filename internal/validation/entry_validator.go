package validation

import (
	"punchcard/internal/domain"
)

// EntryValidator provides validation for log entries before they are persisted
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntry validates a domain.Entry object
func (ev *EntryValidator) ValidateEntry(entry domain.Entry) error {
	validationError := NewValidationError()

	if !entry.Kind.IsValid() {
		validationError.AddInvalidValueError("entry_type", string(entry.Kind), `must be "in" or "out"`)
	}

	if entry.Timestamp.IsZero() {
		validationError.AddRequiredError("timestamp")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
