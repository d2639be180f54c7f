package validation

import (
	"strings"
)

// ReportValidator provides validation for report output options
type ReportValidator struct {
	validator *Validator
}

// NewReportValidator creates a new report validator
func NewReportValidator() *ReportValidator {
	return &ReportValidator{
		validator: NewValidator(),
	}
}

// ValidateOutputPath validates a CSV export destination. The special path "-"
// selects standard output.
func (rv *ReportValidator) ValidateOutputPath(path string) error {
	validationError := NewValidationError()

	trimmed := rv.validator.TrimAndValidateString(path)
	if !rv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("output path")
		return validationError
	}

	if rv.validator.IsStdoutPath(trimmed) {
		return nil
	}

	if strings.HasSuffix(trimmed, "/") {
		validationError.AddInvalidValueError("output path", path, "must name a file, not a directory")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
