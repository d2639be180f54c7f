package validation

// GenerateValidator provides validation for test-data generation options
type GenerateValidator struct {
	validator *Validator
}

// NewGenerateValidator creates a new generate validator
func NewGenerateValidator() *GenerateValidator {
	return &GenerateValidator{
		validator: NewValidator(),
	}
}

// ValidateCount validates the number of entries to generate
func (gv *GenerateValidator) ValidateCount(count int) error {
	if !gv.validator.IsPositiveCount(count) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("count", count, "must be a positive integer")
		return validationError
	}
	return nil
}
