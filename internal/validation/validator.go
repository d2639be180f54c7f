package validation

import (
	"strings"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsPositiveCount checks if a count is a positive integer
func (v *Validator) IsPositiveCount(n int) bool {
	return n > 0
}

// IsStdoutPath checks if a path names standard output
func (v *Validator) IsStdoutPath(path string) bool {
	return path == "-"
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
