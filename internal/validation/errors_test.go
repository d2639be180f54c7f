package validation

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "count", Message: "is required"}}, "validation error for field 'count': is required"},
		{"Multiple errors", []FieldError{
			{Field: "count", Message: "is required"},
			{Field: "entry_type", Message: "must be valid"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else {
				if result != tt.expectError {
					t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
				}
			}
		})
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Error("new ValidationError should not have errors")
	}

	ve.AddRequiredError("count")
	if !ve.HasErrors() {
		t.Error("ValidationError should have errors after AddRequiredError")
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	tests := []struct {
		name          string
		add           func(ve *ValidationError)
		expectType    ValidationErrorType
		expectMessage string
	}{
		{
			name:          "Required",
			add:           func(ve *ValidationError) { ve.AddRequiredError("timestamp") },
			expectType:    ErrorTypeRequired,
			expectMessage: "timestamp is required",
		},
		{
			name:          "Invalid format",
			add:           func(ve *ValidationError) { ve.AddInvalidFormatError("offset", "5x", "in 5m, 2h ago") },
			expectType:    ErrorTypeInvalidFormat,
			expectMessage: "offset has invalid format, expected: in 5m, 2h ago",
		},
		{
			name:          "Invalid value",
			add:           func(ve *ValidationError) { ve.AddInvalidValueError("count", -1, "must be a positive integer") },
			expectType:    ErrorTypeInvalidValue,
			expectMessage: "count has invalid value: must be a positive integer",
		},
		{
			name:          "Invalid range",
			add:           func(ve *ValidationError) { ve.AddInvalidRangeError("month", 13, "must be between 1 and 12") },
			expectType:    ErrorTypeInvalidRange,
			expectMessage: "month has invalid range: must be between 1 and 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			tt.add(ve)

			if len(ve.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d", len(ve.Errors))
			}
			if ve.Errors[0].Type != tt.expectType {
				t.Errorf("error type = %v, expected %v", ve.Errors[0].Type, tt.expectType)
			}
			if ve.Errors[0].Message != tt.expectMessage {
				t.Errorf("error message = %q, expected %q", ve.Errors[0].Message, tt.expectMessage)
			}
		})
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("count")
	ve.AddInvalidValueError("count", 0, "must be a positive integer")
	ve.AddRequiredError("timestamp")

	countErrors := ve.GetFieldErrors("count")
	if len(countErrors) != 2 {
		t.Errorf("expected 2 errors for 'count', got %d", len(countErrors))
	}

	missing := ve.GetFieldErrors("nonexistent")
	if len(missing) != 0 {
		t.Errorf("expected 0 errors for unknown field, got %d", len(missing))
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *ValidationError
		expected string
	}{
		{
			name:     "No errors",
			build:    NewValidationError,
			expected: "Input validation failed",
		},
		{
			name: "Single error",
			build: func() *ValidationError {
				ve := NewValidationError()
				ve.AddRequiredError("count")
				return ve
			},
			expected: "count is required",
		},
		{
			name: "Multiple errors",
			build: func() *ValidationError {
				ve := NewValidationError()
				ve.AddRequiredError("count")
				ve.AddRequiredError("timestamp")
				return ve
			},
			expected: "Multiple validation errors occurred:\n- count is required\n- timestamp is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.build().GetUserFriendlyMessage()
			if result != tt.expected {
				t.Errorf("GetUserFriendlyMessage() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	if !IsValidationError(ve) {
		t.Error("IsValidationError should return true for *ValidationError")
	}

	if IsValidationError(nil) {
		t.Error("IsValidationError should return false for nil")
	}
}
