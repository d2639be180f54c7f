package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidDirectionError creates an error for a duration string too empty
// to carry a direction
func NewInvalidDirectionError(input string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("Invalid direction: %s", input),
		Code:    "INVALID_DIRECTION",
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewBothDirectionsError creates an error for a duration string that carries
// both direction markers
func NewBothDirectionsError(input string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: "Both forward and backward directions specified",
		Code:    "BOTH_DIRECTIONS",
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewInvalidDurationError creates an error for an unparseable duration magnitude
func NewInvalidDurationError(input string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("Invalid duration: %s", input),
		Code:    "INVALID_DURATION",
		Cause:   cause,
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewOutOfRangeError creates an error for a duration that overflows the
// representable range
func NewOutOfRangeError(input string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("Out of range: %s", input),
		Code:    "DURATION_OUT_OF_RANGE",
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewInvalidMonthNumberError creates an error for a month number outside 1-12
func NewInvalidMonthNumberError(num int) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("Month %d is not a valid month number", num),
		Code:    "INVALID_MONTH_NUMBER",
		Context: map[string]interface{}{
			"number": num,
		},
	}
}

// NewUnknownMonthError creates an error for an unrecognized month selector
func NewUnknownMonthError(input string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("Unknown month %s. Expected a month number, name, or 'current', 'previous', or 'next'", input),
		Code:    "UNKNOWN_MONTH",
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewZeroQuantityError creates an error for a quantity of zero
func NewZeroQuantityError() *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: "Quantity cannot be zero",
		Code:    "ZERO_QUANTITY",
		Context: make(map[string]interface{}),
	}
}

// NewUnknownQuantityError creates an error for an unrecognized quantity value
func NewUnknownQuantityError(input string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: `Unknown value. Must be a positive integer or "all"`,
		Code:    "UNKNOWN_QUANTITY",
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewContinuityError creates an error for an entry that would land before an
// existing one
func NewContinuityError(givenTime time.Time, nextEntry time.Time) *AppError {
	return &AppError{
		Type: ErrorTypeContinuity,
		Message: fmt.Sprintf(
			"Adding this entry would violate continuity! There is an entry after the given time.\nTime given: %s\nNext entry: %s",
			givenTime.Format(time.RFC3339Nano),
			nextEntry.Format(time.RFC3339Nano),
		),
		Code: "CONTINUITY_VIOLATION",
		Context: map[string]interface{}{
			"given_time": givenTime,
			"next_entry": nextEntry,
		},
	}
}

// NewAlreadyClockedError creates an error for a clock entry matching the
// currently active kind
func NewAlreadyClockedError(kind string) *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyClocked,
		Message: fmt.Sprintf("Already clocked %s", kind),
		Code:    "ALREADY_CLOCKED",
		Context: map[string]interface{}{
			"kind": kind,
		},
	}
}

// NewLogNotEmptyError creates an error for test-data generation against a
// log that already has entries
func NewLogNotEmptyError(path string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf("The event log at %s already contains entries. Generation only runs against an empty or missing log.", path),
		Code:    "LOG_NOT_EMPTY",
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// MalformedRecord describes a single unreadable line in the event log
type MalformedRecord struct {
	Line   int
	Raw    string
	Reason string
}

// String returns the display form of the malformed record
func (r MalformedRecord) String() string {
	return fmt.Sprintf("line %d: %q (%s)", r.Line, r.Raw, r.Reason)
}

// NewMalformedLogError creates an error carrying every malformed line found
// in the event log
func NewMalformedLogError(path string, records []MalformedRecord) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedLog,
		Message: "There are malformed entries in the CSV file. Please fix them manually and try again.",
		Code:    "MALFORMED_LOG",
		Context: map[string]interface{}{
			"path":    path,
			"records": records,
		},
	}
}

// MalformedRecords extracts the malformed line details from a malformed log
// error, if present
func MalformedRecords(err error) ([]MalformedRecord, bool) {
	appErr, ok := AsAppError(err)
	if !ok || !appErr.IsType(ErrorTypeMalformedLog) {
		return nil, false
	}
	value, exists := appErr.GetContext("records")
	if !exists {
		return nil, false
	}
	records, ok := value.([]MalformedRecord)
	return records, ok
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewIOError creates a new file system error
func NewIOError(operation string, path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("file operation failed: %s %s", operation, path),
		Code:    "IO_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
			"path":      path,
		},
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(field string, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: fmt.Sprintf("invalid configuration for %s: %s", field, message),
		Code:    "CONFIG_INVALID",
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    "INTERNAL_ERROR",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeParse:
			return appErr.Message
		case ErrorTypeContinuity:
			return appErr.Message
		case ErrorTypeAlreadyClocked:
			return appErr.Message
		case ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeConfig:
			return appErr.Message
		case ErrorTypeMalformedLog:
			var sb strings.Builder
			sb.WriteString(appErr.Message)
			if records, ok := MalformedRecords(appErr); ok {
				for _, record := range records {
					sb.WriteString("\n  ")
					sb.WriteString(record.String())
				}
			}
			return sb.String()
		case ErrorTypeIO:
			return "A file system error occurred. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeParse, ErrorTypeContinuity,
			ErrorTypeAlreadyClocked, ErrorTypeMalformedLog, ErrorTypeNotFound:
			return false // These are user errors, not system errors
		case ErrorTypeIO, ErrorTypeConfig, ErrorTypeInternal:
			return true // These are system errors that should be logged
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
