package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure Errors - errors related to storage and the weather provider
	ErrorTypeDatabase
	ErrorTypeProviderUnavailable
	ErrorTypeProviderTimeout
	ErrorTypeMalformedPayload

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeDatabase:
		return "STORAGE_FAILURE"
	case ErrorTypeProviderUnavailable:
		return "PROVIDER_UNAVAILABLE"
	case ErrorTypeProviderTimeout:
		return "PROVIDER_TIMEOUT"
	case ErrorTypeMalformedPayload:
		return "MALFORMED_PROVIDER_PAYLOAD"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the codebase
const (
	ValidationError          = ErrorTypeValidation
	NotFoundError            = ErrorTypeNotFound
	DatabaseError            = ErrorTypeDatabase
	ProviderUnavailableError = ErrorTypeProviderUnavailable
	ProviderTimeoutError     = ErrorTypeProviderTimeout
	MalformedPayloadError    = ErrorTypeMalformedPayload
	ConfigurationError       = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewNoSuchDiaryForDateError reports that no diary entry exists for the given day.
func NewNoSuchDiaryForDateError(date string) *AppError {
	return New(NotFoundError, "no diary entry exists for date "+date)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewProviderUnavailableError(message string, cause error) *AppError {
	return Wrap(ProviderUnavailableError, message, cause)
}

func NewProviderTimeoutError(message string, cause error) *AppError {
	return Wrap(ProviderTimeoutError, message, cause)
}

func NewMalformedPayloadError(message string, cause error) *AppError {
	return Wrap(MalformedPayloadError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}

// IsProviderError reports whether err originates from the weather provider.
func IsProviderError(err error) bool {
	switch TypeOf(err) {
	case ProviderUnavailableError, ProviderTimeoutError, MalformedPayloadError:
		return true
	default:
		return false
	}
}
