package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeInvalidField is used when an edit names a field that does not exist
	ErrCodeInvalidField = "ERR_INVALID_FIELD"
	// ErrCodeInvalidCurrency is used when a currency code is outside the catalog
	ErrCodeInvalidCurrency = "ERR_INVALID_CURRENCY"
)

// Access error codes
const (
	// ErrCodeForbidden is used when the client may not reach a resource
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeSessionNotFound is used when an editing session is unknown or expired
	ErrCodeSessionNotFound = "ERR_SESSION_NOT_FOUND"
	// ErrCodeItemNotFound is used when a line item id is not in the order
	ErrCodeItemNotFound = "ERR_ITEM_NOT_FOUND"
	// ErrCodeSessionLimit is used when no more editing sessions can be opened
	ErrCodeSessionLimit = "ERR_SESSION_LIMIT"
)

// Business rule error codes
const (
	// ErrCodeConfirmationRequired is used when a destructive edit was not confirmed
	ErrCodeConfirmationRequired = "ERR_CONFIRMATION_REQUIRED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when a client exceeds its request budget
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeInvalidField:       http.StatusBadRequest,
	ErrCodeInvalidCurrency:    http.StatusBadRequest,

	// Access errors
	ErrCodeForbidden: http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeSessionNotFound: http.StatusNotFound,
	ErrCodeItemNotFound:    http.StatusNotFound,
	ErrCodeSessionLimit:    http.StatusServiceUnavailable,

	// Unconfirmed destructive edits -> 428 Precondition Required
	ErrCodeConfirmationRequired: http.StatusPreconditionRequired,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"FORBIDDEN":             ErrCodeForbidden,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"INVALID_FIELD":         ErrCodeInvalidField,
	"INVALID_CURRENCY":      ErrCodeInvalidCurrency,
	"ITEM_NOT_FOUND":        ErrCodeItemNotFound,
	"SESSION_NOT_FOUND":     ErrCodeSessionNotFound,
	"SESSION_LIMIT":         ErrCodeSessionLimit,
	"CONFIRMATION_REQUIRED": ErrCodeConfirmationRequired,
	"VALIDATION_ERROR":      ErrCodeValidation,
	"BAD_REQUEST":           ErrCodeBadRequest,
	"INTERNAL_ERROR":        ErrCodeInternal,
	"RATE_LIMIT_EXCEEDED":   ErrCodeRateLimited,
}

// NormalizeErrorCode converts a domain error code to the API format
// If the code is already in the API format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
