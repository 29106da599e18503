package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is works against the sentinel values below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes shared by the purchasing domain and the interfaces that expose it.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeInvalidField         = "INVALID_FIELD"
	CodeInvalidCurrency      = "INVALID_CURRENCY"
	CodeItemNotFound         = "ITEM_NOT_FOUND"
	CodeSessionNotFound      = "SESSION_NOT_FOUND"
	CodeSessionLimit         = "SESSION_LIMIT"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
)

// Common domain errors
var (
	ErrNotFound             = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput         = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrItemNotFound         = NewDomainError(CodeItemNotFound, "Line item not found")
	ErrSessionNotFound      = NewDomainError(CodeSessionNotFound, "Editing session not found or expired")
	ErrSessionLimit         = NewDomainError(CodeSessionLimit, "Too many active editing sessions")
	ErrConfirmationRequired = NewDomainError(CodeConfirmationRequired, "Operation requires confirmation")
)
