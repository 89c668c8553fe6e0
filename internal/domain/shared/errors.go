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

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrEmptyCart           = NewDomainError("EMPTY_CART", "Cart has no lines to check out")
	ErrInvalidSaleIndex    = NewDomainError("INVALID_SALE_INDEX", "Sale index is out of range")
	ErrAlreadyRefunded     = NewDomainError("ALREADY_REFUNDED", "Sale has already been refunded")
	ErrInvalidUnlockCode   = NewDomainError("INVALID_UNLOCK_CODE", "Unlock code is not recognized")
	ErrLicenseFileNotFound = NewDomainError("LICENSE_FILE_NOT_FOUND", "License file does not exist")
	ErrNoValidCodes        = NewDomainError("NO_VALID_CODES", "License file contains no valid codes")
)
