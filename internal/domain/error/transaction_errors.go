// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the
	// system or does not belong to the requesting user. The two cases are never
	// distinguished so that ownership is not leaked.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrCategoryNotFoundForTransaction is returned when the specified category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrInvalidFilterValue is returned when a filter parameter is malformed.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrInvalidOrdering is returned when the ordering parameter is not in the declared set.
	ErrInvalidOrdering = errors.New("invalid ordering")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidFilterValue       TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidOrdering          TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"

	// Not-found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Field   string // Offending field for validation errors, empty otherwise
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewTransactionValidationError creates a TransactionError that names the offending field.
func NewTransactionValidationError(code TransactionErrorCode, field, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
