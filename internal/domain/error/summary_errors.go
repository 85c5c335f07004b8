// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Monthly summary domain errors.
var (
	// ErrSummaryConflict is returned by the persistence layer when an insert
	// hits the (user_id, month) uniqueness constraint. The aggregator recovers
	// from it by updating the existing row; it is never surfaced to callers.
	ErrSummaryConflict = errors.New("monthly summary already exists for user and month")
)

// SummaryErrorCode defines error codes for monthly summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Conflict errors (03XXXX)
	ErrCodeSummaryConflict SummaryErrorCode = "SUM-030001"

	// Batch errors (04XXXX)
	ErrCodeSummaryBatchPartial SummaryErrorCode = "SUM-040001"
)

// SummaryError represents a monthly summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
