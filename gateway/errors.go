package gateway

import "payment-gateway/gateway/models"

// ValidationError rejects a malformed payment request before anything is
// sent to the bank or persisted. It is expected caller input trouble, not a
// server-side fault.
type ValidationError struct {
	Result models.ValidationResult
}

func (e *ValidationError) Error() string {
	return e.Result.Message()
}

// ProcessingError is the uniform failure raised by the payment workflow
// around any lower-layer error. The original cause's message is preserved
// verbatim.
type ProcessingError struct {
	cause error
}

func NewProcessingError(cause error) *ProcessingError {
	return &ProcessingError{cause: cause}
}

func (e *ProcessingError) Error() string {
	return e.cause.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.cause
}
