package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrNoSymbols      = errors.New("no symbols provided")
	ErrTooManySymbols = errors.New("too many symbols")
)

// ValidationError is a client-input failure, reported as HTTP 400.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func NewValidationError(reason error) *ValidationError {
	return &ValidationError{Reason: reason}
}

// ProviderError is any upstream quote-lookup failure. Network errors,
// unknown symbols and provider timeouts are all one kind at this layer;
// no caller distinguishes them.
type ProviderError struct {
	Symbol string
	Cause  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("quote lookup failed for %s: %v", e.Symbol, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

func NewProviderError(symbol string, cause error) *ProviderError {
	return &ProviderError{Symbol: symbol, Cause: cause}
}
