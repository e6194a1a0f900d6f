package booking

import (
	"errors"
	"fmt"
)

// Pricing and lifecycle reason codes.
const (
	CodeUnknownService      = "UNKNOWN_SERVICE"
	CodeUnsupportedDuration = "UNSUPPORTED_DURATION"
	CodeInvalidTransition   = "INVALID_TRANSITION"
)

// Sentinel errors surfaced to the request boundary.
var (
	ErrNotFound  = errors.New("booking not found")
	ErrForbidden = errors.New("access denied")
)

// PricingError is a coded rejection from the price table.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewPricingError builds a PricingError with the given code and message.
func NewPricingError(code, msg string) error {
	return &PricingError{Code: code, Message: msg}
}

// AsPricing unwraps err into a PricingError, or returns nil.
func AsPricing(err error) *PricingError {
	var pe *PricingError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}

// LifecycleError is a rejected booking state transition.
type LifecycleError struct {
	Code    string
	Message string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewLifecycleError builds a LifecycleError with the given message.
func NewLifecycleError(msg string) error {
	return &LifecycleError{Code: CodeInvalidTransition, Message: msg}
}

// AsLifecycle unwraps err into a LifecycleError, or returns nil.
func AsLifecycle(err error) *LifecycleError {
	var le *LifecycleError
	if errors.As(err, &le) {
		return le
	}
	return nil
}
