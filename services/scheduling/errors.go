package scheduling

import (
	"errors"
	"fmt"
)

// Conflict reason codes. Each maps to a distinct client-facing message so
// callers can tell "already booked" from "outside hours".
const (
	CodeHolidayConflict      = "HOLIDAY_CONFLICT"
	CodeDayClosed            = "DAY_CLOSED"
	CodeOutsideBusinessHours = "OUTSIDE_BUSINESS_HOURS"
	CodeUnavailableBlock     = "UNAVAILABLE_BLOCK"
	CodeSlotTaken            = "SLOT_TAKEN"
)

// ConflictError is a scheduling rejection with a machine-readable code.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConflictError builds a ConflictError with the given code and message.
func NewConflictError(code, msg string) error {
	return &ConflictError{
		Code:    code,
		Message: msg,
	}
}

// AsConflict unwraps err into a ConflictError, or returns nil.
func AsConflict(err error) *ConflictError {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
