package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrMisconfiguredAccount indicates an administrative account without a role tag.
// Login for such an account must fail rather than fall back to a default role.
var ErrMisconfiguredAccount = errors.New("account role not configured")

// ErrOverlappingLeave indicates a leave request whose range intersects an
// existing PENDING or APPROVED request for the same employee.
var ErrOverlappingLeave = errors.New("overlapping leave request")

// ErrAlreadyCheckedOut indicates today's latest attendance record already has a checkout.
var ErrAlreadyCheckedOut = errors.New("already checked out today")

// ErrNoCheckInToday indicates a checkout was attempted without a check-in today.
var ErrNoCheckInToday = errors.New("no check-in record found for today")

// ErrInvalidAttendanceType indicates an unrecognized attendance mark type.
var ErrInvalidAttendanceType = errors.New("invalid attendance type")

// ErrInvalidTransition indicates a status change attempted from a terminal leave state.
var ErrInvalidTransition = errors.New("leave request is not pending")

// AppError wraps an infrastructure failure with a status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
