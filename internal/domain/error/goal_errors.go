// Package error defines domain-specific errors for the Savings Goals application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUnauthorizedGoalAccess is returned when the acting owner does not own the goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrEmptyGoalTitle is returned when the goal title is empty or whitespace.
	ErrEmptyGoalTitle = errors.New("goal title is required")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidDueDate is returned when the due date precedes the creation date.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrInvalidGoalStatus is returned when the status is outside the recognized set.
	ErrInvalidGoalStatus = errors.New("invalid goal status")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010002"
	ErrCodeEmptyGoalTitle         GoalErrorCode = "GOL-010003"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010004"
	ErrCodeInvalidDueDate         GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalStatus      GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
