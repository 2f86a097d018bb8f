package error

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger domain errors.
var (
	// ErrInvalidMovementAction is returned when the action is outside {added, withdrawn}.
	ErrInvalidMovementAction = errors.New("invalid movement action")

	// ErrInvalidMovementAmount is returned when the normalized amount is not positive.
	ErrInvalidMovementAmount = errors.New("movement amount must be greater than zero")

	// ErrInsufficientBalance is returned when a withdrawal would drive the balance negative.
	ErrInsufficientBalance = errors.New("insufficient goal balance")

	// ErrConcurrentUpdate is returned when a lost-update race on the goal row is
	// detected. It is the only ledger error a caller should retry with the same inputs.
	ErrConcurrentUpdate = errors.New("goal was modified concurrently")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLedgerGoalNotFound  LedgerErrorCode = "LGR-010001"
	ErrCodeLedgerUnauthorized  LedgerErrorCode = "LGR-010002"
	ErrCodeInvalidAction       LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidAmount       LedgerErrorCode = "LGR-010004"
	ErrCodeInsufficientBalance LedgerErrorCode = "LGR-010005"
	// Concurrency errors (02XXXX)
	ErrCodeConcurrentUpdate LedgerErrorCode = "LGR-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InsufficientBalanceError carries the diagnostics a caller needs to
// report a rejected withdrawal: the balance at the time of the attempt,
// the requested amount and the floor the balance may not cross.
type InsufficientBalanceError struct {
	CurrentBalance decimal.Decimal
	Requested      decimal.Decimal
	Floor          decimal.Decimal
}

// Error implements the error interface.
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("cannot withdraw %s: balance is %s and may not go below %s",
		e.Requested.StringFixed(2), e.CurrentBalance.StringFixed(2), e.Floor.StringFixed(2))
}

// Unwrap makes the error match ErrInsufficientBalance via errors.Is.
func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// NewInsufficientBalanceError builds the diagnostic error for a rejected withdrawal.
func NewInsufficientBalanceError(balance, requested decimal.Decimal) *InsufficientBalanceError {
	return &InsufficientBalanceError{
		CurrentBalance: balance,
		Requested:      requested,
		Floor:          decimal.Zero,
	}
}
