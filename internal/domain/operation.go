package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrOperationsDisabled indicates that operations are blocked by an
	// in-progress administrative reset.
	ErrOperationsDisabled = errors.New("operations are temporarily disabled")
	// ErrInvalidAmount indicates that the amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates that the amount is zero or below.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrSelfTransfer indicates an attempt to send currency to oneself.
	ErrSelfTransfer = errors.New("cannot transfer to yourself")
	// ErrAmountTooLow indicates that the amount is below the currency's minimum transfer amount.
	ErrAmountTooLow = errors.New("amount below minimum")
	// ErrMaxBalanceExceeded indicates that the mutation would exceed the currency's max value.
	ErrMaxBalanceExceeded = errors.New("max balance exceeded")
)

// Operation is an intent to mutate one account's balance in one currency.
// Perform applies the mutation and produces the immutable result exactly once.
type Operation interface {
	Perform() OperationResult
	Target() *Account
}

// OperationResult is the immutable outcome of a performed operation.
type OperationResult struct {
	Success    bool
	Loggable   bool
	Log        string
	NewBalance decimal.Decimal
}

// Failure returns an unsuccessful result that still carries a log line.
func Failure(log string) OperationResult {
	return OperationResult{Success: false, Loggable: log != "", Log: log}
}
