package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidSignature is returned when a webhook signature is missing or does not match.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedPayload is returned when a webhook body cannot be parsed.
	ErrMalformedPayload = errors.New("malformed webhook payload")
	// ErrInvalidPaymentMethod is returned when a payment method is missing, unverified or not owned by the user.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrPaymentNotFound is returned when no payment record matches a reference.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrWalletNotFound is returned when the user has no wallet yet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletFrozen is returned when debiting a frozen wallet.
	ErrWalletFrozen = errors.New("wallet is frozen")
	// ErrPaymentPending is returned when the gateway has not settled a charge yet.
	ErrPaymentPending = errors.New("payment is still pending at the gateway")
)

// ValidationError reports bad caller input. It is never retried.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InsufficientBalanceError is returned by a debit that would make the balance negative.
type InsufficientBalanceError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %s, need %s", e.Balance.StringFixed(2), e.Requested.StringFixed(2))
}

// DuplicateReferenceError is returned when a reference has already been used.
type DuplicateReferenceError struct {
	Reference string
}

func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("reference %q already exists", e.Reference)
}

// IllegalTransitionError is returned for a payment status change outside the state machine.
type IllegalTransitionError struct {
	Reference string
	From      PaymentStatus
	To        PaymentStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("payment %s: illegal transition %s -> %s", e.Reference, e.From, e.To)
}

// GatewayClientError is a 4xx answer from a gateway. It is not retried.
type GatewayClientError struct {
	Gateway    Gateway
	Operation  string
	StatusCode int
	Message    string
}

func (e *GatewayClientError) Error() string {
	return fmt.Sprintf("%s %s: client error %d: %s", e.Gateway, e.Operation, e.StatusCode, e.Message)
}

// GatewayTransientError is returned once retries against a 5xx, timeout or
// broken connection are exhausted.
type GatewayTransientError struct {
	Gateway   Gateway
	Operation string
	Attempts  int
	Err       error
}

func (e *GatewayTransientError) Error() string {
	return fmt.Sprintf("%s %s: failed after %d attempts: %v", e.Gateway, e.Operation, e.Attempts, e.Err)
}

func (e *GatewayTransientError) Unwrap() error { return e.Err }

// IsGatewayError reports whether err was classified at the gateway boundary.
func IsGatewayError(err error) bool {
	var clientErr *GatewayClientError
	var transientErr *GatewayTransientError
	return errors.As(err, &clientErr) || errors.As(err, &transientErr)
}

// WithdrawalFailedError is returned after a failed transfer has been compensated.
type WithdrawalFailedError struct {
	Reference string
	Refunded  decimal.Decimal
	Err       error
}

func (e *WithdrawalFailedError) Error() string {
	return fmt.Sprintf("withdrawal %s failed, %s refunded to wallet: %v", e.Reference, e.Refunded.StringFixed(2), e.Err)
}

func (e *WithdrawalFailedError) Unwrap() error { return e.Err }
