package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// Gateway is the closed set of supported payment providers.
type Gateway string

const (
	GatewayPaystack    Gateway = "paystack"
	GatewayFlutterwave Gateway = "flutterwave"
)

// Gateways lists every supported provider.
var Gateways = []Gateway{GatewayPaystack, GatewayFlutterwave}

// ParseGateway converts a path or config value to a Gateway.
func ParseGateway(s string) (Gateway, error) {
	switch g := Gateway(strings.ToLower(strings.TrimSpace(s))); g {
	case GatewayPaystack, GatewayFlutterwave:
		return g, nil
	}
	return "", NewValidationError("gateway", fmt.Sprintf("unsupported gateway %q", s))
}

// ReferencePrefix is prepended to references generated for this gateway.
func (g Gateway) ReferencePrefix() string {
	switch g {
	case GatewayPaystack:
		return "PSK_"
	case GatewayFlutterwave:
		return "FLW_"
	}
	return "PAY_"
}

// PaymentType is the kind of external money movement.
type PaymentType string

const (
	PaymentTypeFunding    PaymentType = "funding"
	PaymentTypeWithdrawal PaymentType = "withdrawal"
	PaymentTypeRefund     PaymentType = "refund"
	PaymentTypePayout     PaymentType = "payout"
)

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:    {PaymentStatusProcessing, PaymentStatusFailed, PaymentStatusCancelled},
	PaymentStatusProcessing: {PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled},
	PaymentStatusCompleted:  {PaymentStatusRefunded},
}

// CanTransitionTo reports whether from -> to is an edge of the state machine.
func (s PaymentStatus) CanTransitionTo(to PaymentStatus) bool {
	for _, next := range paymentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are expected, apart from
// completed -> refunded.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentRecordDB tracks one external gateway interaction.
type PaymentRecordDB struct {
	PaymentID        uuid.UUID       `json:"payment_id" db:"payment_id"`
	UserID           uuid.UUID       `json:"user_id" db:"user_id"`
	Reference        string          `json:"reference" db:"reference"` // Idempotency key, globally unique
	Gateway          Gateway         `json:"gateway" db:"gateway"`
	Type             PaymentType     `json:"type" db:"type"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	Fee              decimal.Decimal `json:"fee" db:"fee"`
	NetAmount        decimal.Decimal `json:"net_amount" db:"net_amount"`
	Currency         string          `json:"currency" db:"currency"`
	Status           PaymentStatus   `json:"status" db:"status"`
	GatewayReference *string         `json:"gateway_reference,omitempty" db:"gateway_reference"`
	GatewayResponse  types.JSONText  `json:"gateway_response,omitempty" db:"gateway_response"` // Raw provider payload
	FailureReason    *string         `json:"failure_reason,omitempty" db:"failure_reason"`
	PaymentMethodID  *uuid.UUID      `json:"payment_method_id,omitempty" db:"payment_method_id"`
	AuthorizationURL *string         `json:"authorization_url,omitempty" db:"authorization_url"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
}

// PaymentMethodDB is a user's bank account registered with a gateway.
type PaymentMethodDB struct {
	PaymentMethodID uuid.UUID `json:"payment_method_id" db:"payment_method_id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Gateway         Gateway   `json:"gateway" db:"gateway"`
	BankCode        string    `json:"bank_code" db:"bank_code"`
	AccountNumber   string    `json:"account_number" db:"account_number"`
	AccountName     string    `json:"account_name" db:"account_name"`
	RecipientCode   string    `json:"recipient_code" db:"recipient_code"`
	Verified        bool      `json:"verified" db:"verified"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// GatewayUpdate is what a gateway reported about a payment. Empty fields leave
// the stored values untouched.
type GatewayUpdate struct {
	GatewayReference string
	Response         json.RawMessage
	AuthorizationURL string
}
