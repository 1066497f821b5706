package facades

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ChargeRequest starts a hosted checkout for Amount.
type ChargeRequest struct {
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Email       string
	CallbackURL string
}

// ChargeSession is where the customer completes the payment.
type ChargeSession struct {
	AuthorizationURL string
	AccessCode       string
	GatewayReference string
}

// ChargeStatus is the provider-neutral outcome of a charge.
type ChargeStatus string

const (
	ChargeSucceeded ChargeStatus = "succeeded"
	ChargeFailed    ChargeStatus = "failed"
	ChargePending   ChargeStatus = "pending"
)

// ChargeVerification is the gateway's view of a charge.
type ChargeVerification struct {
	Status           ChargeStatus
	Amount           decimal.Decimal
	Currency         string
	GatewayReference string
	Message          string
	Raw              json.RawMessage
}

// ResolvedAccount is the registered holder of a bank account.
type ResolvedAccount struct {
	AccountName   string
	AccountNumber string
}

// TransferRequest pays Amount out to a previously created recipient.
type TransferRequest struct {
	RecipientCode string
	Amount        decimal.Decimal
	Currency      string
	Reference     string
	Reason        string
}

// TransferResult is the gateway's acknowledgement of a transfer.
type TransferResult struct {
	TransferCode string
	Status       string
	Raw          json.RawMessage
}

// toMinorUnits converts naira to kobo.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// fromMinorUnits converts kobo to naira.
func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
