package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// WebhookEventKind is the provider-neutral meaning of a webhook.
type WebhookEventKind string

const (
	EventChargeSucceeded   WebhookEventKind = "charge.succeeded"
	EventChargeFailed      WebhookEventKind = "charge.failed"
	EventTransferSucceeded WebhookEventKind = "transfer.succeeded"
	EventTransferFailed    WebhookEventKind = "transfer.failed"
	EventTransferReversed  WebhookEventKind = "transfer.reversed"
	EventUnknown           WebhookEventKind = "unknown"
)

// TargetStatus is the payment status the event drives a record to.
func (k WebhookEventKind) TargetStatus() (PaymentStatus, bool) {
	switch k {
	case EventChargeSucceeded, EventTransferSucceeded:
		return PaymentStatusCompleted, true
	case EventChargeFailed, EventTransferFailed, EventTransferReversed:
		return PaymentStatusFailed, true
	}
	return "", false
}

// WebhookEvent is a parsed provider notification. It is not persisted;
// deduplication happens against the payment record state.
type WebhookEvent struct {
	Provider         Gateway          `json:"provider"`
	EventID          string           `json:"event_id"`
	Name             string           `json:"name"` // Provider event name, e.g. charge.success
	Kind             WebhookEventKind `json:"kind"`
	Reference        string           `json:"reference"`
	GatewayReference string           `json:"gateway_reference"`
	Amount           decimal.Decimal  `json:"amount"`
	Reason           string           `json:"reason"`
	Raw              json.RawMessage  `json:"-"`
}

// PaymentEvent is published to the message bus on every lifecycle change.
type PaymentEvent struct {
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"` // funding.completed, withdrawal.initiated, ...
	Reference string          `json:"reference"`
	UserID    string          `json:"user_id"`
	Gateway   Gateway         `json:"gateway"`
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	NetAmount decimal.Decimal `json:"net_amount"`
	Status    PaymentStatus   `json:"status"`
	Timestamp int64           `json:"timestamp"` // Unix seconds
}
