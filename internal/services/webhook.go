package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

// Signature headers sent by each provider.
const (
	PaystackSignatureHeader    = "X-Paystack-Signature"
	FlutterwaveSignatureHeader = "Flutterwave-Signature"
)

// WebhookOutcome is what happened to a delivered webhook.
type WebhookOutcome string

const (
	WebhookApplied  WebhookOutcome = "applied"
	WebhookIgnored  WebhookOutcome = "ignored"
	WebhookRejected WebhookOutcome = "rejected"
)

// WebhookResult describes the handling of one webhook delivery.
type WebhookResult struct {
	Outcome   WebhookOutcome `json:"outcome"`
	Reason    string         `json:"reason,omitempty"`
	Reference string         `json:"reference,omitempty"`
}

// WebhookSecrets are the shared secrets providers sign webhooks with.
type WebhookSecrets struct {
	Paystack    string
	Flutterwave string
}

func (s WebhookSecrets) secret(g models.Gateway) string {
	switch g {
	case models.GatewayPaystack:
		return s.Paystack
	case models.GatewayFlutterwave:
		return s.Flutterwave
	}
	return ""
}

// WebhookSignature returns the header name and value a provider would send
// for body.
func WebhookSignature(g models.Gateway, secret string, body []byte) (string, string) {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	sum := mac.Sum(nil)

	if g == models.GatewayFlutterwave {
		return FlutterwaveSignatureHeader, base64.StdEncoding.EncodeToString(sum)
	}
	return PaystackSignatureHeader, hex.EncodeToString(sum)
}

// VerifySignature checks the provider signature over the raw body in
// constant time.
func VerifySignature(g models.Gateway, secret string, body []byte, headers http.Header) error {
	if secret == "" {
		return fmt.Errorf("%w: no secret configured for %s", models.ErrInvalidSignature, g)
	}
	header, expected := WebhookSignature(g, secret, body)

	got := strings.TrimSpace(headers.Get(header))
	if got == "" {
		return fmt.Errorf("%w: missing %s header", models.ErrInvalidSignature, header)
	}
	if g == models.GatewayPaystack {
		got = strings.ToLower(got)
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
		return models.ErrInvalidSignature
	}
	return nil
}

// WebhookProcessor applies provider notifications exactly once. Deliveries
// are deduplicated against the payment record status, so replays and out of
// order deliveries end in the same state.
type WebhookProcessor struct {
	gateways    Gateways
	secrets     WebhookSecrets
	payments    PaymentRecordStore
	funding     FundingSettler
	withdrawals WithdrawalSettler
}

// NewWebhookProcessor creates a new WebhookProcessor.
func NewWebhookProcessor(
	gateways Gateways,
	secrets WebhookSecrets,
	payments PaymentRecordStore,
	funding FundingSettler,
	withdrawals WithdrawalSettler,
) *WebhookProcessor {
	return &WebhookProcessor{
		gateways:    gateways,
		secrets:     secrets,
		payments:    payments,
		funding:     funding,
		withdrawals: withdrawals,
	}
}

// Handle verifies, parses and applies one delivery. Business conditions such
// as an unknown reference are reported as Ignored with a nil error. Rejected
// results carry ErrInvalidSignature or ErrMalformedPayload. Any other error is
// an infrastructure failure the provider should redeliver after.
func (p *WebhookProcessor) Handle(ctx context.Context, gateway models.Gateway, body []byte, headers http.Header) (WebhookResult, error) {
	client, err := p.gateways.Client(gateway)
	if err != nil {
		return WebhookResult{Outcome: WebhookRejected, Reason: err.Error()}, err
	}

	if err := VerifySignature(gateway, p.secrets.secret(gateway), body, headers); err != nil {
		logger.Log.Warnw("webhook rejected", "gateway", gateway, "error", err)
		return WebhookResult{Outcome: WebhookRejected, Reason: "invalid signature"}, err
	}

	event, err := client.ParseEvent(body)
	if err != nil {
		logger.Log.Warnw("webhook rejected", "gateway", gateway, "error", err)
		return WebhookResult{Outcome: WebhookRejected, Reason: "malformed payload"}, err
	}

	ignore := func(reason string) (WebhookResult, error) {
		logger.Log.Infow("webhook ignored",
			"gateway", gateway, "event", event.Name, "event_id", event.EventID,
			"reference", event.Reference, "reason", reason)
		return WebhookResult{Outcome: WebhookIgnored, Reason: reason, Reference: event.Reference}, nil
	}

	if event.Kind == models.EventUnknown {
		return ignore("unhandled event " + event.Name)
	}

	rec, err := p.payments.GetByReference(ctx, event.Reference)
	if errors.Is(err, models.ErrPaymentNotFound) {
		return ignore("unknown reference")
	}
	if err != nil {
		logger.Log.Errorw("failed to load payment for webhook", "reference", event.Reference, "error", err)
		return WebhookResult{}, err
	}
	if rec.Gateway != gateway {
		return ignore("reference belongs to " + string(rec.Gateway))
	}
	if !kindMatchesType(event.Kind, rec.Type) {
		return ignore(fmt.Sprintf("%s does not apply to a %s payment", event.Kind, rec.Type))
	}

	if applied, reason := alreadyApplied(event.Kind, rec.Status); applied {
		return ignore(reason)
	}

	if err := p.dispatch(ctx, event, rec); err != nil {
		logger.Log.Errorw("failed to apply webhook",
			"gateway", gateway, "event", event.Name, "reference", event.Reference, "error", err)
		return WebhookResult{}, err
	}

	logger.Log.Infow("webhook applied",
		"gateway", gateway, "event", event.Name, "event_id", event.EventID, "reference", event.Reference)
	return WebhookResult{Outcome: WebhookApplied, Reference: event.Reference}, nil
}

func (p *WebhookProcessor) dispatch(ctx context.Context, event *models.WebhookEvent, rec *models.PaymentRecordDB) error {
	var err error
	switch event.Kind {
	case models.EventChargeSucceeded:
		_, err = p.funding.CompleteFunding(ctx, event.Reference)
	case models.EventChargeFailed:
		_, err = p.funding.FailFunding(ctx, event.Reference, event.Reason)
	case models.EventTransferSucceeded:
		_, err = p.withdrawals.CompleteWithdrawal(ctx, event.Reference, models.GatewayUpdate{
			GatewayReference: event.GatewayReference,
			Response:         event.Raw,
		})
	case models.EventTransferFailed:
		_, err = p.withdrawals.CompensateWithdrawal(ctx, event.Reference, event.Reason)
	case models.EventTransferReversed:
		if rec.Status == models.PaymentStatusCompleted {
			_, err = p.withdrawals.RefundWithdrawal(ctx, event.Reference, event.Reason)
		} else {
			_, err = p.withdrawals.CompensateWithdrawal(ctx, event.Reference, event.Reason)
		}
	}
	return err
}

func kindMatchesType(kind models.WebhookEventKind, t models.PaymentType) bool {
	switch kind {
	case models.EventChargeSucceeded, models.EventChargeFailed:
		return t == models.PaymentTypeFunding
	case models.EventTransferSucceeded, models.EventTransferFailed, models.EventTransferReversed:
		return t == models.PaymentTypeWithdrawal
	}
	return false
}

// alreadyApplied reports whether a record's status already reflects the
// event, or is terminal in a way the event can no longer change.
func alreadyApplied(kind models.WebhookEventKind, status models.PaymentStatus) (bool, string) {
	target, _ := kind.TargetStatus()
	switch {
	case status == target:
		return true, "already processed"
	case kind == models.EventTransferReversed && status == models.PaymentStatusRefunded:
		return true, "already processed"
	case kind == models.EventTransferReversed && status == models.PaymentStatusCompleted:
		return false, ""
	case status.IsTerminal():
		return true, fmt.Sprintf("payment already %s", status)
	}
	return false, ""
}
