package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

// PaystackClient talks to the Paystack REST API. Amounts on the wire are kobo.
type PaystackClient struct {
	rest *restClient
}

// NewPaystackClient creates a Paystack client.
func NewPaystackClient(cfg ClientConfig) *PaystackClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.paystack.co"
	}
	return &PaystackClient{rest: newRestClient(models.GatewayPaystack, cfg)}
}

// Gateway identifies the provider.
func (c *PaystackClient) Gateway() models.Gateway { return models.GatewayPaystack }

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call wraps restClient.do and unwraps the {status, message, data} envelope.
func (c *PaystackClient) call(ctx context.Context, operation, method, path string, body any, data any) (json.RawMessage, error) {
	var env paystackEnvelope
	if err := c.rest.do(ctx, operation, method, path, body, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, &models.GatewayClientError{
			Gateway:    models.GatewayPaystack,
			Operation:  operation,
			StatusCode: http.StatusOK,
			Message:    env.Message,
		}
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			return nil, &models.GatewayTransientError{Gateway: models.GatewayPaystack, Operation: operation, Attempts: 1,
				Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return env.Data, nil
}

// InitializeCharge calls POST /transaction/initialize.
func (c *PaystackClient) InitializeCharge(ctx context.Context, req ChargeRequest) (*ChargeSession, error) {
	body := map[string]any{
		"email":        req.Email,
		"amount":       toMinorUnits(req.Amount),
		"currency":     req.Currency,
		"reference":    req.Reference,
		"callback_url": req.CallbackURL,
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if _, err := c.call(ctx, "initialize_charge", http.MethodPost, "/transaction/initialize", body, &data); err != nil {
		return nil, err
	}

	return &ChargeSession{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		GatewayReference: data.AccessCode,
	}, nil
}

// VerifyCharge calls GET /transaction/verify/{reference}.
func (c *PaystackClient) VerifyCharge(ctx context.Context, reference string) (*ChargeVerification, error) {
	var data struct {
		ID              json.Number `json:"id"`
		Status          string      `json:"status"`
		Amount          int64       `json:"amount"`
		Currency        string      `json:"currency"`
		GatewayResponse string      `json:"gateway_response"`
	}
	raw, err := c.call(ctx, "verify_charge", http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &data)
	if err != nil {
		return nil, err
	}

	return &ChargeVerification{
		Status:           paystackChargeStatus(data.Status),
		Amount:           fromMinorUnits(data.Amount),
		Currency:         data.Currency,
		GatewayReference: data.ID.String(),
		Message:          data.GatewayResponse,
		Raw:              raw,
	}, nil
}

func paystackChargeStatus(status string) ChargeStatus {
	switch status {
	case "success":
		return ChargeSucceeded
	case "failed", "reversed":
		return ChargeFailed
	}
	// ongoing, pending, processing, queued, abandoned
	return ChargePending
}

// ResolveAccount calls GET /bank/resolve.
func (c *PaystackClient) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*ResolvedAccount, error) {
	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("bank_code", bankCode)

	var data struct {
		AccountName   string `json:"account_name"`
		AccountNumber string `json:"account_number"`
	}
	if _, err := c.call(ctx, "resolve_account", http.MethodGet, "/bank/resolve?"+query.Encode(), nil, &data); err != nil {
		return nil, err
	}
	return &ResolvedAccount{AccountName: data.AccountName, AccountNumber: data.AccountNumber}, nil
}

// CreateRecipient calls POST /transferrecipient.
func (c *PaystackClient) CreateRecipient(ctx context.Context, accountNumber, bankCode, accountName string) (string, error) {
	body := map[string]any{
		"type":           "nuban",
		"name":           accountName,
		"account_number": accountNumber,
		"bank_code":      bankCode,
		"currency":       models.DefaultCurrency,
	}

	var data struct {
		RecipientCode string `json:"recipient_code"`
	}
	if _, err := c.call(ctx, "create_recipient", http.MethodPost, "/transferrecipient", body, &data); err != nil {
		return "", err
	}
	return data.RecipientCode, nil
}

// InitiateTransfer calls POST /transfer.
func (c *PaystackClient) InitiateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	body := map[string]any{
		"source":    "balance",
		"amount":    toMinorUnits(req.Amount),
		"recipient": req.RecipientCode,
		"reason":    req.Reason,
		"reference": req.Reference,
	}

	var data struct {
		TransferCode string `json:"transfer_code"`
		Status       string `json:"status"`
	}
	raw, err := c.call(ctx, "initiate_transfer", http.MethodPost, "/transfer", body, &data)
	if err != nil {
		return nil, err
	}
	return &TransferResult{TransferCode: data.TransferCode, Status: data.Status, Raw: raw}, nil
}

// ParseEvent decodes a Paystack webhook body.
func (c *PaystackClient) ParseEvent(body []byte) (*models.WebhookEvent, error) {
	var payload struct {
		Event string `json:"event"`
		Data  struct {
			ID              json.Number `json:"id"`
			Reference       string      `json:"reference"`
			Status          string      `json:"status"`
			Amount          int64       `json:"amount"`
			TransferCode    string      `json:"transfer_code"`
			Reason          string      `json:"reason"`
			GatewayResponse string      `json:"gateway_response"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}
	if payload.Event == "" || payload.Data.Reference == "" {
		return nil, fmt.Errorf("%w: missing event or reference", models.ErrMalformedPayload)
	}

	event := &models.WebhookEvent{
		Provider:         models.GatewayPaystack,
		EventID:          payload.Event + ":" + payload.Data.ID.String(),
		Name:             payload.Event,
		Reference:        payload.Data.Reference,
		GatewayReference: payload.Data.ID.String(),
		Amount:           fromMinorUnits(payload.Data.Amount),
		Reason:           payload.Data.GatewayResponse,
		Raw:              json.RawMessage(body),
	}

	switch payload.Event {
	case "charge.success":
		event.Kind = models.EventChargeSucceeded
	case "charge.failed":
		event.Kind = models.EventChargeFailed
	case "transfer.success":
		event.Kind = models.EventTransferSucceeded
		event.GatewayReference = payload.Data.TransferCode
	case "transfer.failed":
		event.Kind = models.EventTransferFailed
		event.GatewayReference = payload.Data.TransferCode
		event.Reason = payload.Data.Reason
	case "transfer.reversed":
		event.Kind = models.EventTransferReversed
		event.GatewayReference = payload.Data.TransferCode
		event.Reason = payload.Data.Reason
	default:
		event.Kind = models.EventUnknown
	}
	if event.Reason == "" {
		event.Reason = payload.Event
	}

	return event, nil
}
