package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// FlutterwaveClient talks to the Flutterwave v3 API. Amounts on the wire are
// major units.
type FlutterwaveClient struct {
	rest *restClient
}

// NewFlutterwaveClient creates a Flutterwave client.
func NewFlutterwaveClient(cfg ClientConfig) *FlutterwaveClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.flutterwave.com"
	}
	return &FlutterwaveClient{rest: newRestClient(models.GatewayFlutterwave, cfg)}
}

// Gateway identifies the provider.
func (c *FlutterwaveClient) Gateway() models.Gateway { return models.GatewayFlutterwave }

type flutterwaveEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *FlutterwaveClient) call(ctx context.Context, operation, method, path string, body any, data any) (json.RawMessage, error) {
	var env flutterwaveEnvelope
	if err := c.rest.do(ctx, operation, method, path, body, &env); err != nil {
		return nil, err
	}
	if env.Status != "success" {
		return nil, &models.GatewayClientError{
			Gateway:    models.GatewayFlutterwave,
			Operation:  operation,
			StatusCode: http.StatusOK,
			Message:    env.Message,
		}
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			return nil, &models.GatewayTransientError{Gateway: models.GatewayFlutterwave, Operation: operation, Attempts: 1,
				Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return env.Data, nil
}

// InitializeCharge calls POST /v3/payments.
func (c *FlutterwaveClient) InitializeCharge(ctx context.Context, req ChargeRequest) (*ChargeSession, error) {
	body := map[string]any{
		"tx_ref":       req.Reference,
		"amount":       json.Number(req.Amount.StringFixed(2)),
		"currency":     req.Currency,
		"redirect_url": req.CallbackURL,
		"customer": map[string]string{
			"email": req.Email,
		},
	}

	var data struct {
		Link string `json:"link"`
	}
	if _, err := c.call(ctx, "initialize_charge", http.MethodPost, "/v3/payments", body, &data); err != nil {
		return nil, err
	}
	return &ChargeSession{AuthorizationURL: data.Link}, nil
}

// VerifyCharge calls GET /v3/transactions/verify_by_reference.
func (c *FlutterwaveClient) VerifyCharge(ctx context.Context, reference string) (*ChargeVerification, error) {
	var data struct {
		ID             json.Number     `json:"id"`
		Status         string          `json:"status"`
		Amount         decimal.Decimal `json:"amount"`
		Currency       string          `json:"currency"`
		ProcessorReply string          `json:"processor_response"`
	}
	path := "/v3/transactions/verify_by_reference?tx_ref=" + url.QueryEscape(reference)
	raw, err := c.call(ctx, "verify_charge", http.MethodGet, path, nil, &data)
	if err != nil {
		return nil, err
	}

	return &ChargeVerification{
		Status:           flutterwaveChargeStatus(data.Status),
		Amount:           data.Amount,
		Currency:         data.Currency,
		GatewayReference: data.ID.String(),
		Message:          data.ProcessorReply,
		Raw:              raw,
	}, nil
}

func flutterwaveChargeStatus(status string) ChargeStatus {
	switch strings.ToLower(status) {
	case "successful":
		return ChargeSucceeded
	case "failed", "cancelled":
		return ChargeFailed
	}
	return ChargePending
}

// ResolveAccount calls POST /v3/accounts/resolve.
func (c *FlutterwaveClient) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*ResolvedAccount, error) {
	body := map[string]string{
		"account_number": accountNumber,
		"account_bank":   bankCode,
	}

	var data struct {
		AccountNumber string `json:"account_number"`
		AccountName   string `json:"account_name"`
	}
	if _, err := c.call(ctx, "resolve_account", http.MethodPost, "/v3/accounts/resolve", body, &data); err != nil {
		return nil, err
	}
	return &ResolvedAccount{AccountName: data.AccountName, AccountNumber: data.AccountNumber}, nil
}

// CreateRecipient registers a beneficiary; its id is the recipient code.
func (c *FlutterwaveClient) CreateRecipient(ctx context.Context, accountNumber, bankCode, accountName string) (string, error) {
	body := map[string]string{
		"account_number":   accountNumber,
		"account_bank":     bankCode,
		"beneficiary_name": accountName,
		"currency":         models.DefaultCurrency,
	}

	var data struct {
		ID json.Number `json:"id"`
	}
	if _, err := c.call(ctx, "create_recipient", http.MethodPost, "/v3/beneficiaries", body, &data); err != nil {
		return "", err
	}
	return data.ID.String(), nil
}

// InitiateTransfer calls POST /v3/transfers against a saved beneficiary.
func (c *FlutterwaveClient) InitiateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	beneficiary, err := strconv.ParseInt(req.RecipientCode, 10, 64)
	if err != nil {
		return nil, &models.GatewayClientError{
			Gateway:    models.GatewayFlutterwave,
			Operation:  "initiate_transfer",
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("invalid beneficiary id %q", req.RecipientCode),
		}
	}
	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	body := map[string]any{
		"beneficiary":    beneficiary,
		"amount":         json.Number(req.Amount.StringFixed(2)),
		"currency":       currency,
		"debit_currency": currency,
		"narration":      req.Reason,
		"reference":      req.Reference,
	}

	var data struct {
		ID     json.Number `json:"id"`
		Status string      `json:"status"`
	}
	raw, err := c.call(ctx, "initiate_transfer", http.MethodPost, "/v3/transfers", body, &data)
	if err != nil {
		return nil, err
	}
	return &TransferResult{TransferCode: data.ID.String(), Status: data.Status, Raw: raw}, nil
}

// ParseEvent decodes a Flutterwave webhook body.
func (c *FlutterwaveClient) ParseEvent(body []byte) (*models.WebhookEvent, error) {
	var payload struct {
		Event string `json:"event"`
		Data  struct {
			ID              json.Number     `json:"id"`
			TxRef           string          `json:"tx_ref"`
			Reference       string          `json:"reference"`
			Status          string          `json:"status"`
			Amount          decimal.Decimal `json:"amount"`
			CompleteMessage string          `json:"complete_message"`
			ProcessorReply  string          `json:"processor_response"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	event := &models.WebhookEvent{
		Provider:         models.GatewayFlutterwave,
		EventID:          payload.Event + ":" + payload.Data.ID.String(),
		Name:             payload.Event,
		GatewayReference: payload.Data.ID.String(),
		Amount:           payload.Data.Amount,
		Raw:              json.RawMessage(body),
	}

	status := strings.ToLower(payload.Data.Status)
	switch payload.Event {
	case "charge.completed":
		event.Reference = payload.Data.TxRef
		event.Reason = payload.Data.ProcessorReply
		switch status {
		case "successful":
			event.Kind = models.EventChargeSucceeded
		case "failed", "cancelled":
			event.Kind = models.EventChargeFailed
		default:
			event.Kind = models.EventUnknown
		}
	case "transfer.completed":
		event.Reference = payload.Data.Reference
		event.Reason = payload.Data.CompleteMessage
		switch status {
		case "successful":
			event.Kind = models.EventTransferSucceeded
		case "failed":
			event.Kind = models.EventTransferFailed
		case "reversed":
			event.Kind = models.EventTransferReversed
		default:
			event.Kind = models.EventUnknown
		}
	default:
		event.Reference = payload.Data.TxRef
		if event.Reference == "" {
			event.Reference = payload.Data.Reference
		}
		event.Kind = models.EventUnknown
	}

	if payload.Event == "" || event.Reference == "" {
		return nil, fmt.Errorf("%w: missing event or reference", models.ErrMalformedPayload)
	}
	if event.Reason == "" {
		event.Reason = payload.Event + " " + status
	}
	return event, nil
}
