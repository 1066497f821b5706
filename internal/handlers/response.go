package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// PaymentResponse describes a payment record
// swagger:model PaymentResponse
type PaymentResponse struct {
	Reference        string               `json:"reference"`
	Gateway          models.Gateway       `json:"gateway"`
	Type             models.PaymentType   `json:"type"`
	Amount           decimal.Decimal      `json:"amount" swaggertype:"string" example:"25000.00"`
	Fee              decimal.Decimal      `json:"fee" swaggertype:"string" example:"25.00"`
	NetAmount        decimal.Decimal      `json:"net_amount" swaggertype:"string" example:"24975.00"`
	Currency         string               `json:"currency"`
	Status           models.PaymentStatus `json:"status"`
	GatewayReference string               `json:"gateway_reference,omitempty"`
	FailureReason    string               `json:"failure_reason,omitempty"`
	AuthorizationURL string               `json:"authorization_url,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	CompletedAt      *time.Time           `json:"completed_at,omitempty"`
}

func newPaymentResponse(rec *models.PaymentRecordDB) PaymentResponse {
	resp := PaymentResponse{
		Reference:   rec.Reference,
		Gateway:     rec.Gateway,
		Type:        rec.Type,
		Amount:      rec.Amount,
		Fee:         rec.Fee,
		NetAmount:   rec.NetAmount,
		Currency:    rec.Currency,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt,
		CompletedAt: rec.CompletedAt,
	}
	if rec.GatewayReference != nil {
		resp.GatewayReference = *rec.GatewayReference
	}
	if rec.FailureReason != nil {
		resp.FailureReason = *rec.FailureReason
	}
	if rec.AuthorizationURL != nil {
		resp.AuthorizationURL = *rec.AuthorizationURL
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// currentUser returns the user authenticated by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		logger.Log.Errorw("request without authenticated user", "uri", r.RequestURI, "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// writeServiceError maps service errors to HTTP statuses. gatewayMessage is
// shown when a gateway call failed.
func writeServiceError(w http.ResponseWriter, err error, gatewayMessage string) {
	var (
		validationErr *models.ValidationError
		balanceErr    *models.InsufficientBalanceError
		duplicateErr  *models.DuplicateReferenceError
		withdrawalErr *models.WithdrawalFailedError
		gatewayClient *models.GatewayClientError
	)

	switch {
	case errors.As(err, &withdrawalErr):
		writeError(w, http.StatusBadGateway, fmt.Sprintf("withdrawal failed, %s refunded to wallet", withdrawalErr.Refunded.StringFixed(2)))
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &balanceErr):
		writeError(w, http.StatusBadRequest, balanceErr.Error())
	case errors.Is(err, models.ErrInvalidPaymentMethod):
		writeError(w, http.StatusBadRequest, "Invalid payment method")
	case errors.Is(err, models.ErrWalletFrozen):
		writeError(w, http.StatusForbidden, "Wallet is frozen")
	case errors.As(err, &duplicateErr):
		writeError(w, http.StatusConflict, duplicateErr.Error())
	case errors.Is(err, models.ErrPaymentNotFound):
		writeError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, models.ErrWalletNotFound):
		writeError(w, http.StatusNotFound, "Wallet not found")
	case errors.As(err, &gatewayClient) && gatewayClient.StatusCode == http.StatusUnprocessableEntity:
		writeError(w, http.StatusBadRequest, gatewayClient.Message)
	case models.IsGatewayError(err):
		writeError(w, http.StatusBadGateway, gatewayMessage)
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
