package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/services"
)

//go:generate mockgen -source=webhook.go -destination=mock_webhook_test.go -package=handlers

// maxWebhookBody bounds the body read before the signature is checked.
const maxWebhookBody = 1 << 20

// WebhookApplier defines the interface that the processor must implement.
type WebhookApplier interface {
	Handle(ctx context.Context, gateway models.Gateway, body []byte, headers http.Header) (services.WebhookResult, error)
}

// NewWebhookHandler returns an HTTP handler for gateway notifications.
// The signature is computed over the exact bytes received.
// @Summary Gateway webhook
// @Description Receives signed Paystack and Flutterwave notifications. Applied and ignored deliveries both answer 200 so the gateway stops retrying.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param gateway path string true "paystack or flutterwave"
// @Success 200 {object} services.WebhookResult "Applied or ignored"
// @Failure 400 {object} handlers.ErrorResponse "Malformed payload"
// @Failure 401 {object} handlers.ErrorResponse "Invalid signature"
// @Failure 404 {object} handlers.ErrorResponse "Unknown gateway"
// @Failure 500 {object} handlers.ErrorResponse "Processing failed, redeliver"
// @Router /webhooks/{gateway} [post]
func NewWebhookHandler(processor WebhookApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gateway, err := models.ParseGateway(chi.URLParam(r, "gateway"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Unknown gateway")
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			logger.Log.Errorw("failed to read webhook body", "gateway", gateway, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := processor.Handle(r.Context(), gateway, body, r.Header)
		switch {
		case errors.Is(err, models.ErrInvalidSignature):
			writeError(w, http.StatusUnauthorized, "Invalid signature")
		case errors.Is(err, models.ErrMalformedPayload):
			writeError(w, http.StatusBadRequest, "Malformed payload")
		case err != nil && result.Outcome == services.WebhookRejected:
			writeError(w, http.StatusBadRequest, result.Reason)
		case err != nil:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		default:
			writeJSON(w, http.StatusOK, result)
		}
	}
}
