package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

//go:generate mockgen -source=verify.go -destination=mock_verify_test.go -package=handlers

// FundingVerifier defines the interface that the service must implement.
type FundingVerifier interface {
	GetPayment(ctx context.Context, userID uuid.UUID, reference string) (*models.PaymentRecordDB, error) // owner scoped lookup
	CompleteFunding(ctx context.Context, reference string) (*models.PaymentRecordDB, error)              // verifies with the gateway and settles
}

// NewVerifyFundingHandler returns an HTTP handler that settles a funding
// payment from the gateway's verification instead of waiting for the webhook.
// @Summary Verify funding
// @Description Asks the gateway for the charge outcome and credits the wallet when paid. Safe to call repeatedly.
// @Tags wallet
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} handlers.PaymentResponse "Payment settled"
// @Success 202 {object} handlers.PaymentResponse "Charge still pending"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Failure 502 {object} handlers.ErrorResponse "Gateway unavailable"
// @Router /wallet/fund/{reference}/verify [get]
// @Security BearerAuth
func NewVerifyFundingHandler(svc FundingVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		reference := chi.URLParam(r, "reference")

		if _, err := svc.GetPayment(ctx, userID, reference); err != nil {
			writeServiceError(w, err, "")
			return
		}

		rec, err := svc.CompleteFunding(ctx, reference)
		if errors.Is(err, models.ErrPaymentPending) && rec != nil {
			writeJSON(w, http.StatusAccepted, newPaymentResponse(rec))
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to verify funding", "userID", userID, "reference", reference, "error", err)
			writeServiceError(w, err, "payment verification unavailable, try again later")
			return
		}

		writeJSON(w, http.StatusOK, newPaymentResponse(rec))
	}
}
