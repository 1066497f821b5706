package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
)

//go:generate mockgen -source=freeze.go -destination=mock_freeze_test.go -package=handlers

// WalletFreezer defines the interface that the service must implement.
type WalletFreezer interface {
	Freeze(ctx context.Context, userID uuid.UUID) error
}

// NewFreezeHandler returns an HTTP handler that blocks further debits from the wallet.
// @Summary Freeze wallet
// @Description Blocks withdrawals. Incoming credits are still applied.
// @Tags wallet
// @Success 204 "Wallet frozen"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallet/freeze [post]
// @Security BearerAuth
func NewFreezeHandler(svc WalletFreezer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.Freeze(r.Context(), userID); err != nil {
			logger.Log.Errorw("failed to freeze wallet", "userID", userID, "error", err)
			writeServiceError(w, err, "")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
