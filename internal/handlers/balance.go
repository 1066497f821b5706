package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=balance.go -destination=mock_balance_test.go -package=handlers

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// BalanceResponse represents a successful response with the wallet balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Wallet balance
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"9750.00"`

	// Currency code
	// default: NGN
	Currency string `json:"currency"`

	// active or frozen
	Status models.WalletStatus `json:"status"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the wallet balance.
// @Summary Get wallet balance
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		wallet, err := svc.GetBalance(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
			writeServiceError(w, err, "")
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{
			Balance:  wallet.Balance,
			Currency: wallet.Currency,
			Status:   wallet.Status,
		})
	}
}
