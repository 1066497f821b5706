package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/services"
	"github.com/sbilibin2017/gw-payment-wallet/internal/validation"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=withdraw.go -destination=mock_withdraw_test.go -package=handlers

// WithdrawalRequester defines the interface that the service must implement.
type WithdrawalRequester interface {
	RequestWithdrawal(ctx context.Context, req services.WithdrawalRequest) (*models.PaymentRecordDB, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Gross amount debited from the wallet, in naira
	// required: true
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"25000.00"`

	// Saved bank account to pay out to
	// required: true
	PaymentMethodID uuid.UUID `json:"payment_method_id" validate:"required"`

	// Optional idempotency key
	Reference string `json:"reference,omitempty" validate:"omitempty,min=8,max=64,reference"`

	// Narration shown on the transfer
	Reason string `json:"reason,omitempty"`
}

// NewWithdrawHandler returns an HTTP handler that pays wallet funds out to a bank account.
// @Summary Withdraw funds
// @Description Debits the amount from the wallet and transfers amount minus the withdrawal fee. A failed transfer is refunded to the wallet.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 201 {object} handlers.PaymentResponse "Withdrawal initiated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, insufficient balance or invalid payment method"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Wallet is frozen"
// @Failure 409 {object} handlers.ErrorResponse "Reference already used"
// @Failure 502 {object} handlers.ErrorResponse "Transfer failed and was refunded"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawalRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rec, err := svc.RequestWithdrawal(ctx, services.WithdrawalRequest{
			UserID:          userID,
			Amount:          req.Amount,
			PaymentMethodID: req.PaymentMethodID,
			Reference:       req.Reference,
			Reason:          req.Reason,
		})
		if err != nil {
			logger.Log.Errorw("failed to withdraw funds", "userID", userID, "amount", req.Amount, "error", err)
			writeServiceError(w, err, "withdrawal failed")
			return
		}

		writeJSON(w, http.StatusCreated, newPaymentResponse(rec))
	}
}
