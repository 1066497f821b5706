package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/services"
	"github.com/sbilibin2017/gw-payment-wallet/internal/validation"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=fund.go -destination=mock_fund_test.go -package=handlers

// FundingInitializer defines the interface that the service must implement.
type FundingInitializer interface {
	InitializeFunding(ctx context.Context, req services.FundingRequest) (*services.FundingSession, error)
}

// FundRequest represents the JSON body for funding a wallet
// swagger:model FundRequest
type FundRequest struct {
	// Amount to charge, in naira
	// required: true
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"10000.00"`

	// Gateway to charge through
	// required: true
	Gateway string `json:"gateway" validate:"required,oneof=paystack flutterwave" example:"paystack"`

	// Customer email, required by the gateways
	// required: true
	Email string `json:"email" validate:"required,email" example:"user@example.com"`

	// Optional idempotency key
	Reference string `json:"reference,omitempty" validate:"omitempty,min=8,max=64,reference" example:"order-2024-0001"`
}

// FundResponse is the checkout session the customer completes
// swagger:model FundResponse
type FundResponse struct {
	Reference        string               `json:"reference"`
	AuthorizationURL string               `json:"authorization_url"`
	Gateway          models.Gateway       `json:"gateway"`
	Amount           decimal.Decimal      `json:"amount" swaggertype:"string" example:"10000.00"`
	Fee              decimal.Decimal      `json:"fee" swaggertype:"string" example:"250.00"`
	NetAmount        decimal.Decimal      `json:"net_amount" swaggertype:"string" example:"9750.00"`
	Status           models.PaymentStatus `json:"status"`
}

// NewFundHandler returns an HTTP handler that opens a gateway checkout.
// @Summary Fund wallet
// @Description Records a pending funding payment and returns the gateway checkout URL. The wallet is credited with amount minus the gateway fee once the charge is confirmed.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.FundRequest true "Fund Request"
// @Success 201 {object} handlers.FundResponse "Checkout created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, gateway or email"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Reference already used"
// @Failure 502 {object} handlers.ErrorResponse "Gateway unavailable"
// @Router /wallet/fund [post]
// @Security BearerAuth
func NewFundHandler(svc FundingInitializer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req FundRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode fund request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validation.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		gateway := models.Gateway(req.Gateway)

		session, err := svc.InitializeFunding(ctx, services.FundingRequest{
			UserID:    userID,
			Email:     req.Email,
			Amount:    req.Amount,
			Gateway:   gateway,
			Reference: req.Reference,
		})
		if err != nil {
			logger.Log.Errorw("failed to initialize funding", "userID", userID, "amount", req.Amount, "gateway", gateway, "error", err)
			writeServiceError(w, err, "payment not completed, no charge applied")
			return
		}

		writeJSON(w, http.StatusCreated, FundResponse{
			Reference:        session.Reference,
			AuthorizationURL: session.AuthorizationURL,
			Gateway:          session.Gateway,
			Amount:           session.Amount,
			Fee:              session.Fee,
			NetAmount:        session.Net,
			Status:           session.Status,
		})
	}
}
