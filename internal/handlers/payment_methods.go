package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/validation"
)

//go:generate mockgen -source=payment_methods.go -destination=mock_payment_methods_test.go -package=handlers

// PaymentMethodManager defines the interface that the service must implement.
type PaymentMethodManager interface {
	AddBankAccount(ctx context.Context, userID uuid.UUID, gateway models.Gateway, accountNumber, bankCode string) (*models.PaymentMethodDB, error) // resolves and registers the account
	ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethodDB, error)                                                    // user's saved accounts
}

// AddPaymentMethodRequest represents the JSON body for saving a bank account
// swagger:model AddPaymentMethodRequest
type AddPaymentMethodRequest struct {
	// Gateway the account is registered with
	// required: true
	Gateway string `json:"gateway" validate:"required,oneof=paystack flutterwave" example:"paystack"`

	// 10 digit NUBAN
	// required: true
	AccountNumber string `json:"account_number" validate:"required,len=10,number" example:"0123456789"`

	// CBN bank code
	// required: true
	BankCode string `json:"bank_code" validate:"required,min=3,max=6,number" example:"058"`
}

// PaymentMethodResponse is a saved bank account
// swagger:model PaymentMethodResponse
type PaymentMethodResponse struct {
	PaymentMethodID uuid.UUID      `json:"payment_method_id"`
	Gateway         models.Gateway `json:"gateway"`
	BankCode        string         `json:"bank_code"`
	AccountNumber   string         `json:"account_number"`
	AccountName     string         `json:"account_name"`
	Verified        bool           `json:"verified"`
}

func newPaymentMethodResponse(pm models.PaymentMethodDB) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: pm.PaymentMethodID,
		Gateway:         pm.Gateway,
		BankCode:        pm.BankCode,
		AccountNumber:   pm.AccountNumber,
		AccountName:     pm.AccountName,
		Verified:        pm.Verified,
	}
}

// NewAddPaymentMethodHandler returns an HTTP handler that saves a verified bank account.
// @Summary Add bank account
// @Description Resolves the account holder with the gateway and registers the account as a transfer recipient.
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param request body handlers.AddPaymentMethodRequest true "Bank account"
// @Success 201 {object} handlers.PaymentMethodResponse "Account saved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or unresolvable account"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Gateway unavailable"
// @Router /payment-methods [post]
// @Security BearerAuth
func NewAddPaymentMethodHandler(svc PaymentMethodManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req AddPaymentMethodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode payment method request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		gateway := models.Gateway(req.Gateway)

		pm, err := svc.AddBankAccount(ctx, userID, gateway, req.AccountNumber, req.BankCode)
		if err != nil {
			logger.Log.Errorw("failed to add payment method", "userID", userID, "gateway", gateway, "error", err)
			writeServiceError(w, err, "bank account could not be verified, try again later")
			return
		}

		writeJSON(w, http.StatusCreated, newPaymentMethodResponse(*pm))
	}
}

// NewListPaymentMethodsHandler returns an HTTP handler listing the user's bank accounts.
// @Summary List bank accounts
// @Tags payment-methods
// @Produce json
// @Success 200 {array} handlers.PaymentMethodResponse "Saved accounts"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /payment-methods [get]
// @Security BearerAuth
func NewListPaymentMethodsHandler(svc PaymentMethodManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		methods, err := svc.ListPaymentMethods(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}

		resp := make([]PaymentMethodResponse, 0, len(methods))
		for _, pm := range methods {
			resp = append(resp, newPaymentMethodResponse(pm))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
