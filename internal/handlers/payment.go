package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/services"
)

//go:generate mockgen -source=payment.go -destination=mock_payment_test.go -package=handlers

// PaymentGetter defines the interface that the service must implement.
type PaymentGetter interface {
	GetPayment(ctx context.Context, userID uuid.UUID, reference string) (*models.PaymentRecordDB, error)
}

// PaymentLister lists the user's payment records.
type PaymentLister interface {
	ListPayments(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PaymentRecordDB, error)
}

// PaymentsResponse is a page of payment records, newest first
// swagger:model PaymentsResponse
type PaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// NewGetPaymentHandler returns an HTTP handler that looks up one of the user's payments.
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} handlers.PaymentResponse "Payment"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/{reference} [get]
// @Security BearerAuth
func NewGetPaymentHandler(svc PaymentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		rec, err := svc.GetPayment(r.Context(), userID, chi.URLParam(r, "reference"))
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, newPaymentResponse(rec))
	}
}

// NewListPaymentsHandler returns an HTTP handler for the user's funding and withdrawal history.
// @Summary List payments
// @Tags payments
// @Produce json
// @Param limit query int false "Page size, at most 100" default(20)
// @Param offset query int false "Records to skip" default(0)
// @Success 200 {object} handlers.PaymentsResponse "Payments"
// @Failure 400 {object} handlers.ErrorResponse "Invalid paging"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /payments [get]
// @Security BearerAuth
func NewListPaymentsHandler(svc PaymentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		limit, err := queryInt(r, "limit")
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		offset, err := queryInt(r, "offset")
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}

		limit, offset = services.Page(limit, offset)

		recs, err := svc.ListPayments(r.Context(), userID, limit, offset)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}

		resp := PaymentsResponse{Payments: make([]PaymentResponse, 0, len(recs)), Limit: limit, Offset: offset}
		for i := range recs {
			resp.Payments = append(resp.Payments, newPaymentResponse(&recs[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
