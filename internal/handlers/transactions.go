package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/services"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions_test.go -package=handlers

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransactionDB, error)
}

// TransactionsResponse is a page of ledger entries, newest first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []models.WalletTransactionDB `json:"transactions"`
	Limit        int                          `json:"limit"`
	Offset       int                          `json:"offset"`
}

// NewListTransactionsHandler returns an HTTP handler for the wallet ledger history.
// @Summary List wallet transactions
// @Tags wallet
// @Produce json
// @Param limit query int false "Page size, at most 100" default(20)
// @Param offset query int false "Entries to skip" default(0)
// @Success 200 {object} handlers.TransactionsResponse "Ledger entries"
// @Failure 400 {object} handlers.ErrorResponse "Invalid paging"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

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

		txs, err := svc.ListTransactions(ctx, userID, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
			writeServiceError(w, err, "")
			return
		}
		if txs == nil {
			txs = []models.WalletTransactionDB{}
		}

		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: txs, Limit: limit, Offset: offset})
	}
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
