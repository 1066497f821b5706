package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// WalletService serves read-only wallet views and freezing.
type WalletService struct {
	wallets  WalletStore
	payments PaymentHistory
}

// NewWalletService creates a new WalletService.
func NewWalletService(wallets WalletStore, payments PaymentHistory) *WalletService {
	return &WalletService{wallets: wallets, payments: payments}
}

// Page clamps paging input to [1, maxPageSize] and a non-negative offset.
func Page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// GetBalance returns the user's wallet. A user without a wallet sees an empty
// active one; wallets are only created by funding or withdrawal.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.wallets.GetBalance(ctx, userID)
	if errors.Is(err, models.ErrWalletNotFound) {
		return &models.WalletDB{
			UserID:   userID,
			Currency: models.DefaultCurrency,
			Balance:  decimal.Zero,
			Status:   models.WalletStatusActive,
		}, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get wallet balance", "userID", userID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// ListTransactions returns a page of the user's ledger, newest first.
func (s *WalletService) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransactionDB, error) {
	limit, offset = Page(limit, offset)

	txs, err := s.wallets.ListTransactions(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list wallet transactions", "userID", userID, "error", err)
		return nil, err
	}
	return txs, nil
}

// ListPayments returns a page of the user's funding and withdrawal records,
// newest first.
func (s *WalletService) ListPayments(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PaymentRecordDB, error) {
	limit, offset = Page(limit, offset)

	recs, err := s.payments.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list payments", "userID", userID, "error", err)
		return nil, err
	}
	return recs, nil
}

// Freeze blocks debits from the user's wallet. Credits still land.
func (s *WalletService) Freeze(ctx context.Context, userID uuid.UUID) error {
	wallet, err := s.wallets.GetBalance(ctx, userID)
	if err != nil {
		return err
	}
	if wallet.Status == models.WalletStatusFrozen {
		return nil
	}
	if err := s.wallets.Freeze(ctx, wallet.WalletID); err != nil {
		logger.Log.Errorw("failed to freeze wallet", "userID", userID, "walletID", wallet.WalletID, "error", err)
		return err
	}
	logger.Log.Infow("wallet frozen", "userID", userID, "walletID", wallet.WalletID)
	return nil
}
