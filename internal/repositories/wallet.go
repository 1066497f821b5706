package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/shopspring/decimal"
)

const walletColumns = `wallet_id, user_id, currency, balance, status, created_at, updated_at`

const walletTransactionColumns = `transaction_id, wallet_id, type, amount, status, reference, description, created_at, completed_at`

// WalletRepository is the only writer of wallet balances. Every balance
// change is written together with its ledger entry in the caller's transaction.
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetOrCreate returns the user's wallet, creating it on first use, locked
// FOR UPDATE until tx ends.
func (r *WalletRepository) GetOrCreate(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, currency string) (*models.WalletDB, error) {
	if currency == "" {
		currency = models.DefaultCurrency
	}

	const insert = `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	args := []any{uuid.New(), userID, currency, models.WalletStatusActive}
	_, err := tx.ExecContext(ctx, insert, args...)
	logQuery(insert, args, nil, err)
	if err != nil {
		return nil, err
	}

	const query = `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`
	var wallet models.WalletDB
	err = tx.GetContext(ctx, &wallet, query, userID)
	logQuery(query, []any{userID}, wallet, err)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit adds amount to the wallet and records a completed ledger entry.
// Frozen wallets still accept credits.
func (r *WalletRepository) Credit(
	ctx context.Context,
	tx *sqlx.Tx,
	walletID uuid.UUID,
	amount decimal.Decimal,
	txType models.TransactionType,
	reference, description string,
) (*models.WalletTransactionDB, error) {
	if !txType.IsCredit() {
		return nil, models.NewValidationError("type", string(txType)+" is not a credit")
	}
	return r.apply(ctx, tx, walletID, amount, txType, reference, description)
}

// Debit subtracts amount from the wallet and records a completed ledger
// entry. The balance is checked after the row lock is taken, so two
// concurrent debits can never both pass.
func (r *WalletRepository) Debit(
	ctx context.Context,
	tx *sqlx.Tx,
	walletID uuid.UUID,
	amount decimal.Decimal,
	txType models.TransactionType,
	reference, description string,
) (*models.WalletTransactionDB, error) {
	if !txType.IsDebit() {
		return nil, models.NewValidationError("type", string(txType)+" is not a debit")
	}
	return r.apply(ctx, tx, walletID, amount, txType, reference, description)
}

func (r *WalletRepository) apply(
	ctx context.Context,
	tx *sqlx.Tx,
	walletID uuid.UUID,
	amount decimal.Decimal,
	txType models.TransactionType,
	reference, description string,
) (*models.WalletTransactionDB, error) {
	if !amount.IsPositive() {
		return nil, models.NewValidationError("amount", "must be greater than zero")
	}
	if !amount.Equal(amount.Round(2)) {
		return nil, models.NewValidationError("amount", "must have at most two decimal places")
	}
	if reference == "" {
		return nil, models.NewValidationError("reference", "must not be empty")
	}

	wallet, err := r.lock(ctx, tx, walletID)
	if err != nil {
		return nil, err
	}

	balance := wallet.Balance.Add(amount)
	if txType.IsDebit() {
		if wallet.Status == models.WalletStatusFrozen {
			return nil, models.ErrWalletFrozen
		}
		if wallet.Balance.LessThan(amount) {
			return nil, &models.InsufficientBalanceError{Balance: wallet.Balance, Requested: amount}
		}
		balance = wallet.Balance.Sub(amount)
	}

	now := time.Now().UTC()
	entry := &models.WalletTransactionDB{
		TransactionID: uuid.New(),
		WalletID:      walletID,
		Type:          txType,
		Amount:        amount,
		Status:        models.TransactionStatusCompleted,
		Reference:     reference,
		Description:   description,
		CreatedAt:     now,
		CompletedAt:   &now,
	}

	const insert = `
		INSERT INTO wallet_transactions (` + walletTransactionColumns + `)
		VALUES (:transaction_id, :wallet_id, :type, :amount, :status, :reference, :description, :created_at, :completed_at)
	`
	_, err = tx.NamedExecContext(ctx, insert, entry)
	logQuery(insert, []any{walletID, txType, amount, reference}, nil, err)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &models.DuplicateReferenceError{Reference: reference}
		}
		return nil, err
	}

	const update = `UPDATE wallets SET balance = $2, updated_at = NOW() WHERE wallet_id = $1`
	_, err = tx.ExecContext(ctx, update, walletID, balance)
	logQuery(update, []any{walletID, balance}, balance, err)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// lock reads the wallet row under an exclusive row lock.
func (r *WalletRepository) lock(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 FOR UPDATE`

	var wallet models.WalletDB
	err := tx.GetContext(ctx, &wallet, query, walletID)
	logQuery(query, []any{walletID}, wallet, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// GetBalance reads the user's wallet without locking. For display only.
func (r *WalletRepository) GetBalance(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, userID)
	logQuery(query, []any{userID}, wallet, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// ListTransactions returns the user's ledger entries, newest first.
func (r *WalletRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransactionDB, error) {
	const query = `
		SELECT t.transaction_id, t.wallet_id, t.type, t.amount, t.status, t.reference, t.description, t.created_at, t.completed_at
		FROM wallet_transactions t
		JOIN wallets w ON w.wallet_id = t.wallet_id
		WHERE w.user_id = $1
		ORDER BY t.created_at DESC, t.transaction_id
		LIMIT $2 OFFSET $3
	`

	txs := []models.WalletTransactionDB{}
	err := r.db.SelectContext(ctx, &txs, query, userID, limit, offset)
	logQuery(query, []any{userID, limit, offset}, len(txs), err)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// Freeze blocks further debits from the wallet.
func (r *WalletRepository) Freeze(ctx context.Context, walletID uuid.UUID) error {
	const query = `UPDATE wallets SET status = $2, updated_at = NOW() WHERE wallet_id = $1`

	res, err := r.db.ExecContext(ctx, query, walletID, models.WalletStatusFrozen)
	logQuery(query, []any{walletID}, nil, err)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrWalletNotFound
	}
	return nil
}
