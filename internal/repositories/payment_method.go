package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

const paymentMethodColumns = `payment_method_id, user_id, gateway, bank_code, account_number, account_name, recipient_code, verified, created_at`

// PaymentMethodRepository stores users' verified bank accounts.
type PaymentMethodRepository struct {
	db *sqlx.DB
}

func NewPaymentMethodRepository(db *sqlx.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// Save inserts the account, or refreshes name, recipient and verification if
// the user already registered it with the same gateway.
func (r *PaymentMethodRepository) Save(ctx context.Context, pm *models.PaymentMethodDB) (*models.PaymentMethodDB, error) {
	if pm.PaymentMethodID == uuid.Nil {
		pm.PaymentMethodID = uuid.New()
	}
	pm.CreatedAt = time.Now().UTC()

	const query = `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, gateway, bank_code, account_number)
		DO UPDATE SET account_name = EXCLUDED.account_name,
			recipient_code = EXCLUDED.recipient_code,
			verified = EXCLUDED.verified
		RETURNING ` + paymentMethodColumns

	args := []any{pm.PaymentMethodID, pm.UserID, pm.Gateway, pm.BankCode, pm.AccountNumber,
		pm.AccountName, pm.RecipientCode, pm.Verified, pm.CreatedAt}

	var saved models.PaymentMethodDB
	err := r.db.GetContext(ctx, &saved, query, args...)
	logQuery(query, args, saved.PaymentMethodID, err)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Get returns a payment method by id.
func (r *PaymentMethodRepository) Get(ctx context.Context, id uuid.UUID) (*models.PaymentMethodDB, error) {
	const query = `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE payment_method_id = $1`

	var pm models.PaymentMethodDB
	err := r.db.GetContext(ctx, &pm, query, id)
	logQuery(query, []any{id}, pm.Verified, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrInvalidPaymentMethod
		}
		return nil, err
	}
	return &pm, nil
}

// ListByUser returns the user's payment methods, newest first.
func (r *PaymentMethodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethodDB, error) {
	const query = `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE user_id = $1 ORDER BY created_at DESC`

	methods := []models.PaymentMethodDB{}
	err := r.db.SelectContext(ctx, &methods, query, userID)
	logQuery(query, []any{userID}, len(methods), err)
	if err != nil {
		return nil, err
	}
	return methods, nil
}
