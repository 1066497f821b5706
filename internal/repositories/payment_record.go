package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

const paymentRecordColumns = `payment_id, user_id, reference, gateway, type, amount, fee, net_amount, currency, status,
	gateway_reference, gateway_response, failure_reason, payment_method_id, authorization_url,
	created_at, updated_at, completed_at`

// PaymentRecordRepository stores payment records and guards their status
// transitions.
type PaymentRecordRepository struct {
	db *sqlx.DB
}

func NewPaymentRecordRepository(db *sqlx.DB) *PaymentRecordRepository {
	return &PaymentRecordRepository{db: db}
}

// Create inserts a new record. The reference is the idempotency key: a second
// insert with the same reference fails with DuplicateReferenceError.
func (r *PaymentRecordRepository) Create(ctx context.Context, tx *sqlx.Tx, rec *models.PaymentRecordDB) (*models.PaymentRecordDB, error) {
	if rec.PaymentID == uuid.Nil {
		rec.PaymentID = uuid.New()
	}
	if rec.Currency == "" {
		rec.Currency = models.DefaultCurrency
	}
	if rec.Status == "" {
		rec.Status = models.PaymentStatusPending
	}
	if len(rec.GatewayResponse) == 0 {
		rec.GatewayResponse = []byte("{}")
	}
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	const query = `
		INSERT INTO payment_records (` + paymentRecordColumns + `)
		VALUES (:payment_id, :user_id, :reference, :gateway, :type, :amount, :fee, :net_amount, :currency, :status,
			:gateway_reference, :gateway_response, :failure_reason, :payment_method_id, :authorization_url,
			:created_at, :updated_at, :completed_at)
	`
	_, err := tx.NamedExecContext(ctx, query, rec)
	logQuery(query, []any{rec.Reference, rec.Type, rec.Amount, rec.Gateway}, rec.PaymentID, err)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &models.DuplicateReferenceError{Reference: rec.Reference}
		}
		return nil, err
	}
	return rec, nil
}

// GetByReference reads a record without locking it.
func (r *PaymentRecordRepository) GetByReference(ctx context.Context, reference string) (*models.PaymentRecordDB, error) {
	const query = `SELECT ` + paymentRecordColumns + ` FROM payment_records WHERE reference = $1`
	return r.get(ctx, r.db, query, reference)
}

// GetForUpdate reads a record and locks it until tx ends.
func (r *PaymentRecordRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, reference string) (*models.PaymentRecordDB, error) {
	const query = `SELECT ` + paymentRecordColumns + ` FROM payment_records WHERE reference = $1 FOR UPDATE`
	return r.get(ctx, tx, query, reference)
}

func (r *PaymentRecordRepository) get(ctx context.Context, q sqlx.QueryerContext, query, reference string) (*models.PaymentRecordDB, error) {
	var rec models.PaymentRecordDB
	err := sqlx.GetContext(ctx, q, &rec, query, reference)
	logQuery(query, []any{reference}, rec.Status, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListByUser returns the user's payment records, newest first.
func (r *PaymentRecordRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PaymentRecordDB, error) {
	const query = `SELECT ` + paymentRecordColumns + ` FROM payment_records
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	recs := []models.PaymentRecordDB{}
	err := r.db.SelectContext(ctx, &recs, query, userID, limit, offset)
	logQuery(query, []any{userID, limit, offset}, len(recs), err)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// MarkProcessing moves a record to processing once the gateway accepted it.
func (r *PaymentRecordRepository) MarkProcessing(ctx context.Context, tx *sqlx.Tx, reference string, upd models.GatewayUpdate) (*models.PaymentRecordDB, error) {
	const query = `
		UPDATE payment_records SET
			status = $2,
			gateway_reference = COALESCE($3, gateway_reference),
			gateway_response = COALESCE($4, gateway_response),
			authorization_url = COALESCE($5, authorization_url),
			updated_at = NOW()
		WHERE reference = $1
		RETURNING ` + paymentRecordColumns
	return r.transition(ctx, tx, reference, models.PaymentStatusProcessing, query,
		nullable(upd.GatewayReference), nullableJSON(upd.Response), nullable(upd.AuthorizationURL))
}

// MarkCompleted moves a processing record to completed.
func (r *PaymentRecordRepository) MarkCompleted(ctx context.Context, tx *sqlx.Tx, reference string, upd models.GatewayUpdate) (*models.PaymentRecordDB, error) {
	const query = `
		UPDATE payment_records SET
			status = $2,
			gateway_reference = COALESCE($3, gateway_reference),
			gateway_response = COALESCE($4, gateway_response),
			completed_at = NOW(),
			updated_at = NOW()
		WHERE reference = $1
		RETURNING ` + paymentRecordColumns
	return r.transition(ctx, tx, reference, models.PaymentStatusCompleted, query,
		nullable(upd.GatewayReference), nullableJSON(upd.Response))
}

// MarkFailed moves a pending or processing record to failed.
func (r *PaymentRecordRepository) MarkFailed(ctx context.Context, tx *sqlx.Tx, reference, reason string) (*models.PaymentRecordDB, error) {
	const query = `
		UPDATE payment_records SET
			status = $2,
			failure_reason = $3,
			updated_at = NOW()
		WHERE reference = $1
		RETURNING ` + paymentRecordColumns
	return r.transition(ctx, tx, reference, models.PaymentStatusFailed, query, reason)
}

// MarkRefunded moves a completed record to refunded.
func (r *PaymentRecordRepository) MarkRefunded(ctx context.Context, tx *sqlx.Tx, reference string) (*models.PaymentRecordDB, error) {
	const query = `
		UPDATE payment_records SET
			status = $2,
			updated_at = NOW()
		WHERE reference = $1
		RETURNING ` + paymentRecordColumns
	return r.transition(ctx, tx, reference, models.PaymentStatusRefunded, query)
}

// transition locks the record and applies query only along an edge of the
// state machine. Re-applying the current status, or a terminal status to an
// already terminal record, returns the stored record unchanged so replays and
// late notifications are harmless.
func (r *PaymentRecordRepository) transition(
	ctx context.Context,
	tx *sqlx.Tx,
	reference string,
	to models.PaymentStatus,
	query string,
	extra ...any,
) (*models.PaymentRecordDB, error) {
	current, err := r.GetForUpdate(ctx, tx, reference)
	if err != nil {
		return nil, err
	}

	switch {
	case current.Status == to:
		return current, nil
	case current.Status.CanTransitionTo(to):
	case current.Status.IsTerminal() && to.IsTerminal():
		logger.Log.Warnw("ignoring transition of terminal payment",
			"reference", reference, "status", current.Status, "requested", to)
		return current, nil
	default:
		return nil, &models.IllegalTransitionError{Reference: reference, From: current.Status, To: to}
	}

	args := append([]any{reference, to}, extra...)
	var rec models.PaymentRecordDB
	err = tx.GetContext(ctx, &rec, query, args...)
	logQuery(query, args, rec.Status, err)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
