package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-wallet/internal/facades"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// WithdrawalRequest asks to pay wallet funds out to a saved bank account.
type WithdrawalRequest struct {
	UserID          uuid.UUID
	Amount          decimal.Decimal // Gross, debited from the wallet
	PaymentMethodID uuid.UUID
	Reference       string // Optional idempotency key
	Reason          string
}

// WithdrawalService reserves wallet funds, pays them out through a gateway
// and compensates when the payout fails.
type WithdrawalService struct {
	tx        Transactor
	wallets   WalletStore
	payments  PaymentRecordStore
	methods   PaymentMethodStore
	gateways  Gateways
	fees      FeeCalculator
	publisher Publisher
}

// NewWithdrawalService creates a new WithdrawalService.
func NewWithdrawalService(
	tx Transactor,
	wallets WalletStore,
	payments PaymentRecordStore,
	methods PaymentMethodStore,
	gateways Gateways,
	fees FeeCalculator,
	publisher Publisher,
) *WithdrawalService {
	return &WithdrawalService{
		tx:        tx,
		wallets:   wallets,
		payments:  payments,
		methods:   methods,
		gateways:  gateways,
		fees:      fees,
		publisher: publisher,
	}
}

// RequestWithdrawal debits the gross amount and records the payment in one
// transaction, then asks the gateway to transfer the net amount. A failed
// transfer is compensated and reported as *models.WithdrawalFailedError.
func (s *WithdrawalService) RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*models.PaymentRecordDB, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	method, err := s.methods.Get(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method.UserID != req.UserID || !method.Verified || method.RecipientCode == "" {
		return nil, models.ErrInvalidPaymentMethod
	}
	client, err := s.gateways.Client(method.Gateway)
	if err != nil {
		return nil, err
	}

	quote := s.fees.WithdrawalQuote(req.Amount)
	if !quote.Net.IsPositive() {
		return nil, models.NewValidationError("amount", "does not cover the withdrawal fee")
	}
	reference, err := referenceFor(method.Gateway, req.Reference)
	if err != nil {
		return nil, err
	}
	if req.Reference != "" {
		// Retried keys are answered before the debit checks balance and status.
		existing, err := s.payments.GetByReference(ctx, reference)
		switch {
		case err == nil:
			return matchWithdrawal(req, existing, &models.DuplicateReferenceError{Reference: reference})
		case !errors.Is(err, models.ErrPaymentNotFound):
			logger.Log.Errorw("failed to look up withdrawal reference", "reference", reference, "error", err)
			return nil, err
		}
	}

	rec := &models.PaymentRecordDB{
		UserID:          req.UserID,
		Reference:       reference,
		Gateway:         method.Gateway,
		Type:            models.PaymentTypeWithdrawal,
		Amount:          quote.Amount,
		Fee:             quote.Fee,
		NetAmount:       quote.Net,
		Currency:        models.DefaultCurrency,
		Status:          models.PaymentStatusPending,
		PaymentMethodID: &method.PaymentMethodID,
	}

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		wallet, err := s.wallets.GetOrCreate(ctx, tx, req.UserID, models.DefaultCurrency)
		if err != nil {
			return err
		}
		description := fmt.Sprintf("withdrawal to %s ****%s", method.AccountName, lastDigits(method.AccountNumber, 4))
		if _, err := s.wallets.Debit(ctx, tx, wallet.WalletID, quote.Amount, models.TransactionTypeWithdrawal, reference, description); err != nil {
			return err
		}
		created, err := s.payments.Create(ctx, tx, rec)
		if err != nil {
			return err
		}
		rec = created
		return nil
	})
	if err != nil {
		var dup *models.DuplicateReferenceError
		if errors.As(err, &dup) {
			return s.existingWithdrawal(ctx, req, reference, err)
		}
		logger.Log.Errorw("failed to reserve withdrawal funds", "userID", req.UserID, "reference", reference, "error", err)
		return nil, err
	}

	reason := req.Reason
	if reason == "" {
		reason = "wallet withdrawal"
	}
	transfer, err := client.InitiateTransfer(ctx, facades.TransferRequest{
		RecipientCode: method.RecipientCode,
		Amount:        quote.Net,
		Currency:      rec.Currency,
		Reference:     reference,
		Reason:        reason,
	})
	if err != nil {
		// Compensation is optimistic: the gateway is not asked whether the
		// transfer went through before the funds are returned.
		logger.Log.Errorw("transfer failed, compensating withdrawal", "reference", reference, "gateway", method.Gateway, "error", err)
		compensated, compErr := s.CompensateWithdrawal(ctx, reference, err.Error())
		if compErr != nil {
			logger.Log.Errorw("failed to compensate withdrawal", "reference", reference, "error", compErr)
			return nil, fmt.Errorf("withdrawal %s: compensation failed: %w (transfer error: %v)", reference, compErr, err)
		}
		if compensated.Status != models.PaymentStatusFailed {
			// A webhook settled the transfer while the request was retrying.
			logger.Log.Warnw("transfer error on a settled withdrawal", "reference", reference, "status", compensated.Status, "error", err)
			return compensated, nil
		}
		return nil, &models.WithdrawalFailedError{Reference: reference, Refunded: quote.Amount, Err: err}
	}

	upd := models.GatewayUpdate{GatewayReference: transfer.TransferCode, Response: transfer.Raw}
	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		processing, err := s.payments.MarkProcessing(ctx, tx, reference, upd)
		if err != nil {
			return err
		}
		rec = processing
		return nil
	})
	if err != nil {
		// The transfer is in flight; its webhook also settles a pending record.
		logger.Log.Errorw("failed to mark withdrawal as processing", "reference", reference, "error", err)
		if current, getErr := s.payments.GetByReference(ctx, reference); getErr == nil {
			rec = current
		}
	}

	s.publisher.Publish(ctx, EventWithdrawalInitiated, rec)
	return rec, nil
}

// existingWithdrawal answers a retried request whose idempotency key already
// exists. The rolled back attempt debited nothing.
func (s *WithdrawalService) existingWithdrawal(ctx context.Context, req WithdrawalRequest, reference string, dupErr error) (*models.PaymentRecordDB, error) {
	existing, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, dupErr
	}
	return matchWithdrawal(req, existing, dupErr)
}

// matchWithdrawal returns existing when it is the same user's withdrawal of
// the same amount, and dupErr otherwise.
func matchWithdrawal(req WithdrawalRequest, existing *models.PaymentRecordDB, dupErr error) (*models.PaymentRecordDB, error) {
	if existing.UserID != req.UserID || existing.Type != models.PaymentTypeWithdrawal || !existing.Amount.Equal(req.Amount) {
		return nil, dupErr
	}
	return existing, nil
}

// CompleteWithdrawal marks a withdrawal completed once the gateway confirms
// the transfer. Terminal records are returned unchanged.
func (s *WithdrawalService) CompleteWithdrawal(ctx context.Context, reference string, upd models.GatewayUpdate) (*models.PaymentRecordDB, error) {
	var (
		result  *models.PaymentRecordDB
		applied bool
	)
	err := s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		rec, err := s.lockWithdrawal(ctx, tx, reference)
		if err != nil {
			return err
		}
		if rec.Status.IsTerminal() {
			result = rec
			return nil
		}
		if rec.Status == models.PaymentStatusPending {
			if _, err := s.payments.MarkProcessing(ctx, tx, reference, upd); err != nil {
				return err
			}
		}
		completed, err := s.payments.MarkCompleted(ctx, tx, reference, upd)
		if err != nil {
			return err
		}
		result, applied = completed, true
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to complete withdrawal", "reference", reference, "error", err)
		return nil, err
	}

	if applied {
		s.publisher.Publish(ctx, EventWithdrawalCompleted, result)
	}
	return result, nil
}

// CompensateWithdrawal returns the gross amount of a failed withdrawal to the
// wallet and marks the record failed, in one transaction. The reversal entry
// has a unique ledger reference, so it is applied at most once.
func (s *WithdrawalService) CompensateWithdrawal(ctx context.Context, reference, reason string) (*models.PaymentRecordDB, error) {
	return s.reverse(ctx, reference, reason, false)
}

// RefundWithdrawal returns the funds of a completed withdrawal that the
// gateway later reversed, and marks the record refunded.
func (s *WithdrawalService) RefundWithdrawal(ctx context.Context, reference, reason string) (*models.PaymentRecordDB, error) {
	return s.reverse(ctx, reference, reason, true)
}

func (s *WithdrawalService) reverse(ctx context.Context, reference, reason string, afterCompletion bool) (*models.PaymentRecordDB, error) {
	var (
		result  *models.PaymentRecordDB
		applied bool
	)
	err := s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		rec, err := s.lockWithdrawal(ctx, tx, reference)
		if err != nil {
			return err
		}

		eligible := !rec.Status.IsTerminal()
		if afterCompletion {
			eligible = rec.Status == models.PaymentStatusCompleted
		}
		if !eligible {
			result = rec
			return nil
		}

		wallet, err := s.wallets.GetOrCreate(ctx, tx, rec.UserID, rec.Currency)
		if err != nil {
			return err
		}
		description := fmt.Sprintf("reversal of withdrawal %s", reference)
		if _, err := s.wallets.Credit(ctx, tx, wallet.WalletID, rec.Amount, models.TransactionTypeReversal, reversalReference(reference), description); err != nil {
			return err
		}

		var updated *models.PaymentRecordDB
		if afterCompletion {
			updated, err = s.payments.MarkRefunded(ctx, tx, reference)
		} else {
			updated, err = s.payments.MarkFailed(ctx, tx, reference, reason)
		}
		if err != nil {
			return err
		}
		result, applied = updated, true
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to reverse withdrawal", "reference", reference, "error", err)
		return nil, err
	}

	if applied {
		logger.Log.Infow("withdrawal reversed", "reference", reference, "refunded", result.Amount, "status", result.Status)
		s.publisher.Publish(ctx, EventWithdrawalReversed, result)
	}
	return result, nil
}

func (s *WithdrawalService) lockWithdrawal(ctx context.Context, tx *sqlx.Tx, reference string) (*models.PaymentRecordDB, error) {
	rec, err := s.payments.GetForUpdate(ctx, tx, reference)
	if err != nil {
		return nil, err
	}
	if rec.Type != models.PaymentTypeWithdrawal {
		return nil, models.NewValidationError("reference", "is not a withdrawal")
	}
	return rec, nil
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
