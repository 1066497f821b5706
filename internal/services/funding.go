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
	"github.com/sbilibin2017/gw-payment-wallet/internal/validation"
	"github.com/shopspring/decimal"
)

// FundingRequest asks to top up a wallet through a gateway checkout.
type FundingRequest struct {
	UserID    uuid.UUID
	Email     string
	Amount    decimal.Decimal
	Gateway   models.Gateway
	Reference string // Optional idempotency key
}

// FundingSession is returned to the customer to complete the payment.
type FundingSession struct {
	Reference        string
	AuthorizationURL string
	Gateway          models.Gateway
	Amount           decimal.Decimal
	Fee              decimal.Decimal
	Net              decimal.Decimal
	Status           models.PaymentStatus
}

// FundingService moves money from a gateway charge into a wallet.
type FundingService struct {
	tx          Transactor
	wallets     WalletStore
	payments    PaymentRecordStore
	gateways    Gateways
	fees        FeeCalculator
	publisher   Publisher
	callbackURL string
}

// NewFundingService creates a new FundingService.
func NewFundingService(
	tx Transactor,
	wallets WalletStore,
	payments PaymentRecordStore,
	gateways Gateways,
	fees FeeCalculator,
	publisher Publisher,
	callbackURL string,
) *FundingService {
	return &FundingService{
		tx:          tx,
		wallets:     wallets,
		payments:    payments,
		gateways:    gateways,
		fees:        fees,
		publisher:   publisher,
		callbackURL: callbackURL,
	}
}

// InitializeFunding records a pending payment and opens a checkout for it.
// The record exists before the gateway is called, so no charge can exist
// without a reference we know about.
func (s *FundingService) InitializeFunding(ctx context.Context, req FundingRequest) (*FundingSession, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := validation.Var("email", req.Email, "required"); err != nil {
		return nil, err
	}
	client, err := s.gateways.Client(req.Gateway)
	if err != nil {
		return nil, err
	}
	quote, err := s.fees.FundingQuote(req.Amount, req.Gateway)
	if err != nil {
		return nil, err
	}
	if !quote.Net.IsPositive() {
		return nil, models.NewValidationError("amount", "does not cover the gateway fee")
	}
	reference, err := referenceFor(req.Gateway, req.Reference)
	if err != nil {
		return nil, err
	}

	rec := &models.PaymentRecordDB{
		UserID:    req.UserID,
		Reference: reference,
		Gateway:   req.Gateway,
		Type:      models.PaymentTypeFunding,
		Amount:    quote.Amount,
		Fee:       quote.Fee,
		NetAmount: quote.Net,
		Currency:  models.DefaultCurrency,
		Status:    models.PaymentStatusPending,
	}

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.wallets.GetOrCreate(ctx, tx, req.UserID, models.DefaultCurrency); err != nil {
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
			return s.existingSession(ctx, req, reference, err)
		}
		logger.Log.Errorw("failed to create funding record", "userID", req.UserID, "reference", reference, "error", err)
		return nil, err
	}

	session, err := client.InitializeCharge(ctx, facades.ChargeRequest{
		Reference:   reference,
		Amount:      quote.Amount,
		Currency:    rec.Currency,
		Email:       req.Email,
		CallbackURL: s.callbackURL,
	})
	if err != nil {
		logger.Log.Errorw("failed to initialize charge", "reference", reference, "gateway", req.Gateway, "error", err)
		if _, failErr := s.FailFunding(ctx, reference, err.Error()); failErr != nil {
			logger.Log.Errorw("failed to mark funding as failed", "reference", reference, "error", failErr)
		}
		return nil, fmt.Errorf("payment not completed, no charge applied: %w", err)
	}

	upd := models.GatewayUpdate{
		GatewayReference: session.GatewayReference,
		AuthorizationURL: session.AuthorizationURL,
	}
	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		processing, err := s.payments.MarkProcessing(ctx, tx, reference, upd)
		if err != nil {
			return err
		}
		rec = processing
		return nil
	})
	if err != nil {
		// The checkout is open; completion accepts a pending record too.
		logger.Log.Errorw("failed to mark funding as processing", "reference", reference, "error", err)
	}

	s.publisher.Publish(ctx, EventFundingInitiated, rec)

	return &FundingSession{
		Reference:        reference,
		AuthorizationURL: session.AuthorizationURL,
		Gateway:          req.Gateway,
		Amount:           quote.Amount,
		Fee:              quote.Fee,
		Net:              quote.Net,
		Status:           rec.Status,
	}, nil
}

// existingSession answers a retried request whose idempotency key already
// exists. The same request gets the original session; anything else conflicts.
func (s *FundingService) existingSession(ctx context.Context, req FundingRequest, reference string, dupErr error) (*FundingSession, error) {
	existing, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, dupErr
	}
	if existing.UserID != req.UserID || existing.Type != models.PaymentTypeFunding ||
		existing.Gateway != req.Gateway || !existing.Amount.Equal(req.Amount) {
		return nil, dupErr
	}

	session := &FundingSession{
		Reference: existing.Reference,
		Gateway:   existing.Gateway,
		Amount:    existing.Amount,
		Fee:       existing.Fee,
		Net:       existing.NetAmount,
		Status:    existing.Status,
	}
	if existing.AuthorizationURL != nil {
		session.AuthorizationURL = *existing.AuthorizationURL
	}
	return session, nil
}

// CompleteFunding settles a funding payment. It verifies the charge with the
// gateway and, when paid, credits the wallet and completes the record in one
// transaction. Terminal records are returned unchanged.
func (s *FundingService) CompleteFunding(ctx context.Context, reference string) (*models.PaymentRecordDB, error) {
	rec, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if rec.Type != models.PaymentTypeFunding {
		return nil, models.NewValidationError("reference", "is not a funding payment")
	}
	if rec.Status.IsTerminal() {
		return rec, nil
	}

	client, err := s.gateways.Client(rec.Gateway)
	if err != nil {
		return nil, err
	}
	verification, err := client.VerifyCharge(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to verify charge", "reference", reference, "gateway", rec.Gateway, "error", err)
		return nil, err
	}

	switch verification.Status {
	case facades.ChargeSucceeded:
		if verification.Amount.LessThan(rec.Amount) {
			reason := fmt.Sprintf("amount mismatch: paid %s, expected %s",
				verification.Amount.StringFixed(2), rec.Amount.StringFixed(2))
			logger.Log.Errorw("underpaid charge needs manual review", "reference", reference, "reason", reason)
			return s.FailFunding(ctx, reference, reason)
		}
		return s.settle(ctx, reference, verification)
	case facades.ChargeFailed:
		reason := verification.Message
		if reason == "" {
			reason = "charge failed"
		}
		return s.FailFunding(ctx, reference, reason)
	default:
		return rec, models.ErrPaymentPending
	}
}

func (s *FundingService) settle(ctx context.Context, reference string, verification *facades.ChargeVerification) (*models.PaymentRecordDB, error) {
	var (
		result  *models.PaymentRecordDB
		applied bool
	)
	err := s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		rec, err := s.payments.GetForUpdate(ctx, tx, reference)
		if err != nil {
			return err
		}
		// Another request settled it while we were talking to the gateway.
		if rec.Status.IsTerminal() {
			result = rec
			return nil
		}

		upd := models.GatewayUpdate{GatewayReference: verification.GatewayReference, Response: verification.Raw}
		if rec.Status == models.PaymentStatusPending {
			if _, err := s.payments.MarkProcessing(ctx, tx, reference, upd); err != nil {
				return err
			}
		}

		wallet, err := s.wallets.GetOrCreate(ctx, tx, rec.UserID, rec.Currency)
		if err != nil {
			return err
		}
		description := fmt.Sprintf("wallet funding via %s", rec.Gateway)
		if _, err := s.wallets.Credit(ctx, tx, wallet.WalletID, rec.NetAmount, models.TransactionTypeDeposit, reference, description); err != nil {
			return err
		}

		completed, err := s.payments.MarkCompleted(ctx, tx, reference, upd)
		if err != nil {
			return err
		}
		result, applied = completed, true
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to settle funding", "reference", reference, "error", err)
		return nil, err
	}

	if applied {
		logger.Log.Infow("funding completed", "reference", reference, "userID", result.UserID, "net", result.NetAmount)
		s.publisher.Publish(ctx, EventFundingCompleted, result)
	}
	return result, nil
}

// FailFunding marks a funding payment failed. The wallet is never touched.
func (s *FundingService) FailFunding(ctx context.Context, reference, reason string) (*models.PaymentRecordDB, error) {
	var (
		result  *models.PaymentRecordDB
		applied bool
	)
	err := s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		rec, err := s.payments.GetForUpdate(ctx, tx, reference)
		if err != nil {
			return err
		}
		if rec.Type != models.PaymentTypeFunding {
			return models.NewValidationError("reference", "is not a funding payment")
		}
		if rec.Status.IsTerminal() {
			result = rec
			return nil
		}
		failed, err := s.payments.MarkFailed(ctx, tx, reference, reason)
		if err != nil {
			return err
		}
		result, applied = failed, true
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to fail funding", "reference", reference, "error", err)
		return nil, err
	}

	if applied {
		s.publisher.Publish(ctx, EventFundingFailed, result)
	}
	return result, nil
}

// GetPayment returns one of the user's payment records.
func (s *FundingService) GetPayment(ctx context.Context, userID uuid.UUID, reference string) (*models.PaymentRecordDB, error) {
	rec, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, models.ErrPaymentNotFound
	}
	return rec, nil
}

// validateAmount accepts positive amounts with at most kobo precision.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return models.NewValidationError("amount", "must be greater than zero")
	}
	if !amount.Equal(amount.Round(2)) {
		return models.NewValidationError("amount", "must have at most two decimal places")
	}
	return nil
}
