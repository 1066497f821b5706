package services

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-wallet/internal/facades"
	"github.com/sbilibin2017/gw-payment-wallet/internal/fees"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error // Commits when fn returns nil, rolls back otherwise
}

// WalletStore mutates balances together with their ledger entries.
type WalletStore interface {
	GetOrCreate(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, currency string) (*models.WalletDB, error) // Returns the wallet locked FOR UPDATE
	Credit(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID, amount decimal.Decimal, txType models.TransactionType, reference, description string) (*models.WalletTransactionDB, error)
	Debit(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID, amount decimal.Decimal, txType models.TransactionType, reference, description string) (*models.WalletTransactionDB, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)                                      // Non-locking read
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.WalletTransactionDB, error) // Newest first
	Freeze(ctx context.Context, walletID uuid.UUID) error
}

// PaymentRecordStore persists payment records and guards their transitions.
type PaymentRecordStore interface {
	Create(ctx context.Context, tx *sqlx.Tx, rec *models.PaymentRecordDB) (*models.PaymentRecordDB, error)
	GetByReference(ctx context.Context, reference string) (*models.PaymentRecordDB, error)
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, reference string) (*models.PaymentRecordDB, error)
	MarkProcessing(ctx context.Context, tx *sqlx.Tx, reference string, upd models.GatewayUpdate) (*models.PaymentRecordDB, error)
	MarkCompleted(ctx context.Context, tx *sqlx.Tx, reference string, upd models.GatewayUpdate) (*models.PaymentRecordDB, error)
	MarkFailed(ctx context.Context, tx *sqlx.Tx, reference, reason string) (*models.PaymentRecordDB, error)
	MarkRefunded(ctx context.Context, tx *sqlx.Tx, reference string) (*models.PaymentRecordDB, error)
}

// PaymentHistory lists a user's payments.
type PaymentHistory interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PaymentRecordDB, error) // Newest first
}

// PaymentMethodStore persists verified bank accounts.
type PaymentMethodStore interface {
	Save(ctx context.Context, pm *models.PaymentMethodDB) (*models.PaymentMethodDB, error) // Upserts by user, gateway and account
	Get(ctx context.Context, id uuid.UUID) (*models.PaymentMethodDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethodDB, error)
}

// AccountNameCache caches account holder names resolved by a gateway.
type AccountNameCache interface {
	GetAccountName(ctx context.Context, gateway models.Gateway, bankCode, accountNumber string) (string, error)
	SetAccountName(ctx context.Context, gateway models.Gateway, bankCode, accountNumber, name string) error
}

// GatewayClient is one payment provider. Errors are already classified as
// *models.GatewayClientError or *models.GatewayTransientError.
type GatewayClient interface {
	Gateway() models.Gateway
	InitializeCharge(ctx context.Context, req facades.ChargeRequest) (*facades.ChargeSession, error)
	VerifyCharge(ctx context.Context, reference string) (*facades.ChargeVerification, error)
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*facades.ResolvedAccount, error)
	CreateRecipient(ctx context.Context, accountNumber, bankCode, accountName string) (string, error)
	InitiateTransfer(ctx context.Context, req facades.TransferRequest) (*facades.TransferResult, error)
	ParseEvent(body []byte) (*models.WebhookEvent, error)
}

// FeeCalculator prices funding and withdrawals.
type FeeCalculator interface {
	FundingQuote(amount decimal.Decimal, gateway models.Gateway) (fees.Quote, error)
	WithdrawalQuote(amount decimal.Decimal) fees.Quote
}

// FundingSettler settles funding payments reported by a webhook.
type FundingSettler interface {
	CompleteFunding(ctx context.Context, reference string) (*models.PaymentRecordDB, error)
	FailFunding(ctx context.Context, reference, reason string) (*models.PaymentRecordDB, error)
}

// WithdrawalSettler settles withdrawals reported by a webhook.
type WithdrawalSettler interface {
	CompleteWithdrawal(ctx context.Context, reference string, upd models.GatewayUpdate) (*models.PaymentRecordDB, error)
	CompensateWithdrawal(ctx context.Context, reference, reason string) (*models.PaymentRecordDB, error)
	RefundWithdrawal(ctx context.Context, reference, reason string) (*models.PaymentRecordDB, error)
}

// Publisher emits payment lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, eventType string, rec *models.PaymentRecordDB)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}
