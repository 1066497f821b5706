package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the only settlement currency of the ledger.
const DefaultCurrency = "NGN"

// WalletStatus is the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusActive WalletStatus = "active"
	WalletStatusFrozen WalletStatus = "frozen"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID  uuid.UUID       `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Currency  string          `json:"currency" db:"currency"`     // Currency code (e.g., NGN)
	Balance   decimal.Decimal `json:"balance" db:"balance"`       // Current balance in the wallet
	Status    WalletStatus    `json:"status" db:"status"`         // active or frozen
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeReversal    TransactionType = "reversal"
)

// IsCredit reports whether entries of this type increase the balance.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeTransferIn, TransactionTypeReversal:
		return true
	}
	return false
}

// IsDebit reports whether entries of this type decrease the balance.
func (t TransactionType) IsDebit() bool {
	return t == TransactionTypeWithdrawal || t == TransactionTypeTransferOut
}

// TransactionStatus is the status of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// WalletTransactionDB represents an immutable ledger entry.
type WalletTransactionDB struct {
	TransactionID uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	WalletID      uuid.UUID         `json:"wallet_id" db:"wallet_id"`
	Type          TransactionType   `json:"type" db:"type"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"` // Always positive, sign comes from Type
	Status        TransactionStatus `json:"status" db:"status"`
	Reference     string            `json:"reference" db:"reference"`
	Description   string            `json:"description" db:"description"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
}

// SignedAmount returns the amount with the sign implied by the entry type.
func (t WalletTransactionDB) SignedAmount() decimal.Decimal {
	if t.Type.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// LedgerBalance sums the signed amounts of completed entries.
func LedgerBalance(txs []WalletTransactionDB) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Status == TransactionStatusCompleted {
			sum = sum.Add(tx.SignedAmount())
		}
	}
	return sum
}
