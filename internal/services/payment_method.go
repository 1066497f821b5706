package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/validation"
)

// bankAccount is a NUBAN and CBN bank code pair.
type bankAccount struct {
	AccountNumber string `json:"account_number" validate:"required,len=10,number"`
	BankCode      string `json:"bank_code" validate:"required,min=3,max=6,number"`
}

// PaymentMethodService registers bank accounts users can withdraw to.
type PaymentMethodService struct {
	methods  PaymentMethodStore
	cache    AccountNameCache
	gateways Gateways
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(methods PaymentMethodStore, cache AccountNameCache, gateways Gateways) *PaymentMethodService {
	return &PaymentMethodService{
		methods:  methods,
		cache:    cache,
		gateways: gateways,
	}
}

// AddBankAccount resolves the account holder, registers the account as a
// transfer recipient with the gateway and stores it as verified.
func (s *PaymentMethodService) AddBankAccount(ctx context.Context, userID uuid.UUID, gateway models.Gateway, accountNumber, bankCode string) (*models.PaymentMethodDB, error) {
	if err := validation.Struct(&bankAccount{AccountNumber: accountNumber, BankCode: bankCode}); err != nil {
		return nil, err
	}
	client, err := s.gateways.Client(gateway)
	if err != nil {
		return nil, err
	}

	name, err := s.accountName(ctx, client, accountNumber, bankCode)
	if err != nil {
		return nil, err
	}

	recipientCode, err := client.CreateRecipient(ctx, accountNumber, bankCode, name)
	if err != nil {
		logger.Log.Errorw("failed to create transfer recipient", "userID", userID, "gateway", gateway, "error", err)
		return nil, err
	}

	method, err := s.methods.Save(ctx, &models.PaymentMethodDB{
		UserID:        userID,
		Gateway:       gateway,
		BankCode:      bankCode,
		AccountNumber: accountNumber,
		AccountName:   name,
		RecipientCode: recipientCode,
		Verified:      true,
	})
	if err != nil {
		logger.Log.Errorw("failed to save payment method", "userID", userID, "error", err)
		return nil, err
	}
	return method, nil
}

// accountName reads the holder name from cache, falling back to the gateway.
func (s *PaymentMethodService) accountName(ctx context.Context, client GatewayClient, accountNumber, bankCode string) (string, error) {
	gateway := client.Gateway()

	name, err := s.cache.GetAccountName(ctx, gateway, bankCode, accountNumber)
	if err == nil && name != "" {
		return name, nil
	}

	account, err := client.ResolveAccount(ctx, accountNumber, bankCode)
	if err != nil {
		logger.Log.Errorw("failed to resolve bank account", "gateway", gateway, "bank_code", bankCode, "error", err)
		return "", err
	}

	if err := s.cache.SetAccountName(ctx, gateway, bankCode, accountNumber, account.AccountName); err != nil {
		logger.Log.Errorw("failed to cache account name", "gateway", gateway, "bank_code", bankCode, "error", err)
	}
	return account.AccountName, nil
}

// ListPaymentMethods returns the user's saved bank accounts.
func (s *PaymentMethodService) ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethodDB, error) {
	methods, err := s.methods.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list payment methods", "userID", userID, "error", err)
		return nil, err
	}
	return methods, nil
}
