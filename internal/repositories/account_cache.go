package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

// ErrCacheMiss is returned when no account name is cached for a key.
var ErrCacheMiss = errors.New("account name not cached")

// AccountNameCacheRepository caches bank account names resolved by a gateway.
type AccountNameCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewAccountNameCacheRepository(client *redis.Client, expiration time.Duration) *AccountNameCacheRepository {
	return &AccountNameCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func accountNameKey(gateway models.Gateway, bankCode, accountNumber string) string {
	return fmt.Sprintf("account_name:%s:%s:%s", gateway, bankCode, accountNumber)
}

// GetAccountName returns the cached holder name of an account.
func (r *AccountNameCacheRepository) GetAccountName(ctx context.Context, gateway models.Gateway, bankCode, accountNumber string) (string, error) {
	key := accountNameKey(gateway, bankCode, accountNumber)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

// SetAccountName caches the holder name of an account.
func (r *AccountNameCacheRepository) SetAccountName(ctx context.Context, gateway models.Gateway, bankCode, accountNumber, name string) error {
	key := accountNameKey(gateway, bankCode, accountNumber)
	err := r.client.Set(ctx, key, name, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", name,
		"result", "ok",
		"error", err,
	)

	return err
}
