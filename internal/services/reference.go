package services

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/sbilibin2017/gw-payment-wallet/internal/validation"
)

// NewReference generates a payment reference such as PSK_01HZX3....
func NewReference(g models.Gateway) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	return g.ReferencePrefix() + id.String()
}

// referenceFor returns the caller's idempotency key, or a fresh reference.
func referenceFor(g models.Gateway, key string) (string, error) {
	if key == "" {
		return NewReference(g), nil
	}
	if err := validation.Var("reference", key, "min=8,max=64,reference"); err != nil {
		return "", err
	}
	for _, gw := range models.Gateways {
		if prefix := gw.ReferencePrefix(); strings.HasPrefix(strings.ToUpper(key), prefix) {
			return "", models.NewValidationError("reference", fmt.Sprintf("prefix %s is reserved for generated references", prefix))
		}
	}
	return key, nil
}

// reversalReference is the ledger reference of the compensation for reference.
func reversalReference(reference string) string {
	return reference + ":reversal"
}
