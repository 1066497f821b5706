package services

import (
	"fmt"

	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

// Gateways holds one client per supported provider.
type Gateways struct {
	Paystack    GatewayClient
	Flutterwave GatewayClient
}

// Client returns the client for g.
func (gs Gateways) Client(g models.Gateway) (GatewayClient, error) {
	var client GatewayClient
	switch g {
	case models.GatewayPaystack:
		client = gs.Paystack
	case models.GatewayFlutterwave:
		client = gs.Flutterwave
	default:
		return nil, models.NewValidationError("gateway", fmt.Sprintf("unsupported gateway %q", g))
	}
	if client == nil {
		return nil, models.NewValidationError("gateway", fmt.Sprintf("gateway %q is not configured", g))
	}
	return client, nil
}
