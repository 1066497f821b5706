// Package fees computes gateway charges for wallet funding and withdrawal.
// Everything here is pure: no I/O, no globals, all numbers come from Config.
package fees

import (
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// FundingSchedule is fee = min(amount*Percent + Flat, Cap).
type FundingSchedule struct {
	Percent decimal.Decimal // Fraction, 0.015 means 1.5%
	Flat    decimal.Decimal
	Cap     decimal.Decimal
}

// WithdrawalTier charges Fee for amounts up to and including UpTo.
type WithdrawalTier struct {
	UpTo decimal.Decimal
	Fee  decimal.Decimal
}

// WithdrawalSchedule is a tiered flat fee. Tiers must be sorted by UpTo;
// amounts above the last tier pay Above.
type WithdrawalSchedule struct {
	Tiers []WithdrawalTier
	Above decimal.Decimal
}

// Config holds every fee table used by the Calculator.
type Config struct {
	Funding    map[models.Gateway]FundingSchedule
	Withdrawal WithdrawalSchedule
}

// DefaultConfig returns the published NGN schedules of the supported gateways.
func DefaultConfig() Config {
	return Config{
		Funding: map[models.Gateway]FundingSchedule{
			models.GatewayPaystack: {
				Percent: decimal.RequireFromString("0.015"),
				Flat:    decimal.NewFromInt(100),
				Cap:     decimal.NewFromInt(2000),
			},
			models.GatewayFlutterwave: {
				Percent: decimal.RequireFromString("0.014"),
				Flat:    decimal.Zero,
				Cap:     decimal.NewFromInt(2000),
			},
		},
		Withdrawal: WithdrawalSchedule{
			Tiers: []WithdrawalTier{
				{UpTo: decimal.NewFromInt(5000), Fee: decimal.NewFromInt(10)},
				{UpTo: decimal.NewFromInt(50000), Fee: decimal.NewFromInt(25)},
			},
			Above: decimal.NewFromInt(50),
		},
	}
}

// Quote is the split of a requested amount into fee and net.
type Quote struct {
	Amount decimal.Decimal
	Fee    decimal.Decimal
	Net    decimal.Decimal
}

// Calculator applies a Config.
type Calculator struct {
	cfg Config
}

// New creates a Calculator for the given schedules.
func New(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// FundingFee returns the fee charged by gateway for collecting amount.
func (c *Calculator) FundingFee(amount decimal.Decimal, gateway models.Gateway) (decimal.Decimal, error) {
	schedule, ok := c.cfg.Funding[gateway]
	if !ok {
		return decimal.Zero, models.NewValidationError("gateway", "no funding fee schedule for "+string(gateway))
	}
	fee := amount.Mul(schedule.Percent).Add(schedule.Flat)
	if !schedule.Cap.IsZero() && fee.GreaterThan(schedule.Cap) {
		fee = schedule.Cap
	}
	return fee.Round(2), nil
}

// WithdrawalFee returns the flat fee for paying out amount.
func (c *Calculator) WithdrawalFee(amount decimal.Decimal) decimal.Decimal {
	for _, tier := range c.cfg.Withdrawal.Tiers {
		if amount.LessThanOrEqual(tier.UpTo) {
			return tier.Fee
		}
	}
	return c.cfg.Withdrawal.Above
}

// FundingQuote splits a funding amount; Net is what the wallet is credited with.
func (c *Calculator) FundingQuote(amount decimal.Decimal, gateway models.Gateway) (Quote, error) {
	fee, err := c.FundingFee(amount, gateway)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Amount: amount, Fee: fee, Net: amount.Sub(fee)}, nil
}

// WithdrawalQuote splits a withdrawal; Net is what the gateway pays out.
func (c *Calculator) WithdrawalQuote(amount decimal.Decimal) Quote {
	fee := c.WithdrawalFee(amount)
	return Quote{Amount: amount, Fee: fee, Net: amount.Sub(fee)}
}
