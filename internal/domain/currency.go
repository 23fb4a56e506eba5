// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyNotFound indicates that the currency is not registered.
	ErrCurrencyNotFound = errors.New("currency not found")
	// ErrCurrencyAlreadyExists indicates that a currency with the given id is already registered.
	ErrCurrencyAlreadyExists = errors.New("currency already exists")
	// ErrExchangeDisabled indicates that the currency does not allow exchanges.
	ErrExchangeDisabled = errors.New("currency exchange disabled")
	// ErrExchangeRateNotFound indicates that no exchange rate exists for the target currency.
	ErrExchangeRateNotFound = errors.New("no exchange rate for target currency")
)

// Currency describes a single server currency and its rules.
//
// MaxValue below zero means the balance is unbounded from above.
type Currency struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	Symbol             string                     `json:"symbol"`
	Decimal            bool                       `json:"decimal"`
	StartValue         decimal.Decimal            `json:"start_value"`
	MinTransferAmount  decimal.Decimal            `json:"min_transfer_amount"`
	MaxValue           decimal.Decimal            `json:"max_value"`
	TransferAllowed    bool                       `json:"transfer_allowed"`
	ExchangeAllowed    bool                       `json:"exchange_allowed"`
	ExchangeRates      map[string]decimal.Decimal `json:"exchange_rates"`
	Synchronizable     bool                       `json:"synchronizable"`
	LeaderboardEnabled bool                       `json:"leaderboard_enabled"`
}

// NormalizeCurrencyID lowercases a currency id for case-insensitive lookups.
func NormalizeCurrencyID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// FloorIfNeeded truncates the fractional part for non-decimal currencies.
func (c *Currency) FloorIfNeeded(v decimal.Decimal) decimal.Decimal {
	if c.Decimal {
		return v
	}

	return v.Floor()
}

// UnderLimit reports whether the value fits under the currency's max value.
func (c *Currency) UnderLimit(v decimal.Decimal) bool {
	if c.MaxValue.IsNegative() {
		return true
	}

	if c.MaxValue.IsZero() {
		return true
	}

	return v.LessThanOrEqual(c.MaxValue)
}

// ClampToLimits bounds the value to [0, MaxValue].
func (c *Currency) ClampToLimits(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}

	if c.MaxValue.IsPositive() && v.GreaterThan(c.MaxValue) {
		return c.MaxValue
	}

	return v
}

// CanExchangeTo reports whether an exchange rate to the target currency exists.
func (c *Currency) CanExchangeTo(to *Currency) bool {
	if !c.ExchangeAllowed {
		return false
	}

	_, ok := c.ExchangeRates[to.ID]

	return ok
}

// ExchangeResult converts the amount into the target currency
// using the configured rate, floored for non-decimal targets.
func (c *Currency) ExchangeResult(to *Currency, amount decimal.Decimal) decimal.Decimal {
	rate, ok := c.ExchangeRates[to.ID]
	if !ok {
		return decimal.Zero
	}

	return to.FloorIfNeeded(amount.Mul(rate))
}

// FormatAmount renders the amount with the currency symbol.
func (c *Currency) FormatAmount(v decimal.Decimal) string {
	return c.FloorIfNeeded(v).String() + c.Symbol
}
