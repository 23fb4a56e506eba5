// Package notices renders user-facing balance notices.
package notices

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/domain"
)

// Received renders the notice for a balance increase.
func Received(c *domain.Currency, amount, balance decimal.Decimal) string {
	return fmt.Sprintf("You received %s. Balance: %s", c.FormatAmount(amount), c.FormatAmount(balance))
}

// Taken renders the notice for a balance decrease.
func Taken(c *domain.Currency, amount, balance decimal.Decimal) string {
	return fmt.Sprintf("%s was taken from you. Balance: %s", c.FormatAmount(amount), c.FormatAmount(balance))
}

// BalanceSet renders the notice for a balance override.
func BalanceSet(c *domain.Currency, balance decimal.Decimal) string {
	return fmt.Sprintf("Your %s balance was set to %s", c.Name, c.FormatAmount(balance))
}

// PaymentReceived renders the notice for an incoming player payment.
func PaymentReceived(c *domain.Currency, sender string, amount, balance decimal.Decimal) string {
	return fmt.Sprintf("%s sent you %s. Balance: %s", sender, c.FormatAmount(amount), c.FormatAmount(balance))
}

// PaymentsToggled renders the notice for a payments-enabled flip.
func PaymentsToggled(c *domain.Currency, enabled bool) string {
	state := "disabled"
	if enabled {
		state = "enabled"
	}

	return fmt.Sprintf("%s payments are now %s", c.Name, state)
}

// ForOperation maps a replicated operation kind to its rendered notice.
// Returns an empty string for unknown kinds.
func ForOperation(c *domain.Currency, kind string, amount, balance decimal.Decimal) string {
	switch kind {
	case domain.NotifyAdd:
		return Received(c, amount, balance)
	case domain.NotifyRemove:
		return Taken(c, amount, balance)
	case domain.NotifySet:
		return BalanceSet(c, balance)
	case domain.NotifyPaymentsToggle:
		return PaymentsToggled(c, amount.IsPositive())
	default:
		return ""
	}
}
