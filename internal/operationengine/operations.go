package operationengine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/domain"
)

// GiveOperation adds an amount to the target's balance.
type GiveOperation struct {
	Actor    string
	Currency *domain.Currency
	Amount   decimal.Decimal

	target *domain.Account
	result *domain.OperationResult
}

// NewGive returns a give operation for the target account.
func NewGive(actor string, target *domain.Account, currency *domain.Currency, amount decimal.Decimal) *GiveOperation {
	return &GiveOperation{Actor: actor, Currency: currency, Amount: amount, target: target}
}

// Target implements domain.Operation.
func (o *GiveOperation) Target() *domain.Account { return o.target }

// Result returns the stored outcome; valid after Perform.
func (o *GiveOperation) Result() domain.OperationResult { return *o.result }

// Perform implements domain.Operation.
func (o *GiveOperation) Perform() domain.OperationResult {
	o.Amount = o.Currency.FloorIfNeeded(o.Amount)

	if !o.Amount.IsPositive() {
		return o.store(domain.Failure(""))
	}

	newBalance := o.target.Balance(o.Currency).Add(o.Amount)
	if !o.Currency.UnderLimit(newBalance) {
		return o.store(domain.Failure(fmt.Sprintf(
			"%s -> %s: +%s rejected: max balance exceeded",
			o.Actor, o.target.Name, o.Currency.FormatAmount(o.Amount),
		)))
	}

	o.target.Add(o.Currency, o.Amount)

	return o.store(domain.OperationResult{
		Success:    true,
		Loggable:   true,
		NewBalance: o.target.Balance(o.Currency),
		Log: fmt.Sprintf("%s -> %s: +%s. New balance: %s",
			o.Actor, o.target.Name, o.Currency.FormatAmount(o.Amount), o.Currency.FormatAmount(o.target.Balance(o.Currency))),
	})
}

func (o *GiveOperation) store(r domain.OperationResult) domain.OperationResult {
	o.result = &r
	return r
}

// TakeOperation removes an amount from the target's balance.
type TakeOperation struct {
	Actor    string
	Currency *domain.Currency
	Amount   decimal.Decimal

	target *domain.Account
	result *domain.OperationResult
}

// NewTake returns a take operation for the target account.
func NewTake(actor string, target *domain.Account, currency *domain.Currency, amount decimal.Decimal) *TakeOperation {
	return &TakeOperation{Actor: actor, Currency: currency, Amount: amount, target: target}
}

// Target implements domain.Operation.
func (o *TakeOperation) Target() *domain.Account { return o.target }

// Result returns the stored outcome; valid after Perform.
func (o *TakeOperation) Result() domain.OperationResult { return *o.result }

// Perform implements domain.Operation.
func (o *TakeOperation) Perform() domain.OperationResult {
	o.Amount = o.Currency.FloorIfNeeded(o.Amount)

	if !o.Amount.IsPositive() {
		return o.store(domain.Failure(""))
	}

	if !o.target.Has(o.Currency, o.Amount) {
		return o.store(domain.Failure(fmt.Sprintf(
			"%s -> %s: -%s rejected: insufficient balance",
			o.Actor, o.target.Name, o.Currency.FormatAmount(o.Amount),
		)))
	}

	o.target.Remove(o.Currency, o.Amount)

	return o.store(domain.OperationResult{
		Success:    true,
		Loggable:   true,
		NewBalance: o.target.Balance(o.Currency),
		Log: fmt.Sprintf("%s -> %s: -%s. New balance: %s",
			o.Actor, o.target.Name, o.Currency.FormatAmount(o.Amount), o.Currency.FormatAmount(o.target.Balance(o.Currency))),
	})
}

func (o *TakeOperation) store(r domain.OperationResult) domain.OperationResult {
	o.result = &r
	return r
}

// SetOperation overrides the target's balance.
type SetOperation struct {
	Actor    string
	Currency *domain.Currency
	Amount   decimal.Decimal

	target *domain.Account
	result *domain.OperationResult
}

// NewSet returns a set operation for the target account.
func NewSet(actor string, target *domain.Account, currency *domain.Currency, amount decimal.Decimal) *SetOperation {
	return &SetOperation{Actor: actor, Currency: currency, Amount: amount, target: target}
}

// Target implements domain.Operation.
func (o *SetOperation) Target() *domain.Account { return o.target }

// Result returns the stored outcome; valid after Perform.
func (o *SetOperation) Result() domain.OperationResult { return *o.result }

// Perform implements domain.Operation.
func (o *SetOperation) Perform() domain.OperationResult {
	o.Amount = o.Currency.FloorIfNeeded(o.Amount)

	if o.Amount.IsNegative() || !o.Currency.UnderLimit(o.Amount) {
		return o.store(domain.Failure(""))
	}

	o.target.Set(o.Currency, o.Amount)

	return o.store(domain.OperationResult{
		Success:    true,
		Loggable:   true,
		NewBalance: o.target.Balance(o.Currency),
		Log: fmt.Sprintf("%s -> %s: =%s",
			o.Actor, o.target.Name, o.Currency.FormatAmount(o.Amount)),
	})
}

func (o *SetOperation) store(r domain.OperationResult) domain.OperationResult {
	o.result = &r
	return r
}

// SendOperation transfers an amount between two player accounts.
// Target is the recipient; the engine persists the sender separately.
type SendOperation struct {
	Currency *domain.Currency
	Amount   decimal.Decimal

	from   *domain.Account
	to     *domain.Account
	result *domain.OperationResult
}

// NewSend returns a player-to-player transfer operation.
func NewSend(from, to *domain.Account, currency *domain.Currency, amount decimal.Decimal) *SendOperation {
	return &SendOperation{Currency: currency, Amount: amount, from: from, to: to}
}

// Target implements domain.Operation.
func (o *SendOperation) Target() *domain.Account { return o.to }

// Sender returns the paying account.
func (o *SendOperation) Sender() *domain.Account { return o.from }

// Result returns the stored outcome; valid after Perform.
func (o *SendOperation) Result() domain.OperationResult { return *o.result }

// Perform implements domain.Operation.
func (o *SendOperation) Perform() domain.OperationResult {
	o.Amount = o.Currency.FloorIfNeeded(o.Amount)

	switch {
	case !o.Currency.TransferAllowed:
		return o.store(domain.Failure(""))
	case !o.Amount.IsPositive():
		return o.store(domain.Failure(""))
	case o.from.ID == o.to.ID:
		return o.store(domain.Failure(""))
	case o.Currency.MinTransferAmount.IsPositive() && o.Amount.LessThan(o.Currency.MinTransferAmount):
		return o.store(domain.Failure(""))
	case !o.to.PaymentsEnabled(o.Currency):
		return o.store(domain.Failure(""))
	case !o.from.Has(o.Currency, o.Amount):
		return o.store(domain.Failure(""))
	case !o.Currency.UnderLimit(o.to.Balance(o.Currency).Add(o.Amount)):
		return o.store(domain.Failure(""))
	}

	o.from.Remove(o.Currency, o.Amount)
	o.to.Add(o.Currency, o.Amount)

	return o.store(domain.OperationResult{
		Success:    true,
		Loggable:   true,
		NewBalance: o.to.Balance(o.Currency),
		Log: fmt.Sprintf("%s -> %s: sent %s. Recipient balance: %s",
			o.from.Name, o.to.Name, o.Currency.FormatAmount(o.Amount), o.Currency.FormatAmount(o.to.Balance(o.Currency))),
	})
}

func (o *SendOperation) store(r domain.OperationResult) domain.OperationResult {
	o.result = &r
	return r
}

// ExchangeOperation converts an amount between two of the target's currencies.
type ExchangeOperation struct {
	From   *domain.Currency
	To     *domain.Currency
	Amount decimal.Decimal

	target *domain.Account
	result *domain.OperationResult
}

// NewExchange returns an exchange operation for the target account.
func NewExchange(target *domain.Account, from, to *domain.Currency, amount decimal.Decimal) *ExchangeOperation {
	return &ExchangeOperation{From: from, To: to, Amount: amount, target: target}
}

// Target implements domain.Operation.
func (o *ExchangeOperation) Target() *domain.Account { return o.target }

// Result returns the stored outcome; valid after Perform.
func (o *ExchangeOperation) Result() domain.OperationResult { return *o.result }

// Perform implements domain.Operation.
func (o *ExchangeOperation) Perform() domain.OperationResult {
	o.Amount = o.From.FloorIfNeeded(o.Amount)

	if !o.From.ExchangeAllowed || !o.Amount.IsPositive() {
		return o.store(domain.Failure(""))
	}

	if !o.From.CanExchangeTo(o.To) {
		return o.store(domain.Failure(""))
	}

	if !o.target.Has(o.From, o.Amount) {
		return o.store(domain.Failure(""))
	}

	converted := o.From.ExchangeResult(o.To, o.Amount)
	if !converted.IsPositive() {
		return o.store(domain.Failure(""))
	}

	if !o.To.UnderLimit(o.target.Balance(o.To).Add(converted)) {
		return o.store(domain.Failure(""))
	}

	o.target.Remove(o.From, o.Amount)
	o.target.Add(o.To, converted)

	return o.store(domain.OperationResult{
		Success:    true,
		Loggable:   true,
		NewBalance: o.target.Balance(o.To),
		Log: fmt.Sprintf("%s exchanged %s for %s",
			o.target.Name, o.From.FormatAmount(o.Amount), o.To.FormatAmount(converted)),
	})
}

func (o *ExchangeOperation) store(r domain.OperationResult) domain.OperationResult {
	o.result = &r
	return r
}
