// Package operationengine applies balance operations and their side effects.
package operationengine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/notices"
)

// Accounts provides the account persistence surface needed by the engine.
//
//go:generate mockgen -source engine.go -destination engine_mock.go -package operationengine
type Accounts interface {
	SaveAsync(account *domain.Account)
	ResetBalances(ctx context.Context, currency *domain.Currency) error
}

// Publisher fans operation side effects out to the cluster.
// A nil publisher disables synchronization.
type Publisher interface {
	PublishBalanceUpdate(account *domain.Account)
	PublishTransactionLog(line string)
	PublishCurrencyOperation(accountID uuid.UUID, currencyID, kind string, amount, newBalance decimal.Decimal)
	PublishPaymentNotification(recipientID uuid.UUID, senderName, currencyID string, amount, newBalance decimal.Decimal)
}

// TxLogger receives loggable operation results for the file log.
type TxLogger interface {
	AddOperation(result domain.OperationResult)
}

// Presence answers whether a player is hosted on this node and delivers notices.
type Presence interface {
	IsOnline(name string) bool
	Deliver(accountID uuid.UUID, message string)
}

// Engine gates and applies balance operations.
//
// Side effects of a successful operation are log write, asynchronous
// persistence and an outbound balance publish; all best effort, none of
// them block the caller beyond the in-process mutation.
type Engine struct {
	accounts Accounts
	txlog    TxLogger
	presence Presence
	logger   zerolog.Logger

	logToConsole bool

	// enabled is false only during an administrative reset.
	enabled atomic.Bool

	pubMu     sync.RWMutex
	publisher Publisher
}

// New returns an engine with operations enabled.
// txlog may be nil when file logging is disabled.
func New(accounts Accounts, txlog TxLogger, presence Presence, logger zerolog.Logger, logToConsole bool) *Engine {
	e := &Engine{
		accounts:     accounts,
		txlog:        txlog,
		presence:     presence,
		logger:       logger,
		logToConsole: logToConsole,
	}

	e.enabled.Store(true)

	return e
}

// SetPublisher wires the sync capability in once it is available.
func (e *Engine) SetPublisher(p Publisher) {
	e.pubMu.Lock()
	defer e.pubMu.Unlock()

	e.publisher = p
}

func (e *Engine) pub() Publisher {
	e.pubMu.RLock()
	defer e.pubMu.RUnlock()

	return e.publisher
}

// Enabled reports whether operations are currently allowed.
func (e *Engine) Enabled() bool {
	return e.enabled.Load()
}

// Perform applies the operation and triggers logging, persistence and
// outbound sync. Returns false without side effects while operations are
// disabled, and false after logging when the operation itself fails.
func (e *Engine) Perform(op domain.Operation) bool {
	if !e.enabled.Load() {
		return false
	}

	result := op.Perform()

	if result.Loggable {
		if e.logToConsole {
			e.logger.Info().Msg(result.Log)
		}

		if e.txlog != nil {
			e.txlog.AddOperation(result)
		}

		if p := e.pub(); p != nil {
			p.PublishTransactionLog(result.Log)
		}
	}

	if !result.Success {
		return false
	}

	e.accounts.SaveAsync(op.Target())

	if p := e.pub(); p != nil {
		p.PublishBalanceUpdate(op.Target())
	}

	return true
}

// notify delivers the operation notice locally or, when the player is
// hosted elsewhere, replicates it as a currency-operation message.
func (e *Engine) notify(target *domain.Account, c *domain.Currency, kind string, amount, newBalance decimal.Decimal) {
	if e.presence.IsOnline(target.Name) {
		if msg := notices.ForOperation(c, kind, amount, newBalance); msg != "" {
			e.presence.Deliver(target.ID, msg)
		}

		return
	}

	if p := e.pub(); p != nil {
		p.PublishCurrencyOperation(target.ID, c.ID, kind, amount, newBalance)
	}
}

// Give adds the amount to the target's balance and notifies the player.
func (e *Engine) Give(actor string, target *domain.Account, c *domain.Currency, amount decimal.Decimal) bool {
	op := NewGive(actor, target, c, amount)
	if !e.Perform(op) {
		return false
	}

	e.notify(target, c, domain.NotifyAdd, op.Amount, op.Result().NewBalance)

	return true
}

// Take removes the amount from the target's balance and notifies the player.
func (e *Engine) Take(actor string, target *domain.Account, c *domain.Currency, amount decimal.Decimal) bool {
	op := NewTake(actor, target, c, amount)
	if !e.Perform(op) {
		return false
	}

	e.notify(target, c, domain.NotifyRemove, op.Amount, op.Result().NewBalance)

	return true
}

// SetBalance overrides the target's balance and notifies the player.
func (e *Engine) SetBalance(actor string, target *domain.Account, c *domain.Currency, amount decimal.Decimal) bool {
	op := NewSet(actor, target, c, amount)
	if !e.Perform(op) {
		return false
	}

	e.notify(target, c, domain.NotifySet, op.Amount, op.Result().NewBalance)

	return true
}

// Send transfers the amount between two accounts. On success the sender is
// persisted as well, and the recipient is notified locally or across the
// cluster depending on where they are hosted.
func (e *Engine) Send(from, to *domain.Account, c *domain.Currency, amount decimal.Decimal) bool {
	op := NewSend(from, to, c, amount)
	if !e.Perform(op) {
		return false
	}

	e.accounts.SaveAsync(from)

	result := op.Result()

	if e.presence.IsOnline(to.Name) {
		e.presence.Deliver(to.ID, notices.PaymentReceived(c, from.Name, op.Amount, result.NewBalance))
	} else if p := e.pub(); p != nil {
		p.PublishPaymentNotification(to.ID, from.Name, c.ID, op.Amount, result.NewBalance)
	}

	return true
}

// Exchange converts between two currencies on one account.
func (e *Engine) Exchange(target *domain.Account, from, to *domain.Currency, amount decimal.Decimal) bool {
	return e.Perform(NewExchange(target, from, to, amount))
}

// ResetBalances performs the administrative bulk reset. Operations are
// disabled for the duration so concurrent mutation cannot race the
// overwrite; re-enable is guaranteed on every exit path. Returns
// ErrOperationsDisabled when a reset is already running.
func (e *Engine) ResetBalances(ctx context.Context, currency *domain.Currency) error {
	if !e.enabled.CompareAndSwap(true, false) {
		return domain.ErrOperationsDisabled
	}

	defer e.enabled.Store(true)

	return e.accounts.ResetBalances(ctx, currency)
}
