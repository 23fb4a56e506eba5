package domain

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that an account with the given name is already registered.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrInsufficientBalance indicates that the account balance is too low for the operation.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrPaymentsDisabled indicates that the recipient disabled incoming payments.
	ErrPaymentsDisabled = errors.New("payments disabled")
)

// NormalizeName lowercases a player name for case-insensitive lookups.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ChangeListener observes eventful balance mutations of an account.
type ChangeListener func(a *Account, currencyID string, balance decimal.Decimal)

// CurrencySettings holds per-currency account preferences.
type CurrencySettings struct {
	PaymentsEnabled bool `json:"payments_enabled"`
}

// Account holds a player's per-currency balances and settings.
//
// Mutation is confined to the primary execution context; the internal
// lock only lets background snapshots (sync publishes, leaderboards,
// HTTP reads) observe balances safely. Two mutation paths exist: the
// eventful Set/Add/Remove methods fire the registered change listener,
// while SetSilent does not and is reserved for remote apply and
// reconciliation.
type Account struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time

	mu             sync.RWMutex
	balances       map[string]decimal.Decimal
	settings       map[string]CurrencySettings
	hiddenFromTops bool

	savePlanned atomic.Bool
	nextSyncAt  atomic.Int64
	onChange    ChangeListener
}

// NewAccount returns an empty account; balances materialize lazily
// at each currency's start value.
func NewAccount(id uuid.UUID, name string) *Account {
	return &Account{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		balances:  make(map[string]decimal.Decimal),
		settings:  make(map[string]CurrencySettings),
	}
}

// HiddenFromTops reports whether the account opted out of leaderboards.
func (a *Account) HiddenFromTops() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.hiddenFromTops
}

// SetHiddenFromTops stores the leaderboard opt-out flag.
func (a *Account) SetHiddenFromTops(hidden bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.hiddenFromTops = hidden
}

// SetChangeListener registers the listener invoked on eventful mutations.
func (a *Account) SetChangeListener(l ChangeListener) {
	a.onChange = l
}

// Balance returns the account's balance for the currency,
// materializing it at the currency's start value on first access.
func (a *Account) Balance(c *Currency) decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	v, ok := a.balances[c.ID]
	if !ok {
		v = c.ClampToLimits(c.StartValue)
		a.balances[c.ID] = v
	}

	return v
}

// BalanceView returns the balance without materializing a missing entry.
// Safe for read-only snapshots off the primary context.
func (a *Account) BalanceView(c *Currency) decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if v, ok := a.balances[c.ID]; ok {
		return v
	}

	return c.ClampToLimits(c.StartValue)
}

// Has reports whether the balance covers the given amount.
func (a *Account) Has(c *Currency, amount decimal.Decimal) bool {
	return a.Balance(c).GreaterThanOrEqual(amount)
}

// Set stores the clamped value and fires the change listener.
func (a *Account) Set(c *Currency, v decimal.Decimal) {
	a.SetSilent(c, v)

	if a.onChange != nil {
		a.onChange(a, c.ID, a.BalanceView(c))
	}
}

// SetSilent stores the clamped value without firing the change listener.
// Used by remote apply and reconciliation so that replicated state does
// not trigger another round of local side effects.
func (a *Account) SetSilent(c *Currency, v decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balances[c.ID] = c.ClampToLimits(c.FloorIfNeeded(v))
}

// Add increases the balance by the amount, clamped to the currency limits.
func (a *Account) Add(c *Currency, amount decimal.Decimal) {
	a.Set(c, a.Balance(c).Add(amount))
}

// Remove decreases the balance by the amount. Callers check Has first;
// the result never drops below zero.
func (a *Account) Remove(c *Currency, amount decimal.Decimal) {
	a.Set(c, a.Balance(c).Sub(amount))
}

// ResetBalance restores the currency balance to its start value.
func (a *Account) ResetBalance(c *Currency) {
	a.Set(c, c.ClampToLimits(c.StartValue))
}

// ResetAllBalances drops every materialized balance.
func (a *Account) ResetAllBalances() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balances = make(map[string]decimal.Decimal)
}

// Balances returns a copy of all materialized balances keyed by currency id.
func (a *Account) Balances() map[string]decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make(map[string]decimal.Decimal, len(a.balances))
	for id, v := range a.balances {
		out[id] = v
	}

	return out
}

// SetBalancesRaw replaces the balance map wholesale. Reserved for the
// storage layer when materializing an account from a stored record.
func (a *Account) SetBalancesRaw(balances map[string]decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balances = make(map[string]decimal.Decimal, len(balances))
	for id, v := range balances {
		a.balances[id] = v
	}
}

// PaymentsEnabled reports whether the account accepts incoming payments
// in the currency. Defaults to true until explicitly toggled.
func (a *Account) PaymentsEnabled(c *Currency) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.settings[c.ID]
	if !ok {
		return true
	}

	return s.PaymentsEnabled
}

// SetPaymentsEnabled stores the payments-enabled setting for the currency.
func (a *Account) SetPaymentsEnabled(c *Currency, enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.settings[c.ID] = CurrencySettings{PaymentsEnabled: enabled}
}

// TogglePayments flips the payments-enabled setting and returns the
// new state.
func (a *Account) TogglePayments(c *Currency) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.settings[c.ID]
	if !ok {
		s = CurrencySettings{PaymentsEnabled: true}
	}

	s.PaymentsEnabled = !s.PaymentsEnabled
	a.settings[c.ID] = s

	return s.PaymentsEnabled
}

// SettingsMap returns a copy of all materialized per-currency settings.
func (a *Account) SettingsMap() map[string]CurrencySettings {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make(map[string]CurrencySettings, len(a.settings))
	for id, s := range a.settings {
		out[id] = s
	}

	return out
}

// SetSettingsRaw replaces the settings map wholesale. Reserved for the
// storage layer when materializing an account from a stored record.
func (a *Account) SetSettingsRaw(settings map[string]CurrencySettings) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.settings = make(map[string]CurrencySettings, len(settings))
	for id, s := range settings {
		a.settings[id] = s
	}
}

// MarkSavePlanned flags a pending unpersisted local write.
func (a *Account) MarkSavePlanned() { a.savePlanned.Store(true) }

// ClearSavePlanned clears the pending-write flag once persisted.
func (a *Account) ClearSavePlanned() { a.savePlanned.Store(false) }

// IsSavePlanned reports whether a local write awaits persistence.
func (a *Account) IsSavePlanned() bool { return a.savePlanned.Load() }

// DeferSync pushes the reconciliation cooldown to now+d.
func (a *Account) DeferSync(d time.Duration) {
	a.nextSyncAt.Store(time.Now().Add(d).UnixNano())
}

// SyncReady reports whether the reconciliation cooldown elapsed.
func (a *Account) SyncReady() bool {
	return time.Now().UnixNano() >= a.nextSyncAt.Load()
}
