// Package balancecache manages a snapshot cache of account balances.
//
// Reads are lock-free with respect to other accounts and never touch the
// persistent store. The cache serves hot-path balance queries (for example
// from the HTTP surface) on the primary context without store latency.
// It is a cache, not the source of truth: the account is authoritative
// and this structure may transiently lag it.
package balancecache

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/domain"
)

// Cache maps (account, currency) to the last observed balance.
type Cache struct {
	// accountID -> *shard; sharded per account so one account's
	// update cannot stall reads of another.
	accounts sync.Map
}

type shard struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

func (c *Cache) shardFor(accountID uuid.UUID) *shard {
	if v, ok := c.accounts.Load(accountID); ok {
		return v.(*shard)
	}

	v, _ := c.accounts.LoadOrStore(accountID, &shard{balances: make(map[string]decimal.Decimal)})

	return v.(*shard)
}

// Get returns the cached balance, defaulting to zero for unknown pairs.
func (c *Cache) Get(accountID uuid.UUID, currencyID string) decimal.Decimal {
	v, ok := c.accounts.Load(accountID)
	if !ok {
		return decimal.Zero
	}

	s := v.(*shard)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.balances[domain.NormalizeCurrencyID(currencyID)]
}

// Set stores a single balance for the account.
func (c *Cache) Set(accountID uuid.UUID, currencyID string, value decimal.Decimal) {
	s := c.shardFor(accountID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[domain.NormalizeCurrencyID(currencyID)] = value
}

// SetAll atomically replaces every cached balance of the account.
func (c *Cache) SetAll(accountID uuid.UUID, balances map[string]decimal.Decimal) {
	s := c.shardFor(accountID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances = make(map[string]decimal.Decimal, len(balances))
	for id, v := range balances {
		s.balances[domain.NormalizeCurrencyID(id)] = v
	}
}

// RefreshFrom re-reads the given currencies through balanceOf and merges
// them into the account's cached snapshot.
func (c *Cache) RefreshFrom(accountID uuid.UUID, currencies []*domain.Currency, balanceOf func(*domain.Currency) decimal.Decimal) {
	s := c.shardFor(accountID)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, currency := range currencies {
		s.balances[currency.ID] = balanceOf(currency)
	}
}
