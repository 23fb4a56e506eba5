// Package tops maintains per-currency balance leaderboards.
package tops

import (
	"sort"
	"sync"

	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/domain"
)

// AccountSource supplies the accounts feeding the local leaderboards.
type AccountSource interface {
	Loaded() []*domain.Account
}

// Manager rebuilds local leaderboards on demand and merges entries
// replicated from other nodes. Entries for one currency come from both
// sources; the merge keeps the higher-balance entry per account.
type Manager struct {
	registry *currencyregistry.Registry
	source   AccountSource

	mu       sync.RWMutex
	local    map[string][]domain.TopEntry
	external map[string][]domain.TopEntry
}

// New returns an empty leaderboard manager.
func New(registry *currencyregistry.Registry, source AccountSource) *Manager {
	return &Manager{
		registry: registry,
		source:   source,
		local:    make(map[string][]domain.TopEntry),
		external: make(map[string][]domain.TopEntry),
	}
}

// Rebuild recomputes every enabled currency's local leaderboard from
// loaded accounts. Hidden accounts are excluded.
func (m *Manager) Rebuild() {
	accounts := m.source.Loaded()

	for _, currency := range m.registry.All() {
		if !currency.LeaderboardEnabled {
			continue
		}

		entries := make([]domain.TopEntry, 0, len(accounts))

		for _, account := range accounts {
			if account.HiddenFromTops() {
				continue
			}

			entries = append(entries, domain.TopEntry{
				AccountID: account.ID,
				Name:      account.Name,
				Balance:   account.BalanceView(currency),
			})
		}

		sortEntries(entries)

		m.mu.Lock()
		m.local[currency.ID] = entries
		m.mu.Unlock()
	}
}

// LocalEntries returns this node's leaderboard for the currency.
func (m *Manager) LocalEntries(currencyID string) []domain.TopEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]domain.TopEntry(nil), m.local[domain.NormalizeCurrencyID(currencyID)]...)
}

// MergeExternal replaces the replicated entries for the currency.
func (m *Manager) MergeExternal(currencyID string, entries []domain.TopEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.external[domain.NormalizeCurrencyID(currencyID)] = append([]domain.TopEntry(nil), entries...)
}

// Snapshot returns the combined cluster-wide leaderboard for the currency,
// limited to the top n entries (n <= 0 returns everything).
func (m *Manager) Snapshot(currencyID string, n int) []domain.TopEntry {
	id := domain.NormalizeCurrencyID(currencyID)

	m.mu.RLock()

	byAccount := make(map[string]domain.TopEntry)

	for _, e := range m.local[id] {
		byAccount[e.AccountID.String()] = e
	}

	for _, e := range m.external[id] {
		if existing, ok := byAccount[e.AccountID.String()]; !ok || e.Balance.GreaterThan(existing.Balance) {
			byAccount[e.AccountID.String()] = e
		}
	}

	m.mu.RUnlock()

	entries := make([]domain.TopEntry, 0, len(byAccount))
	for _, e := range byAccount {
		entries = append(entries, e)
	}

	sortEntries(entries)

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

func sortEntries(entries []domain.TopEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance.Equal(entries[j].Balance) {
			return entries[i].Name < entries[j].Name
		}

		return entries[i].Balance.GreaterThan(entries[j].Balance)
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
}
