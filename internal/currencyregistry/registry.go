// Package currencyregistry manages registration and lookup of server currencies.
package currencyregistry

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/domain"
)

// Registry holds all registered currencies keyed by lowercase id.
// Registration happens once during startup; lookups afterwards are
// read-only, so no locking is needed.
type Registry struct {
	logger     zerolog.Logger
	currencies map[string]*domain.Currency
}

// New returns an empty registry.
func New(logger zerolog.Logger) *Registry {
	return &Registry{
		logger:     logger,
		currencies: make(map[string]*domain.Currency),
	}
}

// Register adds a currency, rejecting duplicate ids.
func (r *Registry) Register(c *domain.Currency) error {
	id := domain.NormalizeCurrencyID(c.ID)

	if _, ok := r.currencies[id]; ok {
		return domain.ErrCurrencyAlreadyExists
	}

	c.ID = id
	r.currencies[id] = c

	r.logger.Info().Str("currency", id).Msg("currency registered")

	return nil
}

// Get returns the currency by case-insensitive id.
func (r *Registry) Get(id string) (*domain.Currency, error) {
	c, ok := r.currencies[domain.NormalizeCurrencyID(id)]
	if !ok {
		return nil, domain.ErrCurrencyNotFound
	}

	return c, nil
}

// All returns every registered currency ordered by id.
func (r *Registry) All() []*domain.Currency {
	out := make([]*domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// IDs returns every registered currency id ordered alphabetically.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.currencies))
	for id := range r.currencies {
		out = append(out, id)
	}

	sort.Strings(out)

	return out
}

// RegisterDefaults registers the built-in currencies used when no
// custom set is configured: integer "coins" and decimal "money".
func (r *Registry) RegisterDefaults() {
	defaults := []*domain.Currency{
		{
			ID:                 "coins",
			Name:               "Coins",
			Symbol:             "⛀",
			Decimal:            false,
			MaxValue:           decimal.NewFromInt(-1),
			TransferAllowed:    true,
			ExchangeAllowed:    true,
			Synchronizable:     true,
			LeaderboardEnabled: true,
		},
		{
			ID:                 "money",
			Name:               "Money",
			Symbol:             "$",
			Decimal:            true,
			MaxValue:           decimal.NewFromInt(-1),
			TransferAllowed:    true,
			ExchangeAllowed:    true,
			Synchronizable:     true,
			LeaderboardEnabled: true,
		},
	}

	for _, c := range defaults {
		if err := r.Register(c); err != nil {
			r.logger.Error().Err(err).Str("currency", c.ID).Msg("cannot register default currency")
		}
	}
}
