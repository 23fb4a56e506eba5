// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/balancecache"
	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/sched"
	"github.com/vergecraft/coinsync/pkg/identitypkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Load(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	LoadByName(ctx context.Context, name string) (*domain.Account, error)
	Save(ctx context.Context, account *domain.Account) error
	ResetBalances(ctx context.Context, currencyID string) error
}

// Publisher fans account events out to the rest of the cluster.
// A nil publisher disables synchronization; every call site treats
// absence as a no-op.
type Publisher interface {
	PublishBalanceUpdate(account *domain.Account)
	PublishUserCreateRequest(playerName string)
	PublishPaymentsToggle(accountID uuid.UUID, currencyID string, enabled bool)
}

// Service owns the in-memory registry of loaded accounts.
//
// Account mutation is confined to the primary execution context; the
// loaded-map itself is guarded so read-only lookups may come from
// background goroutines (HTTP handlers, timers).
type Service struct {
	repo     Repo
	cache    *balancecache.Cache
	registry *currencyregistry.Registry
	loop     *sched.Loop
	logger   zerolog.Logger

	autoRegister   bool
	syncCooldown   time.Duration
	walletPageSize int

	mu     sync.RWMutex
	byID   map[uuid.UUID]*domain.Account
	byName map[string]*domain.Account

	pubMu     sync.RWMutex
	publisher Publisher
}

// Option configures optional service behavior.
type Option func(*Service)

// WithAutoRegister enables account materialization for unknown names.
func WithAutoRegister(enabled bool) Option {
	return func(s *Service) { s.autoRegister = enabled }
}

// WithSyncCooldown sets the reconciliation cooldown applied after loads and saves.
func WithSyncCooldown(d time.Duration) Option {
	return func(s *Service) { s.syncCooldown = d }
}

// WithWalletPageSize sets the default wallet listing page size.
func WithWalletPageSize(n int) Option {
	return func(s *Service) { s.walletPageSize = n }
}

// New returns account service struct to manage account bussines logic.
func New(repo Repo, cache *balancecache.Cache, registry *currencyregistry.Registry, loop *sched.Loop, logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:           repo,
		cache:          cache,
		registry:       registry,
		loop:           loop,
		logger:         logger,
		syncCooldown:   30 * time.Second,
		walletPageSize: 10,
		byID:           make(map[uuid.UUID]*domain.Account),
		byName:         make(map[string]*domain.Account),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetPublisher wires the sync capability in once it is available.
func (s *Service) SetPublisher(p Publisher) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.publisher = p
}

func (s *Service) pub() Publisher {
	s.pubMu.RLock()
	defer s.pubMu.RUnlock()

	return s.publisher
}

// register indexes the account and hooks the balance cache into its
// eventful mutations.
func (s *Service) register(account *domain.Account) *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byID[account.ID]; ok {
		return existing
	}

	account.SetChangeListener(func(a *domain.Account, currencyID string, balance decimal.Decimal) {
		s.cache.Set(a.ID, currencyID, balance)
	})

	account.DeferSync(s.syncCooldown)

	s.byID[account.ID] = account
	s.byName[domain.NormalizeName(account.Name)] = account

	s.cache.RefreshFrom(account.ID, s.registry.All(), func(c *domain.Currency) decimal.Decimal {
		return account.BalanceView(c)
	})

	return account
}

// Lookup returns the loaded account without touching the store.
func (s *Service) Lookup(id uuid.UUID) (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]

	return a, ok
}

// LookupByName returns the loaded account by case-insensitive player name.
func (s *Service) LookupByName(name string) (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byName[domain.NormalizeName(name)]

	return a, ok
}

// Loaded returns a snapshot of all loaded accounts.
func (s *Service) Loaded() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Account, 0, len(s.byID))
	for _, a := range s.byID {
		out = append(out, a)
	}

	return out
}

// RefreshCache re-snapshots the account's balances into the balance cache.
// Needed after silent mutations, which bypass the change listener.
func (s *Service) RefreshCache(account *domain.Account) {
	s.cache.RefreshFrom(account.ID, s.registry.All(), func(c *domain.Currency) decimal.Decimal {
		return account.BalanceView(c)
	})
}

// GetOrFetch returns the loaded account or pulls it from the store.
func (s *Service) GetOrFetch(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if a, ok := s.Lookup(id); ok {
		return a, nil
	}

	a, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.register(a), nil
}

// GetOrFetchByName returns the loaded account by name or pulls it from the store.
func (s *Service) GetOrFetchByName(ctx context.Context, name string) (*domain.Account, error) {
	if a, ok := s.LookupByName(name); ok {
		return a, nil
	}

	a, err := s.repo.LoadByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.register(a), nil
}

// Create materializes and persists a brand new account.
func (s *Service) Create(ctx context.Context, id uuid.UUID, name string) (*domain.Account, error) {
	account := s.register(domain.NewAccount(id, name))

	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// AutoRegister derives a deterministic id for the player name, creates the
// account, persists it and announces it to the cluster. Returns
// ErrAccountNotFound when auto-registration is disabled.
func (s *Service) AutoRegister(ctx context.Context, name string) (*domain.Account, error) {
	if !s.autoRegister {
		return nil, domain.ErrAccountNotFound
	}

	account, err := s.Create(ctx, identitypkg.OfflineID(name), name)
	if err != nil {
		return nil, err
	}

	if p := s.pub(); p != nil {
		p.PublishBalanceUpdate(account)
	}

	s.logger.Info().Str("player", name).Msg("auto-registered account")

	return account, nil
}

// SaveAsync persists the account on a background worker. The account is
// flagged with a pending write until the store confirms, which also shields
// it from the reconciliation sweep.
func (s *Service) SaveAsync(account *domain.Account) {
	account.MarkSavePlanned()

	s.loop.Async(func() {
		ctx := s.logger.WithContext(context.Background())

		err := s.repo.Save(ctx, account)

		s.loop.NextTick(func() {
			account.ClearSavePlanned()
			account.DeferSync(s.syncCooldown)

			if err != nil {
				s.logger.Error().Err(err).Str("account", account.ID.String()).Msg("account save failed")
			}
		})
	})
}

// ResolveByName implements the two-phase cross-node lookup: try the local
// store first; if the account is unknown, broadcast a user-create request
// and retry once after a bounded delay. The result (possibly nil) is
// delivered on the returned channel.
func (s *Service) ResolveByName(ctx context.Context, name string, retryDelay time.Duration) <-chan *domain.Account {
	result := make(chan *domain.Account, 1)

	s.loop.Async(func() {
		if a, err := s.GetOrFetchByName(ctx, name); err == nil {
			result <- a
			return
		}

		p := s.pub()
		if p == nil {
			result <- nil
			return
		}

		p.PublishUserCreateRequest(name)

		s.loop.After(retryDelay, func() {
			s.loop.Async(func() {
				a, err := s.GetOrFetchByName(ctx, name)
				if err != nil {
					result <- nil
					return
				}

				result <- a
			})
		})
	})

	return result
}

// TogglePayments flips the account's payments-enabled setting for the
// currency. When the player is not hosted locally the toggle notice is
// published so the hosting node can render it.
func (s *Service) TogglePayments(ctx context.Context, account *domain.Account, currency *domain.Currency, locallyOnline bool) bool {
	enabled := account.TogglePayments(currency)

	s.SaveAsync(account)

	if !locallyOnline {
		if p := s.pub(); p != nil {
			p.PublishPaymentsToggle(account.ID, currency.ID, enabled)
		}
	}

	return enabled
}

// ResetBalances clears stored and loaded balances; used by the
// administrative reset under the maintenance gate.
func (s *Service) ResetBalances(ctx context.Context, currency *domain.Currency) error {
	currencyID := ""
	if currency != nil {
		currencyID = currency.ID
	}

	if err := s.repo.ResetBalances(ctx, currencyID); err != nil {
		return err
	}

	for _, account := range s.Loaded() {
		if currency == nil {
			account.ResetAllBalances()
			s.cache.SetAll(account.ID, nil)
		} else {
			account.ResetBalance(currency)
		}
	}

	return nil
}
