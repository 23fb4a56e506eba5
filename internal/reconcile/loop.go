// Package reconcile periodically re-pulls loaded accounts from the store.
//
// Pub/sub delivery is best effort, so nodes can drift: a dropped message
// leaves a stale balance until the next store write. The sweep heals that
// by re-reading persisted state and installing it silently, the same way
// a remote balance update is applied.
package reconcile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/sched"
)

// Accounts provides the loaded-account surface the sweep walks.
type Accounts interface {
	Loaded() []*domain.Account
	RefreshCache(account *domain.Account)
}

// Repo re-reads persisted account state.
type Repo interface {
	Load(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// Gate reports whether balance operations are currently allowed.
// The sweep pauses while they are not, so an administrative reset is
// never raced by stale re-pulled state.
type Gate interface {
	Enabled() bool
}

// Publisher re-announces reconciled state to the cluster.
// A nil publisher disables the announce.
type Publisher interface {
	PublishBalanceUpdate(account *domain.Account)
}

// Sweeper is the reconciliation loop.
type Sweeper struct {
	logger   zerolog.Logger
	loop     *sched.Loop
	accounts Accounts
	repo     Repo
	registry *currencyregistry.Registry
	gate     Gate
	pub      Publisher

	interval time.Duration
	cooldown time.Duration
}

// New returns a stopped sweeper; call Start to begin sweeping.
// A non-positive interval disables it.
func New(loop *sched.Loop, accounts Accounts, repo Repo, registry *currencyregistry.Registry, gate Gate, pub Publisher, interval, cooldown time.Duration, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		logger:   logger,
		loop:     loop,
		accounts: accounts,
		repo:     repo,
		registry: registry,
		gate:     gate,
		pub:      pub,
		interval: interval,
		cooldown: cooldown,
	}
}

// Start schedules the periodic sweep and returns its stop function.
func (s *Sweeper) Start() (stop func()) {
	return s.loop.Repeat(s.interval, s.Sweep)
}

// Sweep reconciles every eligible loaded account. Accounts with a pending
// unpersisted write, or inside their post-write cooldown, are skipped so
// fresh local state is never clobbered by an older store snapshot. One
// account's failure does not abort the rest.
func (s *Sweeper) Sweep() {
	if !s.gate.Enabled() {
		return
	}

	for _, account := range s.accounts.Loaded() {
		if account.IsSavePlanned() || !account.SyncReady() {
			continue
		}

		s.reconcile(account)
	}
}

func (s *Sweeper) reconcile(account *domain.Account) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fresh, err := s.repo.Load(s.logger.WithContext(ctx), account.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("account", account.ID.String()).Msg("reconcile load failed")
		return
	}

	balances := fresh.Balances()
	hidden := fresh.HiddenFromTops()

	s.loop.NextTick(func() {
		// Re-check: a local write may have landed while the load was in
		// flight, and the stored snapshot predates it.
		if account.IsSavePlanned() {
			return
		}

		for currencyID, balance := range balances {
			currency, err := s.registry.Get(currencyID)
			if err != nil || !currency.Synchronizable {
				continue
			}

			account.SetSilent(currency, balance)
		}

		account.SetHiddenFromTops(hidden)
		account.DeferSync(s.cooldown)

		s.accounts.RefreshCache(account)

		if s.pub != nil {
			s.pub.PublishBalanceUpdate(account)
		}
	})
}
