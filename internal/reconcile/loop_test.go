package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/sched"
)

type stubAccounts struct {
	mu        sync.Mutex
	loaded    []*domain.Account
	refreshed []uuid.UUID
}

func (s *stubAccounts) Loaded() []*domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*domain.Account(nil), s.loaded...)
}

func (s *stubAccounts) RefreshCache(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshed = append(s.refreshed, account.ID)
}

func (s *stubAccounts) refreshedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.refreshed)
}

type stubRepo struct {
	mu    sync.Mutex
	fresh map[uuid.UUID]*domain.Account
	calls int
	err   error
}

func (r *stubRepo) Load(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++

	if r.err != nil {
		return nil, r.err
	}

	a, ok := r.fresh[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

func (r *stubRepo) loadCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls
}

type stubGate struct{ enabled bool }

func (g stubGate) Enabled() bool { return g.enabled }

type stubPublisher struct {
	mu        sync.Mutex
	published []uuid.UUID
}

func (p *stubPublisher) PublishBalanceUpdate(account *domain.Account) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.published = append(p.published, account.ID)
}

func (p *stubPublisher) publishedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.published)
}

type env struct {
	sweeper  *Sweeper
	accounts *stubAccounts
	repo     *stubRepo
	pub      *stubPublisher
	registry *currencyregistry.Registry
	coins    *domain.Currency
	loop     *sched.Loop
}

func newEnv(t *testing.T, gate Gate) *env {
	t.Helper()

	registry := currencyregistry.New(zerolog.Nop())

	coins := &domain.Currency{ID: "coins", MaxValue: decimal.NewFromInt(-1), Synchronizable: true}
	require.NoError(t, registry.Register(coins))
	require.NoError(t, registry.Register(&domain.Currency{ID: "local", MaxValue: decimal.NewFromInt(-1)}))

	loop := sched.NewLoop(zerolog.Nop())
	loop.Start()
	t.Cleanup(loop.Stop)

	accounts := &stubAccounts{}
	repo := &stubRepo{fresh: make(map[uuid.UUID]*domain.Account)}
	pub := &stubPublisher{}

	sweeper := New(loop, accounts, repo, registry, gate, pub, time.Hour, 30*time.Second, zerolog.Nop())

	return &env{
		sweeper:  sweeper,
		accounts: accounts,
		repo:     repo,
		pub:      pub,
		registry: registry,
		coins:    coins,
		loop:     loop,
	}
}

// eligible returns a loaded account with its cooldown already elapsed.
func eligible(name string) *domain.Account {
	a := domain.NewAccount(uuid.New(), name)
	a.DeferSync(-time.Second)

	return a
}

func TestSweepInstallsStoredState(t *testing.T) {
	e := newEnv(t, stubGate{enabled: true})

	account := eligible("Steve")
	e.accounts.loaded = []*domain.Account{account}

	fresh := domain.NewAccount(account.ID, "Steve")
	fresh.SetSilent(e.coins, decimal.NewFromInt(500))
	e.repo.fresh[account.ID] = fresh

	e.sweeper.Sweep()

	require.Eventually(t, func() bool {
		return account.BalanceView(e.coins).Equal(decimal.NewFromInt(500))
	}, time.Second, time.Millisecond)

	require.Eventually(t, func() bool { return e.accounts.refreshedCount() == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return e.pub.publishedCount() == 1 }, time.Second, time.Millisecond)

	// Reconciliation re-arms the cooldown.
	require.False(t, account.SyncReady())
}

func TestSweepIsSilent(t *testing.T) {
	e := newEnv(t, stubGate{enabled: true})

	account := eligible("Steve")

	var listenerFired atomic.Bool
	account.SetChangeListener(func(*domain.Account, string, decimal.Decimal) { listenerFired.Store(true) })

	e.accounts.loaded = []*domain.Account{account}

	fresh := domain.NewAccount(account.ID, "Steve")
	fresh.SetSilent(e.coins, decimal.NewFromInt(500))
	e.repo.fresh[account.ID] = fresh

	e.sweeper.Sweep()

	require.Eventually(t, func() bool {
		return account.BalanceView(e.coins).Equal(decimal.NewFromInt(500))
	}, time.Second, time.Millisecond)

	require.False(t, listenerFired.Load())
}

func TestSweepSkipsNonSynchronizableCurrencies(t *testing.T) {
	e := newEnv(t, stubGate{enabled: true})

	local, err := e.registry.Get("local")
	require.NoError(t, err)

	account := eligible("Steve")
	e.accounts.loaded = []*domain.Account{account}

	fresh := domain.NewAccount(account.ID, "Steve")
	fresh.SetSilent(local, decimal.NewFromInt(500))
	e.repo.fresh[account.ID] = fresh

	e.sweeper.Sweep()

	require.Eventually(t, func() bool { return e.accounts.refreshedCount() == 1 }, time.Second, time.Millisecond)
	require.True(t, account.BalanceView(local).IsZero())
}

func TestSweepSkipsWhileOperationsDisabled(t *testing.T) {
	e := newEnv(t, stubGate{enabled: false})

	account := eligible("Steve")
	e.accounts.loaded = []*domain.Account{account}

	e.sweeper.Sweep()

	time.Sleep(20 * time.Millisecond)
	require.Zero(t, e.repo.loadCalls())
}

func TestSweepSkipsPendingWrites(t *testing.T) {
	e := newEnv(t, stubGate{enabled: true})

	account := eligible("Steve")
	account.MarkSavePlanned()
	e.accounts.loaded = []*domain.Account{account}

	e.sweeper.Sweep()

	time.Sleep(20 * time.Millisecond)
	require.Zero(t, e.repo.loadCalls())
}

func TestSweepSkipsAccountsInCooldown(t *testing.T) {
	e := newEnv(t, stubGate{enabled: true})

	account := domain.NewAccount(uuid.New(), "Steve")
	account.DeferSync(time.Hour)
	e.accounts.loaded = []*domain.Account{account}

	e.sweeper.Sweep()

	time.Sleep(20 * time.Millisecond)
	require.Zero(t, e.repo.loadCalls())
}

func TestSweepContinuesPastFailedAccounts(t *testing.T) {
	e := newEnv(t, stubGate{enabled: true})

	broken := eligible("Broken")
	healthy := eligible("Healthy")
	e.accounts.loaded = []*domain.Account{broken, healthy}

	fresh := domain.NewAccount(healthy.ID, "Healthy")
	fresh.SetSilent(e.coins, decimal.NewFromInt(42))
	e.repo.fresh[healthy.ID] = fresh

	e.sweeper.Sweep()

	require.Eventually(t, func() bool {
		return healthy.BalanceView(e.coins).Equal(decimal.NewFromInt(42))
	}, time.Second, time.Millisecond)

	require.Equal(t, 2, e.repo.loadCalls())
}

func TestSweepRechecksPendingWriteAfterLoad(t *testing.T) {
	e := newEnv(t, stubGate{enabled: true})

	account := eligible("Steve")
	e.accounts.loaded = []*domain.Account{account}

	fresh := domain.NewAccount(account.ID, "Steve")
	fresh.SetSilent(e.coins, decimal.NewFromInt(500))
	e.repo.fresh[account.ID] = fresh

	// A local write lands between the load and the apply.
	account.MarkSavePlanned()
	account.SetSilent(e.coins, decimal.NewFromInt(7))

	e.sweeper.reconcile(account)

	time.Sleep(50 * time.Millisecond)
	require.True(t, account.BalanceView(e.coins).Equal(decimal.NewFromInt(7)))
	require.Zero(t, e.pub.publishedCount())
}
