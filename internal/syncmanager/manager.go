// Package syncmanager replicates balance state between cluster nodes.
//
// Nodes share one pub/sub channel. Every message is a JSON envelope
// carrying the publishing node's identity; a node never applies its own
// messages. Delivery is best effort: there is no ordering guarantee, no
// retry, and no reconnect after a transport failure — the reconciliation
// sweep heals whatever the channel drops.
package syncmanager

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/presence"
	"github.com/vergecraft/coinsync/internal/sched"
	"github.com/vergecraft/coinsync/internal/tops"
	"github.com/vergecraft/coinsync/internal/txlog"
)

// State is the manager's connection lifecycle.
type State int32

// Manager states. A manager that failed to connect, or whose listener
// terminated, stays Inactive until process restart.
const (
	StateInactive State = iota
	StateConnecting
	StateActive
)

const playerNamesSyncInterval = 30 * time.Second

// Accounts provides the account surface the manager needs.
type Accounts interface {
	Lookup(id uuid.UUID) (*domain.Account, bool)
	GetOrFetch(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetOrFetchByName(ctx context.Context, name string) (*domain.Account, error)
	AutoRegister(ctx context.Context, name string) (*domain.Account, error)
	SaveAsync(account *domain.Account)
	RefreshCache(account *domain.Account)
}

// Config holds the manager's tunables.
type Config struct {
	// NodeID pins the node identity; a random UUID is used when empty.
	NodeID                  string
	BalanceSyncInterval     time.Duration
	LeaderboardSyncInterval time.Duration
	LogReplicationEnabled   bool
}

// Manager owns the bus connection and implements both directions of the
// sync protocol. All publishes are fire-and-forget on background workers;
// all inbound state mutation is dispatched onto the primary context.
type Manager struct {
	logger   zerolog.Logger
	cfg      Config
	nodeID   string
	loop     *sched.Loop
	accounts Accounts
	registry *currencyregistry.Registry
	tops     *tops.Manager
	presence *presence.Directory
	txlog    *txlog.Logger

	state atomic.Int32
	bus   Bus

	stopsMu sync.Mutex
	stops   []func()

	// Player names reported by other nodes, replaced wholesale on
	// every directory update.
	namesMu    sync.Mutex
	crossNames map[string]struct{}
}

// New returns an inactive manager. Call Connect to go live; without it
// every publish is a silent no-op and the node runs standalone.
func New(cfg Config, loop *sched.Loop, accounts Accounts, registry *currencyregistry.Registry, topManager *tops.Manager, directory *presence.Directory, operationLog *txlog.Logger, logger zerolog.Logger) *Manager {
	nodeID := cfg.NodeID
	if nodeID == "" {
		nodeID = uuid.NewString()
	}

	return &Manager{
		logger:     logger,
		cfg:        cfg,
		nodeID:     nodeID,
		loop:       loop,
		accounts:   accounts,
		registry:   registry,
		tops:       topManager,
		presence:   directory,
		txlog:      operationLog,
		crossNames: make(map[string]struct{}),
	}
}

// NodeID returns this node's identity on the sync channel.
func (m *Manager) NodeID() string { return m.nodeID }

// State returns the current lifecycle state.
func (m *Manager) State() State { return State(m.state.Load()) }

func (m *Manager) isActive() bool { return m.State() == StateActive }

// Connect attaches the bus, starts the listener and the periodic sync
// timers. On subscription failure the manager stays Inactive; no
// reconnect is attempted.
func (m *Manager) Connect(bus Bus) error {
	m.state.Store(int32(StateConnecting))
	m.bus = bus

	inbound, err := bus.Subscribe(context.Background())
	if err != nil {
		m.state.Store(int32(StateInactive))
		m.logger.Error().Err(err).Msg("sync subscribe failed")

		return err
	}

	m.state.Store(int32(StateActive))

	go m.listen(inbound)
	m.startTimers()

	m.logger.Info().Str("node_id", m.nodeID).Msg("cluster sync active")

	return nil
}

// listen is the dedicated long-lived listener. Any termination, expected
// or not, drops the manager back to Inactive.
func (m *Manager) listen(inbound <-chan []byte) {
	defer func() {
		m.state.Store(int32(StateInactive))
		m.logger.Info().Msg("sync listener terminated")
	}()

	for payload := range inbound {
		m.handleIncoming(payload)
	}
}

func (m *Manager) startTimers() {
	m.addStop(m.loop.Repeat(m.cfg.BalanceSyncInterval, m.syncAllBalances))
	m.addStop(m.loop.Repeat(m.cfg.LeaderboardSyncInterval, m.syncLeaderboards))
	m.addStop(m.loop.Repeat(playerNamesSyncInterval, m.syncPlayerNames))
}

func (m *Manager) addStop(stop func()) {
	m.stopsMu.Lock()
	defer m.stopsMu.Unlock()

	m.stops = append(m.stops, stop)
}

// Shutdown stops the timers and closes the bus, which terminates the listener.
func (m *Manager) Shutdown() {
	m.state.Store(int32(StateInactive))

	m.stopsMu.Lock()
	stops := m.stops
	m.stops = nil
	m.stopsMu.Unlock()

	for _, stop := range stops {
		stop()
	}

	if m.bus != nil {
		if err := m.bus.Close(); err != nil {
			m.logger.Warn().Err(err).Msg("sync bus close failed")
		}
	}
}

/* Publisher API */

// publish wraps the payload in the wire envelope and sends it on a
// background worker. A failed publish is logged and the message is lost.
func (m *Manager) publish(msgType string, data any) {
	if !m.isActive() {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		m.logger.Error().Err(err).Str("type", msgType).Msg("cannot encode sync message")
		return
	}

	payload, err := json.Marshal(domain.Envelope{Type: msgType, NodeID: m.nodeID, Data: raw})
	if err != nil {
		m.logger.Error().Err(err).Str("type", msgType).Msg("cannot encode sync envelope")
		return
	}

	m.loop.Async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := m.bus.Publish(ctx, payload); err != nil {
			m.logger.Warn().Err(err).Str("type", msgType).Msg("sync publish failed")
		}
	})
}

// PublishBalanceUpdate broadcasts the account's synchronizable balances
// and visibility settings.
func (m *Manager) PublishBalanceUpdate(account *domain.Account) {
	if !m.isActive() {
		return
	}

	balances := make(map[string]decimal.Decimal)

	for _, currency := range m.registry.All() {
		if currency.Synchronizable {
			balances[currency.ID] = account.BalanceView(currency)
		}
	}

	m.publish(domain.MsgBalanceUpdate, domain.BalanceUpdateData{
		UserID:   account.ID,
		UserName: account.Name,
		Balances: balances,
		Settings: domain.BalanceSettingsData{HiddenFromTops: account.HiddenFromTops()},
	})
}

// PublishCurrencyOperation broadcasts a notable mutation so the node
// hosting the player can render the notice.
func (m *Manager) PublishCurrencyOperation(accountID uuid.UUID, currencyID, kind string, amount, newBalance decimal.Decimal) {
	m.publish(domain.MsgCurrencyOperation, domain.CurrencyOperationData{
		UserID:     accountID,
		CurrencyID: currencyID,
		Operation:  kind,
		Amount:     amount,
		NewBalance: newBalance,
		Timestamp:  time.Now().UnixMilli(),
	})
}

// PublishPaymentsToggle broadcasts a payments-enabled flip as a currency
// operation; amount above zero encodes "enabled".
func (m *Manager) PublishPaymentsToggle(accountID uuid.UUID, currencyID string, enabled bool) {
	amount := decimal.Zero
	if enabled {
		amount = decimal.NewFromInt(1)
	}

	m.PublishCurrencyOperation(accountID, currencyID, domain.NotifyPaymentsToggle, amount, decimal.Zero)
}

// PublishLeaderboard broadcasts one currency's ordered leaderboard.
func (m *Manager) PublishLeaderboard(currencyID string, entries []domain.TopEntry) {
	m.publish(domain.MsgLeaderboardUpdate, domain.LeaderboardUpdateData{
		CurrencyID: currencyID,
		Entries:    entries,
		Timestamp:  time.Now().UnixMilli(),
	})
}

// PublishTransactionLog replicates one formatted operation log line,
// when log replication is enabled.
func (m *Manager) PublishTransactionLog(line string) {
	if !m.cfg.LogReplicationEnabled {
		return
	}

	m.publish(domain.MsgTransactionLog, domain.TransactionLogData{
		LogEntry:  line,
		Timestamp: time.Now().UnixMilli(),
	})
}

// PublishPaymentNotification delivers a transfer notice to whichever node
// hosts the recipient.
func (m *Manager) PublishPaymentNotification(recipientID uuid.UUID, senderName, currencyID string, amount, newBalance decimal.Decimal) {
	m.publish(domain.MsgPaymentNotification, domain.PaymentNotificationData{
		RecipientID: recipientID,
		SenderName:  senderName,
		CurrencyID:  currencyID,
		Amount:      amount,
		NewBalance:  newBalance,
		Timestamp:   time.Now().UnixMilli(),
	})
}

// PublishPlayerNames broadcasts this node's online player names.
func (m *Manager) PublishPlayerNames(names []string) {
	m.publish(domain.MsgPlayerNamesUpdate, domain.PlayerNamesData{
		PlayerNames: names,
		Timestamp:   time.Now().UnixMilli(),
	})
}

// RequestUserSync asks any node holding the account to re-publish it.
func (m *Manager) RequestUserSync(accountID uuid.UUID) {
	m.publish(domain.MsgUserSyncRequest, domain.UserSyncRequestData{
		UserID:         accountID,
		RequestingNode: m.nodeID,
	})
}

// PublishUserCreateRequest asks peers to materialize an account for the
// named player.
func (m *Manager) PublishUserCreateRequest(playerName string) {
	m.publish(domain.MsgUserCreateRequest, domain.UserCreateRequestData{
		PlayerName:     playerName,
		RequestingNode: m.nodeID,
	})
}

/* Periodic sync */

func (m *Manager) syncAllBalances() {
	if !m.isActive() {
		return
	}

	for _, id := range m.presence.OnlineIDs() {
		if account, ok := m.accounts.Lookup(id); ok {
			m.PublishBalanceUpdate(account)
		}
	}
}

func (m *Manager) syncLeaderboards() {
	if !m.isActive() {
		return
	}

	for _, currency := range m.registry.All() {
		if !currency.LeaderboardEnabled {
			continue
		}

		if entries := m.tops.LocalEntries(currency.ID); len(entries) > 0 {
			m.PublishLeaderboard(currency.ID, entries)
		}
	}
}

func (m *Manager) syncPlayerNames() {
	if !m.isActive() {
		return
	}

	if names := m.presence.OnlineNames(); len(names) > 0 {
		m.PublishPlayerNames(names)
	}
}

// AllPlayerNames returns local plus cross-node player names.
func (m *Manager) AllPlayerNames() []string {
	seen := make(map[string]struct{})

	for _, name := range m.presence.OnlineNames() {
		seen[name] = struct{}{}
	}

	m.namesMu.Lock()
	for name := range m.crossNames {
		seen[name] = struct{}{}
	}
	m.namesMu.Unlock()

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}

	return out
}
