package syncmanager

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/notices"
)

// handleIncoming decodes one raw bus message and dispatches it. Messages
// published by this node are dropped, malformed ones are logged and
// dropped, unknown types are ignored so newer nodes can extend the
// protocol without breaking older ones.
func (m *Manager) handleIncoming(payload []byte) {
	var env domain.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		m.logger.Warn().Err(err).Msg("malformed sync envelope")
		return
	}

	if env.NodeID == m.nodeID {
		return
	}

	var err error

	switch env.Type {
	case domain.MsgBalanceUpdate:
		var data domain.BalanceUpdateData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.applyBalanceUpdate(data)
		}
	case domain.MsgCurrencyOperation:
		var data domain.CurrencyOperationData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.applyCurrencyOperation(data)
		}
	case domain.MsgLeaderboardUpdate:
		var data domain.LeaderboardUpdateData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.applyLeaderboardUpdate(data)
		}
	case domain.MsgTransactionLog:
		var data domain.TransactionLogData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.applyTransactionLog(data)
		}
	case domain.MsgPaymentNotification:
		var data domain.PaymentNotificationData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.applyPaymentNotification(data)
		}
	case domain.MsgPlayerNamesUpdate:
		var data domain.PlayerNamesData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.applyPlayerNames(data)
		}
	case domain.MsgUserSyncRequest:
		var data domain.UserSyncRequestData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.handleUserSyncRequest(data)
		}
	case domain.MsgUserCreateRequest:
		var data domain.UserCreateRequestData
		if err = json.Unmarshal(env.Data, &data); err == nil {
			m.handleUserCreateRequest(data)
		}
	}

	if err != nil {
		m.logger.Warn().Err(err).Str("type", env.Type).Msg("malformed sync payload")
	}
}

// applyBalanceUpdate installs a remote balance snapshot. The write is
// silent: it must not fire change listeners, re-publish, or otherwise
// look like a local operation. Only synchronizable currencies present in
// the payload are applied, so a partial snapshot never zeroes the rest.
func (m *Manager) applyBalanceUpdate(data domain.BalanceUpdateData) {
	m.loop.Async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		account, err := m.accounts.GetOrFetch(m.logger.WithContext(ctx), data.UserID)
		if err != nil {
			m.logger.Warn().Err(err).Str("account", data.UserID.String()).Msg("cannot load account for remote balance update")
			return
		}

		m.loop.NextTick(func() {
			for currencyID, balance := range data.Balances {
				currency, err := m.registry.Get(currencyID)
				if err != nil || !currency.Synchronizable {
					continue
				}

				account.SetSilent(currency, balance)
			}

			account.SetHiddenFromTops(data.Settings.HiddenFromTops)

			m.accounts.RefreshCache(account)
			m.accounts.SaveAsync(account)
		})
	})
}

// applyCurrencyOperation renders the replicated operation notice for the
// affected player, if this node hosts them.
func (m *Manager) applyCurrencyOperation(data domain.CurrencyOperationData) {
	m.loop.NextTick(func() {
		if !m.presence.IsOnlineID(data.UserID) {
			return
		}

		currency, err := m.registry.Get(data.CurrencyID)
		if err != nil {
			return
		}

		if notice := notices.ForOperation(currency, data.Operation, data.Amount, data.NewBalance); notice != "" {
			m.presence.Deliver(data.UserID, notice)
		}
	})
}

func (m *Manager) applyLeaderboardUpdate(data domain.LeaderboardUpdateData) {
	m.tops.MergeExternal(data.CurrencyID, data.Entries)
}

func (m *Manager) applyTransactionLog(data domain.TransactionLogData) {
	if !m.cfg.LogReplicationEnabled || m.txlog == nil {
		return
	}

	m.txlog.AddExternal(data.LogEntry)
}

func (m *Manager) applyPaymentNotification(data domain.PaymentNotificationData) {
	m.loop.NextTick(func() {
		if !m.presence.IsOnlineID(data.RecipientID) {
			return
		}

		currency, err := m.registry.Get(data.CurrencyID)
		if err != nil {
			return
		}

		m.presence.Deliver(data.RecipientID, notices.PaymentReceived(currency, data.SenderName, data.Amount, data.NewBalance))
	})
}

func (m *Manager) applyPlayerNames(data domain.PlayerNamesData) {
	names := make(map[string]struct{}, len(data.PlayerNames))
	for _, name := range data.PlayerNames {
		names[name] = struct{}{}
	}

	m.namesMu.Lock()
	m.crossNames = names
	m.namesMu.Unlock()
}

// handleUserSyncRequest answers a peer's re-publish request when this
// node has the account loaded. Every holding node answers; the requester
// applies whichever snapshot lands last.
func (m *Manager) handleUserSyncRequest(data domain.UserSyncRequestData) {
	if account, ok := m.accounts.Lookup(data.UserID); ok {
		m.PublishBalanceUpdate(account)
	}
}

// handleUserCreateRequest materializes an account for a player unknown to
// the requesting node, then publishes it so the requester's retry finds it.
func (m *Manager) handleUserCreateRequest(data domain.UserCreateRequestData) {
	if data.RequestingNode == m.nodeID {
		return
	}

	m.loop.Async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ctx = m.logger.WithContext(ctx)

		account, err := m.accounts.GetOrFetchByName(ctx, data.PlayerName)
		if err != nil {
			account, err = m.accounts.AutoRegister(ctx, data.PlayerName)
			if err != nil {
				return
			}
		}

		m.PublishBalanceUpdate(account)
	})
}
