package domain

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Message types carried by the cluster sync channel.
const (
	MsgBalanceUpdate       = "USER_BALANCE_UPDATE"
	MsgCurrencyOperation   = "CURRENCY_OPERATION"
	MsgLeaderboardUpdate   = "LEADERBOARD_UPDATE"
	MsgTransactionLog      = "TRANSACTION_LOG"
	MsgUserSyncRequest     = "USER_SYNC_REQUEST"
	MsgUserCreateRequest   = "USER_CREATE_REQUEST"
	MsgPaymentNotification = "PAYMENT_NOTIFICATION"
	MsgPlayerNamesUpdate   = "PLAYER_NAMES_UPDATE"
)

// Envelope is the wire format of every sync message.
// NodeID identifies the publishing node for echo suppression.
type Envelope struct {
	Type   string          `json:"type"`
	NodeID string          `json:"nodeId"`
	Data   json.RawMessage `json:"data"`
}

// BalanceUpdateData carries the full synchronizable balance snapshot of one account.
type BalanceUpdateData struct {
	UserID   uuid.UUID                  `json:"userId"`
	UserName string                     `json:"userName"`
	Balances map[string]decimal.Decimal `json:"balances"`
	Settings BalanceSettingsData        `json:"settings"`
}

// BalanceSettingsData carries replicated account visibility settings.
type BalanceSettingsData struct {
	HiddenFromTops bool `json:"hiddenFromTops"`
}

// CurrencyOperationData notifies peers about a notable mutation so the
// node hosting the player can render a notice.
type CurrencyOperationData struct {
	UserID     uuid.UUID       `json:"userId"`
	CurrencyID string          `json:"currencyId"`
	Operation  string          `json:"operation"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"newBalance"`
	Timestamp  int64           `json:"timestamp"`
}

// Operation kinds used in CurrencyOperationData.
const (
	NotifyAdd            = "ADD_NOTIFY"
	NotifySet            = "SET_NOTIFY"
	NotifyRemove         = "REMOVE_NOTIFY"
	NotifyPaymentsToggle = "PAYMENTS_TOGGLE"
)

// LeaderboardUpdateData carries one currency's ordered leaderboard.
type LeaderboardUpdateData struct {
	CurrencyID string     `json:"currencyId"`
	Entries    []TopEntry `json:"entries"`
	Timestamp  int64      `json:"timestamp"`
}

// TransactionLogData replicates one formatted operation log line.
type TransactionLogData struct {
	LogEntry  string `json:"logEntry"`
	Timestamp int64  `json:"timestamp"`
}

// PaymentNotificationData delivers a transfer notice to the node hosting the recipient.
type PaymentNotificationData struct {
	RecipientID uuid.UUID       `json:"recipientId"`
	SenderName  string          `json:"senderName"`
	CurrencyID  string          `json:"currencyId"`
	Amount      decimal.Decimal `json:"amount"`
	NewBalance  decimal.Decimal `json:"newBalance"`
	Timestamp   int64           `json:"timestamp"`
}

// PlayerNamesData carries the publishing node's online player names.
type PlayerNamesData struct {
	PlayerNames []string `json:"playerNames"`
	Timestamp   int64    `json:"timestamp"`
}

// UserSyncRequestData asks any node holding the account to re-publish its state.
type UserSyncRequestData struct {
	UserID         uuid.UUID `json:"userId"`
	RequestingNode string    `json:"requestingNode"`
}

// UserCreateRequestData asks peers to materialize an account for the named player.
type UserCreateRequestData struct {
	PlayerName     string `json:"playerName"`
	RequestingNode string `json:"requestingNode"`
}
