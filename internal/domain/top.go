package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopEntry is one row of a currency leaderboard.
type TopEntry struct {
	Position  int             `json:"position"`
	AccountID uuid.UUID       `json:"accountId"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}
