// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/pkg/dbpkg"
	"github.com/vergecraft/coinsync/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const loadQuery = `
SELECT
	id, name, hidden_from_tops, balances, settings, created_at
FROM accounts
WHERE id = $1
`

// Load returns the stored account with the given id.
func (r *RepoPGS) Load(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.scanAccount(ctx, r.db.QueryRowContext(ctx, loadQuery, id))
}

const loadByNameQuery = `
SELECT
	id, name, hidden_from_tops, balances, settings, created_at
FROM accounts
WHERE lower(name) = lower($1)
`

// LoadByName returns the stored account with the given player name.
func (r *RepoPGS) LoadByName(ctx context.Context, name string) (*domain.Account, error) {
	return r.scanAccount(ctx, r.db.QueryRowContext(ctx, loadByNameQuery, name))
}

func (r *RepoPGS) scanAccount(ctx context.Context, row *sql.Row) (*domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var (
		id            uuid.UUID
		name          string
		hidden        bool
		balancesJSON  []byte
		settingsJSON  []byte
		createdAt     sql.NullTime
	)

	err := row.Scan(&id, &name, &hidden, &balancesJSON, &settingsJSON, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}

	var balances map[string]decimal.Decimal
	if err := json.Unmarshal(balancesJSON, &balances); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	var settings map[string]domain.CurrencySettings
	if err := json.Unmarshal(settingsJSON, &settings); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	account := domain.NewAccount(id, name)
	account.SetHiddenFromTops(hidden)
	account.SetBalancesRaw(balances)
	account.SetSettingsRaw(settings)

	if createdAt.Valid {
		account.CreatedAt = createdAt.Time
	}

	return account, nil
}

const saveQuery = `
INSERT INTO
	accounts (id, name, hidden_from_tops, balances, settings, created_at)
VALUES
	($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	hidden_from_tops = EXCLUDED.hidden_from_tops,
	balances = EXCLUDED.balances,
	settings = EXCLUDED.settings
`

// Save upserts the account with its full balance and settings maps.
func (r *RepoPGS) Save(ctx context.Context, account *domain.Account) error {
	l := zerolog.Ctx(ctx)

	balancesJSON, err := json.Marshal(account.Balances())
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	settingsJSON, err := json.Marshal(account.SettingsMap())
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	_, err = r.db.ExecContext(ctx, saveQuery,
		account.ID,
		account.Name,
		account.HiddenFromTops(),
		balancesJSON,
		settingsJSON,
		account.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_name_key" {
				return domain.ErrAccountAlreadyExists
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}

const resetAllQuery = `
UPDATE accounts SET balances = '{}'::jsonb
`

const resetCurrencyQuery = `
UPDATE accounts SET balances = balances - $1
`

// ResetBalances clears the stored balances of every account, either for
// a single currency or, when currencyID is empty, for all of them.
func (r *RepoPGS) ResetBalances(ctx context.Context, currencyID string) error {
	l := zerolog.Ctx(ctx)

	var err error
	if currencyID == "" {
		_, err = r.db.ExecContext(ctx, resetAllQuery)
	} else {
		_, err = r.db.ExecContext(ctx, resetCurrencyQuery, domain.NormalizeCurrencyID(currencyID))
	}

	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
