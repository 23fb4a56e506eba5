package accountservice

import (
	"context"

	"github.com/shopspring/decimal"
)

// WalletEntry is one currency row of a wallet listing.
type WalletEntry struct {
	CurrencyID string          `json:"currency_id"`
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	Balance    decimal.Decimal `json:"balance"`
}

// WalletPage is one page of a wallet listing.
type WalletPage struct {
	Owner   string        `json:"owner"`
	Entries []WalletEntry `json:"entries"`
	Page    int           `json:"page"`
	MaxPage int           `json:"max_page"`
}

// ListWallet returns one page of the account's balances across all
// registered currencies, ordered by currency id. The page number is
// clamped to [1, maxPage]; a non-positive limit falls back to the
// configured page size.
func (s *Service) ListWallet(ctx context.Context, name string, page, limit int) (WalletPage, error) {
	account, err := s.GetOrFetchByName(ctx, name)
	if err != nil {
		return WalletPage{}, err
	}

	currencies := s.registry.All()

	if limit <= 0 {
		limit = s.walletPageSize
	}

	total := len(currencies)

	maxPage := (total + limit - 1) / limit
	if maxPage < 1 {
		maxPage = 1
	}

	if page < 1 {
		page = 1
	}

	if page > maxPage {
		page = maxPage
	}

	from := (page - 1) * limit

	to := from + limit
	if to > total {
		to = total
	}

	entries := make([]WalletEntry, 0, to-from)
	for _, currency := range currencies[from:to] {
		entries = append(entries, WalletEntry{
			CurrencyID: currency.ID,
			Name:       currency.Name,
			Symbol:     currency.Symbol,
			Balance:    account.BalanceView(currency),
		})
	}

	return WalletPage{
		Owner:   account.Name,
		Entries: entries,
		Page:    page,
		MaxPage: maxPage,
	}, nil
}
