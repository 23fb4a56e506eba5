// Package balancedelivery manages the HTTP delivery layer of balances.
package balancedelivery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vergecraft/coinsync/internal/accountservice"
	"github.com/vergecraft/coinsync/internal/balancecache"
	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/sched"
	"github.com/vergecraft/coinsync/pkg/errorspkg"
	"github.com/vergecraft/coinsync/pkg/web"
)

// ErrOperationRejected indicates the operation failed its checks
// (insufficient balance, limits, disabled payments, maintenance gate).
var ErrOperationRejected = errors.New("operation rejected")

const performTimeout = 5 * time.Second

// Accounts provides the service layer interface needed by the balance delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package balancedelivery
type Accounts interface {
	LookupByName(name string) (*domain.Account, bool)
	GetOrFetchByName(ctx context.Context, name string) (*domain.Account, error)
	AutoRegister(ctx context.Context, name string) (*domain.Account, error)
	SaveAsync(account *domain.Account)
	ListWallet(ctx context.Context, name string, page, limit int) (accountservice.WalletPage, error)
	TogglePayments(ctx context.Context, account *domain.Account, currency *domain.Currency, locallyOnline bool) bool
}

// Operations provides the engine surface needed by the balance delivery layer.
type Operations interface {
	Give(actor string, target *domain.Account, c *domain.Currency, amount decimal.Decimal) bool
	Take(actor string, target *domain.Account, c *domain.Currency, amount decimal.Decimal) bool
	SetBalance(actor string, target *domain.Account, c *domain.Currency, amount decimal.Decimal) bool
	Send(from, to *domain.Account, c *domain.Currency, amount decimal.Decimal) bool
	Exchange(target *domain.Account, from, to *domain.Currency, amount decimal.Decimal) bool
	ResetBalances(ctx context.Context, currency *domain.Currency) error
}

// Leaderboards provides the leaderboard snapshot the delivery layer serves.
type Leaderboards interface {
	Snapshot(currencyID string, n int) []domain.TopEntry
}

// Presence is the local online-player directory fed by the game server.
type Presence interface {
	IsOnline(name string) bool
	Join(id uuid.UUID, name string)
	Quit(id uuid.UUID)
}

// Cluster is the optional sync surface; nil when sync is disabled.
type Cluster interface {
	AllPlayerNames() []string
	RequestUserSync(accountID uuid.UUID)
}

// Handler facilitates balance delivery layer logic.
//
// Reads are served from the balance cache without touching the store.
// Mutations are dispatched onto the primary context, where all account
// state changes are serialized.
type Handler struct {
	accounts Accounts
	engine   Operations
	cache    *balancecache.Cache
	registry *currencyregistry.Registry
	tops     Leaderboards
	presence Presence
	cluster  Cluster
	loop     *sched.Loop
}

// NewHandler returns the balance handler. cluster may be nil when sync
// is disabled.
func NewHandler(accounts Accounts, engine Operations, cache *balancecache.Cache, registry *currencyregistry.Registry, tops Leaderboards, presence Presence, cluster Cluster, loop *sched.Loop) Handler {
	return Handler{
		accounts: accounts,
		engine:   engine,
		cache:    cache,
		registry: registry,
		tops:     tops,
		presence: presence,
		cluster:  cluster,
		loop:     loop,
	}
}

// bindError renders a binding failure in the common envelope.
func bindError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	var (
		ve     validator.ValidationErrors
		errMsg string
	)

	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + web.GetErrorMsg(field)
	} else {
		errMsg = err.Error()
	}

	l.Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})
}

// perform runs the mutation on the primary context and waits for its verdict.
func (h *Handler) perform(fn func() bool) (bool, error) {
	verdict := make(chan bool, 1)

	h.loop.NextTick(func() { verdict <- fn() })

	select {
	case ok := <-verdict:
		return ok, nil
	case <-time.After(performTimeout):
		return false, errorspkg.ErrInternal
	}
}

// resolve returns the loaded account by name, pulling it from the store
// when needed.
func (h *Handler) resolve(ctx context.Context, name string) (*domain.Account, error) {
	if a, ok := h.accounts.LookupByName(name); ok {
		return a, nil
	}

	return h.accounts.GetOrFetchByName(ctx, name)
}

type balanceURI struct {
	Name     string `uri:"name" binding:"required"`
	Currency string `uri:"currency" binding:"required,currency"`
}

type balanceData struct {
	Player    string          `json:"player"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Formatted string          `json:"formatted"`
}

// GetBalance handles http requests to read one cached balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req balanceURI
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	currency, err := h.registry.Get(req.Currency)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	account, err := h.resolve(ctx, req.Name)
	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	balance := h.cache.Get(account.ID, currency.ID)

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Player:    account.Name,
		Currency:  currency.ID,
		Balance:   balance,
		Formatted: currency.FormatAmount(balance),
	}})
}

type walletURI struct {
	Name string `uri:"name" binding:"required"`
}

type walletQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ListWallet handles http requests to list one page of a player's wallet.
func (h *Handler) ListWallet(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri walletURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var query walletQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		bindError(gctx, err)
		return
	}

	page, err := h.accounts.ListWallet(ctx, uri.Name, query.Page, query.PageSize)
	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}

type operationRequest struct {
	Type     string          `json:"type" binding:"required,oneof=give take set"`
	Player   string          `json:"player" binding:"required"`
	Currency string          `json:"currency" binding:"required,currency"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Actor    string          `json:"actor"`
}

// Operate handles http requests to apply an administrative balance operation.
func (h *Handler) Operate(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req operationRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	currency, err := h.registry.Get(req.Currency)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	account, err := h.resolve(ctx, req.Player)
	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	actor := req.Actor
	if actor == "" {
		actor = "console"
	}

	ok, err := h.perform(func() bool {
		switch req.Type {
		case "give":
			return h.engine.Give(actor, account, currency, req.Amount)
		case "take":
			return h.engine.Take(actor, account, currency, req.Amount)
		default:
			return h.engine.SetBalance(actor, account, currency, req.Amount)
		}
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(err))
		return
	}

	if !ok {
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(ErrOperationRejected))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Player:    account.Name,
		Currency:  currency.ID,
		Balance:   h.cache.Get(account.ID, currency.ID),
		Formatted: currency.FormatAmount(h.cache.Get(account.ID, currency.ID)),
	}})
}

type paymentRequest struct {
	From     string          `json:"from" binding:"required"`
	To       string          `json:"to" binding:"required"`
	Currency string          `json:"currency" binding:"required,currency"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// SendPayment handles http requests to transfer between two players.
func (h *Handler) SendPayment(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req paymentRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	currency, err := h.registry.Get(req.Currency)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	from, err := h.resolve(ctx, req.From)
	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	to, err := h.resolve(ctx, req.To)
	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	ok, err := h.perform(func() bool {
		return h.engine.Send(from, to, currency, req.Amount)
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(err))
		return
	}

	if !ok {
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(ErrOperationRejected))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Player:    from.Name,
		Currency:  currency.ID,
		Balance:   h.cache.Get(from.ID, currency.ID),
		Formatted: currency.FormatAmount(h.cache.Get(from.ID, currency.ID)),
	}})
}

type exchangeRequest struct {
	Player       string          `json:"player" binding:"required"`
	FromCurrency string          `json:"from_currency" binding:"required,currency"`
	ToCurrency   string          `json:"to_currency" binding:"required,currency"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// Exchange handles http requests to convert between two currencies.
func (h *Handler) Exchange(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req exchangeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	fromCurrency, err := h.registry.Get(req.FromCurrency)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	toCurrency, err := h.registry.Get(req.ToCurrency)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	account, err := h.resolve(ctx, req.Player)
	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	ok, err := h.perform(func() bool {
		return h.engine.Exchange(account, fromCurrency, toCurrency, req.Amount)
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(err))
		return
	}

	if !ok {
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(ErrOperationRejected))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Player:    account.Name,
		Currency:  toCurrency.ID,
		Balance:   h.cache.Get(account.ID, toCurrency.ID),
		Formatted: toCurrency.FormatAmount(h.cache.Get(account.ID, toCurrency.ID)),
	}})
}

type togglePaymentsRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

type togglePaymentsData struct {
	Player          string `json:"player"`
	Currency        string `json:"currency"`
	PaymentsEnabled bool   `json:"payments_enabled"`
}

// TogglePayments handles http requests to flip a player's payments setting.
func (h *Handler) TogglePayments(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri walletURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req togglePaymentsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	currency, err := h.registry.Get(req.Currency)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	account, err := h.resolve(ctx, uri.Name)
	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	enabled := false

	if _, err := h.perform(func() bool {
		enabled = h.accounts.TogglePayments(ctx, account, currency, h.presence.IsOnline(account.Name))
		return true
	}); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: togglePaymentsData{
		Player:          account.Name,
		Currency:        currency.ID,
		PaymentsEnabled: enabled,
	}})
}

type resetRequest struct {
	Currency string `json:"currency" binding:"omitempty,currency"`
}

// ResetBalances handles http requests for the administrative bulk reset.
func (h *Handler) ResetBalances(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	// An empty body resets every currency.
	var req resetRequest
	if err := gctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(gctx, err)
		return
	}

	var currency *domain.Currency

	if req.Currency != "" {
		c, err := h.registry.Get(req.Currency)
		if err != nil {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		currency = c
	}

	if err := h.engine.ResetBalances(ctx, currency); err != nil {
		if errors.Is(err, domain.ErrOperationsDisabled) {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}

type topsURI struct {
	Currency string `uri:"currency" binding:"required,currency"`
}

type topsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type topsData struct {
	Currency string            `json:"currency"`
	Entries  []domain.TopEntry `json:"entries"`
}

// GetTops handles http requests for the combined cluster leaderboard.
func (h *Handler) GetTops(gctx *gin.Context) {
	var uri topsURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var query topsQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		bindError(gctx, err)
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = 10
	}

	gctx.JSON(http.StatusOK, web.Response{Data: topsData{
		Currency: domain.NormalizeCurrencyID(uri.Currency),
		Entries:  h.tops.Snapshot(uri.Currency, limit),
	}})
}

type playersData struct {
	Players []string `json:"players"`
}

// ListPlayers handles http requests for known player names across the cluster.
func (h *Handler) ListPlayers(gctx *gin.Context) {
	if h.cluster == nil {
		gctx.JSON(http.StatusOK, web.Response{Data: playersData{Players: []string{}}})
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: playersData{Players: h.cluster.AllPlayerNames()}})
}

// PlayerJoin handles the game server's join notification: the account is
// loaded (or auto-registered), the player enters the local directory, and
// the cluster is asked for any fresher state it holds.
func (h *Handler) PlayerJoin(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri walletURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	account, err := h.resolve(ctx, uri.Name)
	if errors.Is(err, domain.ErrAccountNotFound) {
		account, err = h.accounts.AutoRegister(ctx, uri.Name)
	}

	if err != nil {
		h.renderLookupError(gctx, err)
		return
	}

	h.presence.Join(account.ID, account.Name)

	if h.cluster != nil {
		h.cluster.RequestUserSync(account.ID)
	}

	gctx.JSON(http.StatusOK, web.Response{Data: playerData{
		Player:    account.Name,
		AccountID: account.ID,
	}})
}

// PlayerQuit handles the game server's quit notification: the player
// leaves the local directory and their state is flushed to the store.
func (h *Handler) PlayerQuit(gctx *gin.Context) {
	var uri walletURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	account, ok := h.accounts.LookupByName(uri.Name)
	if !ok {
		gctx.Status(http.StatusNoContent)
		return
	}

	h.presence.Quit(account.ID)

	if _, err := h.perform(func() bool {
		h.accounts.SaveAsync(account)
		return true
	}); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(err))
		return
	}

	gctx.Status(http.StatusNoContent)
}

type playerData struct {
	Player    string    `json:"player"`
	AccountID uuid.UUID `json:"account_id"`
}

func (h *Handler) renderLookupError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	if errors.Is(err, domain.ErrAccountNotFound) {
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	}

	l.Error().Err(err).Send()
	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}
