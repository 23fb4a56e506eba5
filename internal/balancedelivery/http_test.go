package balancedelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vergecraft/coinsync/internal/accountservice"
	"github.com/vergecraft/coinsync/internal/balancecache"
	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/domain"
	"github.com/vergecraft/coinsync/internal/sched"
	"github.com/vergecraft/coinsync/pkg/errorspkg"
)

var testRegistry *currencyregistry.Registry

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	testRegistry = currencyregistry.New(zerolog.Nop())

	if err := testRegistry.Register(&domain.Currency{
		ID:       "coins",
		Name:     "Coins",
		Symbol:   "c",
		MaxValue: decimal.NewFromInt(-1),
	}); err != nil {
		panic(err)
	}

	if err := testRegistry.Register(&domain.Currency{
		ID:       "gems",
		Name:     "Gems",
		Symbol:   "g",
		MaxValue: decimal.NewFromInt(-1),
	}); err != nil {
		panic(err)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", ValidCurrency(testRegistry)); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

type testMocks struct {
	accounts *MockAccounts
	engine   *MockOperations
	tops     *MockLeaderboards
	presence *MockPresence
	cluster  *MockCluster
}

// newTestServer wires the handler with mocked collaborators, a real cache
// and a running primary context, mirroring the production route table.
func newTestServer(t *testing.T, cache *balancecache.Cache, withCluster bool) (*gin.Engine, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &testMocks{
		accounts: NewMockAccounts(ctrl),
		engine:   NewMockOperations(ctrl),
		tops:     NewMockLeaderboards(ctrl),
		presence: NewMockPresence(ctrl),
		cluster:  NewMockCluster(ctrl),
	}

	loop := sched.NewLoop(zerolog.Nop())
	loop.Start()
	t.Cleanup(loop.Stop)

	var cluster Cluster
	if withCluster {
		cluster = m.cluster
	}

	handler := NewHandler(m.accounts, m.engine, cache, testRegistry, m.tops, m.presence, cluster, loop)

	server := gin.New()
	server.GET("/balances/:name/:currency", handler.GetBalance)
	server.GET("/wallets/:name", handler.ListWallet)
	server.GET("/tops/:currency", handler.GetTops)
	server.GET("/players", handler.ListPlayers)
	server.POST("/players/:name/join", handler.PlayerJoin)
	server.POST("/players/:name/quit", handler.PlayerQuit)
	server.POST("/players/:name/payments", handler.TogglePayments)
	server.POST("/operations", handler.Operate)
	server.POST("/payments", handler.SendPayment)
	server.POST("/exchanges", handler.Exchange)
	server.POST("/admin/balance-reset", handler.ResetBalances)

	return server, m
}

type responseEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func doRequest(t *testing.T, server *gin.Engine, method, url string, body any) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	var envelope responseEnvelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}

	return recorder, envelope
}

func TestGetBalance(t *testing.T) {
	account := domain.NewAccount(uuid.New(), "Steve")

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(m *testMocks, cache *balancecache.Cache)
		wantStatusCode int
		wantError      string
		checkData      func(t *testing.T, data json.RawMessage)
	}{
		{
			name: "OK",
			url:  "/balances/Steve/coins",
			buildStubs: func(m *testMocks, cache *balancecache.Cache) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				cache.Set(account.ID, "coins", decimal.NewFromInt(125))
			},
			wantStatusCode: http.StatusOK,
			checkData: func(t *testing.T, data json.RawMessage) {
				var got balanceData
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, "Steve", got.Player)
				require.Equal(t, "coins", got.Currency)
				require.True(t, got.Balance.Equal(decimal.NewFromInt(125)))
				require.Equal(t, "125c", got.Formatted)
			},
		},
		{
			name:           "UnknownCurrency",
			url:            "/balances/Steve/souls",
			buildStubs:     func(m *testMocks, cache *balancecache.Cache) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "AccountNotFound",
			url:  "/balances/Nobody/coins",
			buildStubs: func(m *testMocks, cache *balancecache.Cache) {
				m.accounts.EXPECT().LookupByName("Nobody").Return(nil, false)
				m.accounts.EXPECT().GetOrFetchByName(gomock.Any(), "Nobody").Return(nil, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name: "StoreError",
			url:  "/balances/Steve/coins",
			buildStubs: func(m *testMocks, cache *balancecache.Cache) {
				m.accounts.EXPECT().LookupByName("Steve").Return(nil, false)
				m.accounts.EXPECT().GetOrFetchByName(gomock.Any(), "Steve").Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			cache := balancecache.New()
			server, m := newTestServer(t, cache, false)
			tc.buildStubs(m, cache)

			recorder, envelope := doRequest(t, server, http.MethodGet, tc.url, nil)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, envelope.Error)
			}

			if tc.checkData != nil {
				tc.checkData(t, envelope.Data)
			}
		})
	}
}

func TestListWallet(t *testing.T) {
	page := accountservice.WalletPage{
		Owner: "Steve",
		Entries: []accountservice.WalletEntry{
			{CurrencyID: "coins", Name: "Coins", Symbol: "c", Balance: decimal.NewFromInt(100)},
		},
		Page:    2,
		MaxPage: 3,
	}

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(m *testMocks)
		wantStatusCode int
		checkData      func(t *testing.T, data json.RawMessage)
	}{
		{
			name: "OK",
			url:  "/wallets/Steve?page=2&page_size=5",
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().ListWallet(gomock.Any(), "Steve", 2, 5).Return(page, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(t *testing.T, data json.RawMessage) {
				var got accountservice.WalletPage
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, "Steve", got.Owner)
				require.Equal(t, 2, got.Page)
				require.Equal(t, 3, got.MaxPage)
				require.Len(t, got.Entries, 1)
			},
		},
		{
			name: "DefaultPaging",
			url:  "/wallets/Steve",
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().ListWallet(gomock.Any(), "Steve", 0, 0).Return(page, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "PageSizeOutOfRange",
			url:            "/wallets/Steve?page_size=1000",
			buildStubs:     func(m *testMocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "AccountNotFound",
			url:  "/wallets/Nobody",
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().
					ListWallet(gomock.Any(), "Nobody", 0, 0).
					Return(accountservice.WalletPage{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t, balancecache.New(), false)
			tc.buildStubs(m)

			recorder, envelope := doRequest(t, server, http.MethodGet, tc.url, nil)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.checkData != nil {
				tc.checkData(t, envelope.Data)
			}
		})
	}
}

func TestOperate(t *testing.T) {
	account := domain.NewAccount(uuid.New(), "Steve")
	ten := decimal.NewFromInt(10)

	type requestBody struct {
		Type     string          `json:"type"`
		Player   string          `json:"player"`
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
		Actor    string          `json:"actor,omitempty"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(m *testMocks, cache *balancecache.Cache)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "GiveOK",
			requestBody: requestBody{Type: "give", Player: "Steve", Currency: "coins", Amount: ten, Actor: "admin"},
			buildStubs: func(m *testMocks, cache *balancecache.Cache) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.engine.EXPECT().
					Give("admin", account, gomock.Any(), gomock.Any()).
					Return(true)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "DefaultActorIsConsole",
			requestBody: requestBody{Type: "take", Player: "Steve", Currency: "coins", Amount: ten},
			buildStubs: func(m *testMocks, cache *balancecache.Cache) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.engine.EXPECT().
					Take("console", account, gomock.Any(), gomock.Any()).
					Return(true)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "SetOK",
			requestBody: requestBody{Type: "set", Player: "Steve", Currency: "coins", Amount: ten},
			buildStubs: func(m *testMocks, cache *balancecache.Cache) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.engine.EXPECT().
					SetBalance("console", account, gomock.Any(), gomock.Any()).
					Return(true)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "Rejected",
			requestBody: requestBody{Type: "take", Player: "Steve", Currency: "coins", Amount: ten},
			buildStubs: func(m *testMocks, cache *balancecache.Cache) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.engine.EXPECT().
					Take(gomock.Any(), account, gomock.Any(), gomock.Any()).
					Return(false)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      ErrOperationRejected.Error(),
		},
		{
			name:           "UnknownOperationType",
			requestBody:    requestBody{Type: "steal", Player: "Steve", Currency: "coins", Amount: ten},
			buildStubs:     func(m *testMocks, cache *balancecache.Cache) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "UnknownCurrency",
			requestBody:    requestBody{Type: "give", Player: "Steve", Currency: "souls", Amount: ten},
			buildStubs:     func(m *testMocks, cache *balancecache.Cache) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			cache := balancecache.New()
			server, m := newTestServer(t, cache, false)
			tc.buildStubs(m, cache)

			recorder, envelope := doRequest(t, server, http.MethodPost, "/operations", tc.requestBody)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, envelope.Error)
			}
		})
	}
}

func TestSendPayment(t *testing.T) {
	from := domain.NewAccount(uuid.New(), "Alice")
	to := domain.NewAccount(uuid.New(), "Bob")
	ten := decimal.NewFromInt(10)

	type requestBody struct {
		From     string          `json:"from"`
		To       string          `json:"to"`
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(m *testMocks)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: requestBody{From: "Alice", To: "Bob", Currency: "coins", Amount: ten},
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Alice").Return(from, true)
				m.accounts.EXPECT().LookupByName("Bob").Return(to, true)
				m.engine.EXPECT().Send(from, to, gomock.Any(), gomock.Any()).Return(true)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "Rejected",
			requestBody: requestBody{From: "Alice", To: "Bob", Currency: "coins", Amount: ten},
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Alice").Return(from, true)
				m.accounts.EXPECT().LookupByName("Bob").Return(to, true)
				m.engine.EXPECT().Send(from, to, gomock.Any(), gomock.Any()).Return(false)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      ErrOperationRejected.Error(),
		},
		{
			name:        "ReceiverNotFound",
			requestBody: requestBody{From: "Alice", To: "Nobody", Currency: "coins", Amount: ten},
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Alice").Return(from, true)
				m.accounts.EXPECT().LookupByName("Nobody").Return(nil, false)
				m.accounts.EXPECT().GetOrFetchByName(gomock.Any(), "Nobody").Return(nil, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "MissingSender",
			requestBody:    requestBody{To: "Bob", Currency: "coins", Amount: ten},
			buildStubs:     func(m *testMocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t, balancecache.New(), false)
			tc.buildStubs(m)

			recorder, envelope := doRequest(t, server, http.MethodPost, "/payments", tc.requestBody)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, envelope.Error)
			}
		})
	}
}

func TestExchange(t *testing.T) {
	account := domain.NewAccount(uuid.New(), "Steve")
	hundred := decimal.NewFromInt(100)

	type requestBody struct {
		Player       string          `json:"player"`
		FromCurrency string          `json:"from_currency"`
		ToCurrency   string          `json:"to_currency"`
		Amount       decimal.Decimal `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(m *testMocks)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: requestBody{Player: "Steve", FromCurrency: "coins", ToCurrency: "gems", Amount: hundred},
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.engine.EXPECT().
					Exchange(account, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "Rejected",
			requestBody: requestBody{Player: "Steve", FromCurrency: "coins", ToCurrency: "gems", Amount: hundred},
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.engine.EXPECT().
					Exchange(account, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      ErrOperationRejected.Error(),
		},
		{
			name:           "UnknownTargetCurrency",
			requestBody:    requestBody{Player: "Steve", FromCurrency: "coins", ToCurrency: "souls", Amount: hundred},
			buildStubs:     func(m *testMocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t, balancecache.New(), false)
			tc.buildStubs(m)

			recorder, envelope := doRequest(t, server, http.MethodPost, "/exchanges", tc.requestBody)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, envelope.Error)
			}
		})
	}
}

func TestTogglePayments(t *testing.T) {
	account := domain.NewAccount(uuid.New(), "Steve")

	server, m := newTestServer(t, balancecache.New(), false)

	m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
	m.presence.EXPECT().IsOnline("Steve").Return(true)
	m.accounts.EXPECT().
		TogglePayments(gomock.Any(), account, gomock.Any(), true).
		Return(false)

	body := map[string]string{"currency": "coins"}
	recorder, envelope := doRequest(t, server, http.MethodPost, "/players/Steve/payments", body)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got togglePaymentsData
	require.NoError(t, json.Unmarshal(envelope.Data, &got))
	require.Equal(t, "Steve", got.Player)
	require.Equal(t, "coins", got.Currency)
	require.False(t, got.PaymentsEnabled)
}

func TestResetBalances(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    any
		buildStubs     func(m *testMocks)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "AllCurrencies",
			requestBody: nil,
			buildStubs: func(m *testMocks) {
				m.engine.EXPECT().ResetBalances(gomock.Any(), nil).Return(nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:        "SingleCurrency",
			requestBody: map[string]string{"currency": "coins"},
			buildStubs: func(m *testMocks) {
				m.engine.EXPECT().
					ResetBalances(gomock.Any(), gomock.Not(gomock.Nil())).
					Return(nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:        "AlreadyRunning",
			requestBody: nil,
			buildStubs: func(m *testMocks) {
				m.engine.EXPECT().ResetBalances(gomock.Any(), nil).Return(domain.ErrOperationsDisabled)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrOperationsDisabled.Error(),
		},
		{
			name:        "InternalError",
			requestBody: nil,
			buildStubs: func(m *testMocks) {
				m.engine.EXPECT().ResetBalances(gomock.Any(), nil).Return(errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
		{
			name:           "UnknownCurrency",
			requestBody:    map[string]string{"currency": "souls"},
			buildStubs:     func(m *testMocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t, balancecache.New(), false)
			tc.buildStubs(m)

			recorder, envelope := doRequest(t, server, http.MethodPost, "/admin/balance-reset", tc.requestBody)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, envelope.Error)
			}
		})
	}
}

func TestGetTops(t *testing.T) {
	entries := []domain.TopEntry{
		{Position: 1, AccountID: uuid.New(), Name: "Alice", Balance: decimal.NewFromInt(500)},
		{Position: 2, AccountID: uuid.New(), Name: "Bob", Balance: decimal.NewFromInt(250)},
	}

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(m *testMocks)
		wantStatusCode int
		checkData      func(t *testing.T, data json.RawMessage)
	}{
		{
			name: "DefaultLimit",
			url:  "/tops/coins",
			buildStubs: func(m *testMocks) {
				m.tops.EXPECT().Snapshot("coins", 10).Return(entries)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(t *testing.T, data json.RawMessage) {
				var got topsData
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, "coins", got.Currency)
				require.Len(t, got.Entries, 2)
				require.Equal(t, "Alice", got.Entries[0].Name)
			},
		},
		{
			name: "ExplicitLimit",
			url:  "/tops/coins?limit=1",
			buildStubs: func(m *testMocks) {
				m.tops.EXPECT().Snapshot("coins", 1).Return(entries[:1])
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "UnknownCurrency",
			url:            "/tops/souls",
			buildStubs:     func(m *testMocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t, balancecache.New(), false)
			tc.buildStubs(m)

			recorder, envelope := doRequest(t, server, http.MethodGet, tc.url, nil)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.checkData != nil {
				tc.checkData(t, envelope.Data)
			}
		})
	}
}

func TestListPlayers(t *testing.T) {
	t.Run("StandaloneNode", func(t *testing.T) {
		server, _ := newTestServer(t, balancecache.New(), false)

		recorder, envelope := doRequest(t, server, http.MethodGet, "/players", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var got playersData
		require.NoError(t, json.Unmarshal(envelope.Data, &got))
		require.Empty(t, got.Players)
	})

	t.Run("ClusterNode", func(t *testing.T) {
		server, m := newTestServer(t, balancecache.New(), true)

		m.cluster.EXPECT().AllPlayerNames().Return([]string{"Alice", "Bob"})

		recorder, envelope := doRequest(t, server, http.MethodGet, "/players", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var got playersData
		require.NoError(t, json.Unmarshal(envelope.Data, &got))
		require.Equal(t, []string{"Alice", "Bob"}, got.Players)
	})
}

func TestPlayerJoin(t *testing.T) {
	account := domain.NewAccount(uuid.New(), "Steve")

	testCases := []struct {
		name           string
		withCluster    bool
		buildStubs     func(m *testMocks)
		wantStatusCode int
	}{
		{
			name:        "KnownPlayer",
			withCluster: true,
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.presence.EXPECT().Join(account.ID, "Steve")
				m.cluster.EXPECT().RequestUserSync(account.ID)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "AutoRegistered",
			withCluster: true,
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Steve").Return(nil, false)
				m.accounts.EXPECT().GetOrFetchByName(gomock.Any(), "Steve").Return(nil, domain.ErrAccountNotFound)
				m.accounts.EXPECT().AutoRegister(gomock.Any(), "Steve").Return(account, nil)
				m.presence.EXPECT().Join(account.ID, "Steve")
				m.cluster.EXPECT().RequestUserSync(account.ID)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "StandaloneSkipsSyncRequest",
			withCluster: false,
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
				m.presence.EXPECT().Join(account.ID, "Steve")
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "RegistrationDisabled",
			withCluster: true,
			buildStubs: func(m *testMocks) {
				m.accounts.EXPECT().LookupByName("Steve").Return(nil, false)
				m.accounts.EXPECT().GetOrFetchByName(gomock.Any(), "Steve").Return(nil, domain.ErrAccountNotFound)
				m.accounts.EXPECT().AutoRegister(gomock.Any(), "Steve").Return(nil, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, m := newTestServer(t, balancecache.New(), tc.withCluster)
			tc.buildStubs(m)

			recorder, envelope := doRequest(t, server, http.MethodPost, "/players/Steve/join", nil)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if recorder.Code == http.StatusOK {
				var got playerData
				require.NoError(t, json.Unmarshal(envelope.Data, &got))
				require.Equal(t, "Steve", got.Player)
				require.Equal(t, account.ID, got.AccountID)
			}
		})
	}
}

func TestPlayerQuit(t *testing.T) {
	account := domain.NewAccount(uuid.New(), "Steve")

	t.Run("KnownPlayer", func(t *testing.T) {
		server, m := newTestServer(t, balancecache.New(), false)

		m.accounts.EXPECT().LookupByName("Steve").Return(account, true)
		m.presence.EXPECT().Quit(account.ID)
		m.accounts.EXPECT().SaveAsync(account)

		recorder, _ := doRequest(t, server, http.MethodPost, "/players/Steve/quit", nil)

		require.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("UnknownPlayerIsNoop", func(t *testing.T) {
		server, m := newTestServer(t, balancecache.New(), false)

		m.accounts.EXPECT().LookupByName("Nobody").Return(nil, false)

		recorder, _ := doRequest(t, server, http.MethodPost, "/players/Nobody/quit", nil)

		require.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
