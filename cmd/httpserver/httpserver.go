// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/vergecraft/coinsync/internal/accountrepo"
	"github.com/vergecraft/coinsync/internal/accountservice"
	"github.com/vergecraft/coinsync/internal/balancecache"
	"github.com/vergecraft/coinsync/internal/balancedelivery"
	"github.com/vergecraft/coinsync/internal/currencyregistry"
	"github.com/vergecraft/coinsync/internal/middleware"
	"github.com/vergecraft/coinsync/internal/operationengine"
	"github.com/vergecraft/coinsync/internal/presence"
	"github.com/vergecraft/coinsync/internal/reconcile"
	"github.com/vergecraft/coinsync/internal/sched"
	"github.com/vergecraft/coinsync/internal/syncmanager"
	"github.com/vergecraft/coinsync/internal/tops"
	"github.com/vergecraft/coinsync/internal/txlog"
	"github.com/vergecraft/coinsync/pkg/configpkg"
)

// Server holds the db connection, router, primary context and the wired
// domain components.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config

	Loop  *sched.Loop
	Sync  *syncmanager.Manager
	OpLog *txlog.Logger

	logger zerolog.Logger
	stops  []func()
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	registry := currencyregistry.New(logger)
	registry.RegisterDefaults()

	cache := balancecache.New()

	loop := sched.NewLoop(logger)
	loop.Start()

	accountRepo := accountrepo.NewRepoPGS(conn)

	accountService := accountservice.New(accountRepo, cache, registry, loop, logger,
		accountservice.WithAutoRegister(config.AutoRegisterUsers),
		accountservice.WithSyncCooldown(config.SyncCooldown),
		accountservice.WithWalletPageSize(config.WalletEntriesPerPage),
	)

	directory := presence.NewDirectory(logger)

	server := &Server{
		DB:     conn,
		Config: config,
		Loop:   loop,
		logger: logger,
	}

	var opLogger operationengine.TxLogger

	if config.LogToFile {
		server.OpLog = txlog.New(config.LogFilePath, logger)
		opLogger = server.OpLog

		server.stops = append(server.stops, loop.Repeat(config.LogWriteInterval, server.OpLog.Write))
	}

	opEngine := operationengine.New(accountService, opLogger, directory, logger, config.LogToConsole)

	topManager := tops.New(registry, accountService)
	server.stops = append(server.stops, loop.Repeat(config.TopsUpdateInterval, topManager.Rebuild))

	var cluster balancedelivery.Cluster

	var reconcilePub reconcile.Publisher

	if config.SyncEnabled {
		manager := syncmanager.New(syncmanager.Config{
			NodeID:                  config.NodeID,
			BalanceSyncInterval:     config.BalanceSyncInterval,
			LeaderboardSyncInterval: config.LeaderboardSyncInterval,
			LogReplicationEnabled:   config.LogReplicationEnabled,
		}, loop, accountService, registry, topManager, directory, server.OpLog, logger)

		bus, err := syncmanager.NewRedisBus(syncmanager.RedisBusConfig{
			Address:  config.RedisAddress,
			Password: config.RedisPassword,
			TLS:      config.RedisTLS,
			Channel:  config.SyncChannel,
		})
		if err != nil {
			// No reconnect: a node that cannot reach the channel runs
			// standalone until restart.
			logger.Error().Err(err).Msg("cannot connect to sync channel, running standalone")
		} else if err := manager.Connect(bus); err == nil {
			accountService.SetPublisher(manager)
			opEngine.SetPublisher(manager)

			cluster = manager
			reconcilePub = manager
			server.Sync = manager
		}
	}

	sweeper := reconcile.New(loop, accountService, accountRepo, registry, opEngine, reconcilePub,
		config.ReconcileInterval, config.SyncCooldown, logger)
	server.stops = append(server.stops, sweeper.Start())

	handler := balancedelivery.NewHandler(accountService, opEngine, cache, registry, topManager, directory, cluster, loop)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/balances/:name/:currency", handler.GetBalance)
	engine.GET("/wallets/:name", handler.ListWallet)
	engine.GET("/tops/:currency", handler.GetTops)
	engine.GET("/players", handler.ListPlayers)

	engine.POST("/players/:name/join", handler.PlayerJoin)
	engine.POST("/players/:name/quit", handler.PlayerQuit)
	engine.POST("/players/:name/payments", handler.TogglePayments)

	engine.POST("/operations", handler.Operate)
	engine.POST("/payments", handler.SendPayment)
	engine.POST("/exchanges", handler.Exchange)
	engine.POST("/admin/balance-reset", handler.ResetBalances)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", balancedelivery.ValidCurrency(registry))
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	server.Engine = engine

	return server, nil
}

// Shutdown stops the timers, the sync manager and the primary context,
// flushing pending work before returning.
func (s *Server) Shutdown() {
	for _, stop := range s.stops {
		stop()
	}

	if s.Sync != nil {
		s.Sync.Shutdown()
	}

	s.Loop.Stop()

	if s.OpLog != nil {
		if err := s.OpLog.Close(); err != nil {
			s.logger.Error().Err(err).Msg("cannot close operation log")
		}
	}
}
