package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/persistence"
	accountUseCase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/account"
	authUseCase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/auth"
	fundsUseCase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/funds"
	investmentUseCase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/investment"
	ledgerUseCase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/ledger"
	sessionUseCase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/session"
	walletUseCase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/apiclient"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/cookie"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

// sessionStore is a session repository that can report its own health
type sessionStore interface {
	persistence.SessionRepository
	Ping(ctx context.Context) error
}

// serve wires every component and runs the HTTP server until SIGINT or SIGTERM
func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Environment == config.Test {
		gin.SetMode(gin.TestMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Production:  cfg.Logger.Format == "json",
		Level:       cfg.Logger.Level,
		OutputPaths: []string{cfg.Logger.Output},
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	tp := timeProvider.NewRealTimeProvider()

	// Metrics are optional; the recorder falls back to a no-op
	var (
		recorder coreport.MetricsRecorder = coreport.NoopMetrics{}
		observer middleware.RequestObserver
		prom     *metrics.Prometheus
	)
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheus()
		recorder = prom
		observer = prom
	}

	limits, err := buildLimits(cfg.Limits)
	if err != nil {
		return err
	}

	// Session store
	store, closeStore, err := openSessionStore(ctx, cfg, prom, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to open session store", map[string]any{
			"store": cfg.Session.Store,
			"error": err.Error(),
		})
		return err
	}
	defer closeStore()

	// Per-session query caches
	caches, err := cache.NewManager(cfg.Cache.MaxSessions, cfg.Cache.DefaultStaleTime, tp, recorder, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create query cache: %w", err)
	}

	// Platform API client
	platform, err := apiclient.New(apiclient.Config{
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.API.Timeout,
		UserAgent:    cfg.API.UserAgent,
		MaxIdleConns: cfg.API.MaxIdleConns,
	}, recorder, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create platform client: %w", err)
	}

	// Initialize use cases
	sessions := sessionUseCase.NewService(store, caches, tp, cfg.Session.IdleTimeout, appLogger)
	auth := authUseCase.NewService(platform, caches, appLogger)
	account := accountUseCase.NewService(platform, caches, limits, cfg.Server.PublicURL, appLogger)
	wallets := walletUseCase.NewService(platform, caches, appLogger)
	funds := fundsUseCase.NewService(platform, account, caches, appLogger)
	investments := investmentUseCase.NewService(platform, caches, tp, appLogger)
	ledger := ledgerUseCase.NewService(platform, caches, cfg.Limits.PageSize, appLogger)

	codec, err := cookie.NewCodec(cfg.Session.CookieName, cfg.Session.Secret, cfg.Session.CookieSecure, cfg.Session.IdleTimeout, tp)
	if err != nil {
		return fmt.Errorf("failed to create session cookie codec: %w", err)
	}

	// Expired session sweep
	cleanup, err := scheduler.NewSessionCleanup(cfg.Session.CleanupSchedule, sessions, cfg.Database.QueryTimeout, appLogger)
	if err != nil {
		return fmt.Errorf("failed to schedule session cleanup: %w", err)
	}
	cleanup.Start()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter, err = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, appLogger)
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize API handlers
	pages := handler.NewPages(account, appLogger)
	handlers := routes.Handlers{
		Pages:     pages,
		Public:    handler.NewPublicHandler(pages, account, investments, appLogger),
		Auth:      handler.NewAuthHandler(pages, auth, sessions, codec, appLogger),
		Dashboard: handler.NewDashboardHandler(pages, account),
		Wallet:    handler.NewWalletHandler(pages, wallets, appLogger),
		Invest:    handler.NewInvestHandler(pages, investments, wallets, appLogger),
		Funds:     handler.NewFundsHandler(pages, funds, account, appLogger),
		Ledger:    handler.NewLedgerHandler(pages, ledger, account, investments, appLogger),
		Account:   handler.NewAccountHandler(pages, account, appLogger),
		Health:    handler.NewHealthHandler(store, tp, appLogger),
	}

	// Initialize Gin router
	router := gin.New()
	router.HTMLRender = renderer
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return fmt.Errorf("invalid server.trustedProxies: %w", err)
	}

	routes.SetupMiddlewares(router, pages, observer, appLogger)

	opts := routes.Options{Limiter: limiter, MetricsPath: cfg.Metrics.Path}
	if prom != nil {
		opts.Metrics = prom.Handler()
	}
	routes.SetupRoutes(router, handlers, routes.SessionMiddleware(pages, sessions, codec, appLogger), opts)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":  server.Addr,
			"env":   cfg.Environment,
			"store": cfg.Session.Store,
			"api":   cfg.API.BaseURL,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			cleanup.Stop(context.Background())
			return err
		}
	}

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	cleanup.Stop(shutdownCtx)

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// buildLimits converts the configured form limits into decimals
func buildLimits(c config.LimitsConfig) (entity.Limits, error) {
	minWithdrawal, err := decimal.NewFromString(c.MinWithdrawal)
	if err != nil {
		return entity.Limits{}, fmt.Errorf("invalid limits.minWithdrawal: %w", err)
	}
	minTransfer, err := decimal.NewFromString(c.MinTransfer)
	if err != nil {
		return entity.Limits{}, fmt.Errorf("invalid limits.minTransfer: %w", err)
	}
	fee, err := decimal.NewFromString(c.WithdrawalFeePercent)
	if err != nil {
		return entity.Limits{}, fmt.Errorf("invalid limits.withdrawalFeePercent: %w", err)
	}
	return entity.Limits{
		MinWithdrawal:        minWithdrawal,
		MinTransfer:          minTransfer,
		WithdrawalFeePercent: fee,
		Network:              c.Network,
		ROIPayoutCycle:       c.ROIPayoutCycle,
	}, nil
}

// openSessionStore connects the configured session backend. The returned func releases it.
func openSessionStore(
	ctx context.Context,
	cfg *config.Config,
	prom *metrics.Prometheus,
	tp coreport.TimeProvider,
	appLogger coreport.Logger,
) (sessionStore, func(), error) {
	switch cfg.Session.Store {
	case "postgres":
		dbManager := database.NewManager(database.NewConfig(cfg.Database), appLogger, tp)
		db, err := dbManager.Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		closeDB := func() { _ = dbManager.Close() }

		// Run migrations
		if err := dbManager.Migrate(ctx); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		if prom != nil {
			sqlDB, err := dbManager.SQL()
			if err == nil {
				err = prom.RegisterDB(sqlDB, cfg.Database.Database)
			}
			if err != nil {
				appLogger.Warn("Database pool metrics unavailable", map[string]any{
					"error": err.Error(),
				})
			}
		}

		return repository.NewSessionRepository(db, cfg.Database.QueryTimeout, appLogger), closeDB, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		store := repository.NewRedisSessionRepository(client, cfg.Redis.KeyPrefix, cfg.Session.IdleTimeout, appLogger)

		pingCtx, cancel := context.WithTimeout(ctx, cfg.Redis.DialTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		return store, func() { _ = client.Close() }, nil

	default:
		return repository.NewMemorySessionRepository(), func() {}, nil
	}
}
