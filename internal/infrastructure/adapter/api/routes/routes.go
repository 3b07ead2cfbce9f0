package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/cookie"
	"github.com/gin-gonic/gin"
)

// Handlers groups every page handler the router serves
type Handlers struct {
	Pages     *handler.Pages
	Public    *handler.PublicHandler
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Wallet    *handler.WalletHandler
	Invest    *handler.InvestHandler
	Funds     *handler.FundsHandler
	Ledger    *handler.LedgerHandler
	Account   *handler.AccountHandler
	Health    *handler.HealthHandler
}

// Options holds the optional parts of the router
type Options struct {
	// Limiter guards form submissions; nil disables rate limiting
	Limiter *middleware.RateLimiter
	// Metrics is mounted on MetricsPath when not nil
	Metrics     http.Handler
	MetricsPath string
}

// SetupRoutes configures all the routes of the dashboard. Pages run behind session;
// /healthz and the metrics endpoint do not.
func SetupRoutes(router *gin.Engine, h Handlers, session gin.HandlerFunc, opts Options) {
	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if opts.Limiter != nil {
		limit = middleware.RateLimit(opts.Limiter, h.Pages.StatusPage("Too many requests. Please wait a moment and try again."))
	}

	router.GET("/healthz", h.Health.Health)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(opts.Metrics))
	}

	pages := router.Group("/", session)

	// Pages for visitors that are not signed in
	guest := pages.Group("/", middleware.RequireGuest())
	{
		guest.GET("/", h.Public.Home)
		guest.GET("/auth/login", h.Auth.LoginPage)
		guest.POST("/auth/login", limit, h.Auth.Login)
		guest.GET("/auth/signup", h.Auth.SignupPage)
		guest.POST("/auth/signup", limit, h.Auth.Signup)
		guest.GET("/app/privacy-policy", h.Public.Privacy)
		guest.GET("/app/terms-of-service", h.Public.Terms)
	}

	pages.POST("/auth/logout", h.Auth.Logout)

	// Signed-in pages
	app := pages.Group("/app", middleware.RequireSession())
	{
		app.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, middleware.HomePath) })
		app.GET("/dashboard", h.Dashboard.Dashboard)

		app.GET("/wallet", h.Wallet.Wallet)
		app.POST("/wallet", limit, h.Wallet.CreateWallet)

		app.GET("/subscriptions", h.Invest.Subscriptions)
		app.POST("/subscriptions/:planId/invest", limit, h.Invest.Start)
		app.POST("/subscriptions/invest/amount", limit, h.Invest.Amount)
		app.POST("/subscriptions/invest/proof", limit, h.Invest.Proof)
		app.POST("/subscriptions/invest/reset", h.Invest.Reset)
		app.POST("/subscriptions/invest/cancel", h.Invest.Cancel)

		app.GET("/withdraw", h.Funds.Withdraw)
		app.POST("/withdraw", limit, h.Funds.CreateWithdrawal)
		app.GET("/transfer", h.Funds.Transfer)
		app.POST("/transfer", limit, h.Funds.CreateTransfer)

		app.GET("/transactions", h.Ledger.Transactions)
		app.GET("/redeem", h.Ledger.Redeem)
		app.GET("/notifications", h.Ledger.Notifications)

		app.GET("/referrals", h.Account.Referrals)
		app.GET("/settings", h.Account.Settings)
		app.POST("/settings", limit, h.Account.UpdateSettings)
	}

	router.NoRoute(session, h.Pages.NotFound)
}

// SetupMiddlewares configures global middlewares for the dashboard.
// observer may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, pages *handler.Pages, observer middleware.RequestObserver, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger, pages.StatusPage("Something went wrong")))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
}

// SessionMiddleware loads the browser session for page routes
func SessionMiddleware(pages *handler.Pages, sessions usecase.SessionUseCase, codec *cookie.Codec, logger coreport.Logger) gin.HandlerFunc {
	return middleware.Sessions(sessions, codec, logger, pages.StatusPage("Service temporarily unavailable. Please try again shortly."))
}
