package handler

import (
	"net/http"
	"net/url"
	"strconv"

	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// LedgerHandler serves the transaction, ROI and notification lists
type LedgerHandler struct {
	pages      *Pages
	ledger     usecase.LedgerUseCase
	account    usecase.AccountUseCase
	investment usecase.InvestmentUseCase
	logger     coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(
	pages *Pages,
	ledger usecase.LedgerUseCase,
	account usecase.AccountUseCase,
	investment usecase.InvestmentUseCase,
	logger coreport.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		pages:      pages,
		ledger:     ledger,
		account:    account,
		investment: investment,
		logger:     logger,
	}
}

// Transactions handles GET /app/transactions
func (h *LedgerHandler) Transactions(c *gin.Context) {
	var query dto.TransactionFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
		return
	}

	filter := query.ToFilter()
	transactions, err := h.ledger.Transactions(c.Request.Context(), filter)
	if err != nil {
		h.pages.Error(c, err, "Failed to load transactions")
		return
	}
	h.pages.Render(c, http.StatusOK, "transactions", "Transactions", view.TransactionsData{
		Transactions: transactions,
		Filter:       filter,
	})
}

// Redeem handles GET /app/redeem. ?pages= is how many ROI pages are shown.
func (h *LedgerHandler) Redeem(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.ROIFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
		return
	}

	filter := query.ToFilter()
	roi, err := h.ledger.ROIRecords(ctx, filter, query.Count())
	if err != nil {
		h.pages.Error(c, err, "Failed to load ROI records")
		return
	}

	plans, err := h.investment.Plans(ctx)
	if err != nil {
		h.logger.Warn("Redeem filter without plans", map[string]any{
			"request_id": coreport.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}

	h.pages.Render(c, http.StatusOK, "redeem", "Redeem", view.RedeemData{
		ROI:     roi,
		Filter:  filter,
		Plans:   plans,
		NextURL: nextPageURL(c.Request.URL, roi.Pages),
		Cycle:   h.account.Limits(ctx).ROIPayoutCycle,
	})
}

// Notifications handles GET /app/notifications
func (h *LedgerHandler) Notifications(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
		return
	}

	notifications, err := h.ledger.Notifications(c.Request.Context(), query.Count())
	if err != nil {
		h.pages.Error(c, err, "Failed to load notifications")
		return
	}
	h.pages.Render(c, http.StatusOK, "notifications", "Notifications", view.NotificationsData{
		Notifications: notifications,
		NextURL:       nextPageURL(c.Request.URL, notifications.Pages),
	})
}

// nextPageURL returns u with one more page requested, keeping every other query parameter.
// It returns "" once pages reaches dto.MaxPages.
func nextPageURL(u *url.URL, pages int) string {
	if pages >= dto.MaxPages {
		return ""
	}
	q := u.Query()
	q.Set("pages", strconv.Itoa(max(pages, 1)+1))
	next := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return next.String()
}
