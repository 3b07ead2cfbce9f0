package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

const subscriptionsPath = "/app/subscriptions"

// InvestHandler serves the plan list and drives the investment flow
type InvestHandler struct {
	pages      *Pages
	investment usecase.InvestmentUseCase
	wallet     usecase.WalletUseCase
	logger     coreport.Logger
}

// NewInvestHandler creates a new investment handler instance
func NewInvestHandler(
	pages *Pages,
	investment usecase.InvestmentUseCase,
	wallet usecase.WalletUseCase,
	logger coreport.Logger,
) *InvestHandler {
	return &InvestHandler{
		pages:      pages,
		investment: investment,
		wallet:     wallet,
		logger:     logger,
	}
}

// Subscriptions handles GET /app/subscriptions
func (h *InvestHandler) Subscriptions(c *gin.Context) {
	ctx := c.Request.Context()

	plans, err := h.investment.Plans(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load plans")
		return
	}

	data := view.SubscriptionsData{Plans: plans}
	if s := entity.SessionFromContext(ctx); s != nil && s.Investment != nil {
		data.Flow = s.Investment
		for i := range plans {
			if plans[i].ID == data.Flow.PlanID {
				data.Plan = &plans[i]
				break
			}
		}
		if data.Flow.State == entity.FlowAwaitingPaymentProof {
			if data.Deposit, err = h.wallet.DepositAddress(ctx); err != nil {
				h.logger.Warn("Investment flow without deposit address", map[string]any{
					"request_id": coreport.RequestIDFromContext(ctx),
					"error":      err.Error(),
				})
			}
		}
	}

	h.pages.Render(c, http.StatusOK, "subscriptions", "Subscriptions", data)
}

// Start handles POST /app/subscriptions/:planId/invest
func (h *InvestHandler) Start(c *gin.Context) {
	flow, err := h.investment.Start(c.Request.Context(), c.Param("planId"))
	if err != nil {
		h.pages.Reject(c, err, "Failed to start investment", subscriptionsPath)
		return
	}
	h.pages.Redirect(c, entity.FlashInfo, flow.PlanName+" selected! Redirecting to payment...", subscriptionsPath)
}

// Amount handles POST /app/subscriptions/invest/amount
func (h *InvestHandler) Amount(c *gin.Context) {
	var form dto.InvestAmountForm
	_ = c.ShouldBind(&form)

	if _, err := h.investment.EnterAmount(c.Request.Context(), form.Amount); err != nil {
		h.pages.Reject(c, err, "Please enter a valid amount", subscriptionsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, subscriptionsPath)
}

// Proof handles POST /app/subscriptions/invest/proof. Upstream failures stay on the flow.
func (h *InvestHandler) Proof(c *gin.Context) {
	var form dto.InvestProofForm
	_ = c.ShouldBind(&form)

	flow, err := h.investment.Submit(c.Request.Context(), form.TransactionID)
	switch {
	case err == nil:
		h.pages.Redirect(c, entity.FlashSuccess, "Investment created successfully!", subscriptionsPath)
	case flow != nil && flow.LastError != "" && !domainerr.IsValidationError(err) && !errors.Is(err, domainerr.ErrInvalidTransition):
		_ = c.Error(err)
		c.Redirect(http.StatusSeeOther, subscriptionsPath)
	default:
		h.pages.Reject(c, err, "Failed to create investment", subscriptionsPath)
	}
}

// Reset handles POST /app/subscriptions/invest/reset
func (h *InvestHandler) Reset(c *gin.Context) {
	if _, err := h.investment.Reset(c.Request.Context()); err != nil {
		h.pages.Reject(c, err, "Failed to reset investment", subscriptionsPath)
		return
	}
	c.Redirect(http.StatusSeeOther, subscriptionsPath)
}

// Cancel handles POST /app/subscriptions/invest/cancel
func (h *InvestHandler) Cancel(c *gin.Context) {
	h.investment.Cancel(c.Request.Context())
	c.Redirect(http.StatusSeeOther, subscriptionsPath)
}
