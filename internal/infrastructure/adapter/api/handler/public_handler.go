package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// PublicHandler serves the pages visible without signing in
type PublicHandler struct {
	pages      *Pages
	account    usecase.AccountUseCase
	investment usecase.InvestmentUseCase
	logger     coreport.Logger
}

// NewPublicHandler creates a new public page handler
func NewPublicHandler(
	pages *Pages,
	account usecase.AccountUseCase,
	investment usecase.InvestmentUseCase,
	logger coreport.Logger,
) *PublicHandler {
	return &PublicHandler{
		pages:      pages,
		account:    account,
		investment: investment,
		logger:     logger,
	}
}

// Home handles GET /
func (h *PublicHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	data := view.HomeData{}

	// The landing page still renders when plans or settings are unavailable
	plans, err := h.investment.Plans(ctx)
	if err != nil {
		h.logger.Warn("Landing page without plans", map[string]any{
			"request_id": coreport.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}
	data.Plans = plans
	data.Setting, _ = h.account.Setting(ctx)

	h.pages.Render(c, http.StatusOK, "home", view.Brand, data)
}

// Privacy handles GET /app/privacy-policy
func (h *PublicHandler) Privacy(c *gin.Context) {
	h.pages.Render(c, http.StatusOK, "privacy", "Privacy Policy", nil)
}

// Terms handles GET /app/terms-of-service
func (h *PublicHandler) Terms(c *gin.Context) {
	h.pages.Render(c, http.StatusOK, "terms", "Terms of Service", nil)
}
