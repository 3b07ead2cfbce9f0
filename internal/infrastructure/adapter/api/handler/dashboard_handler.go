package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the signed-in overview
type DashboardHandler struct {
	pages   *Pages
	account usecase.AccountUseCase
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(pages *Pages, account usecase.AccountUseCase) *DashboardHandler {
	return &DashboardHandler{pages: pages, account: account}
}

// Dashboard handles GET /app/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.account.Dashboard(c.Request.Context())
	if err != nil {
		h.pages.Error(c, err, "Failed to load dashboard")
		return
	}
	h.pages.Render(c, http.StatusOK, "dashboard", "Dashboard", view.DashboardData{Dashboard: dashboard})
}
