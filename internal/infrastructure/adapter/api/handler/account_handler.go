package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

const settingsPath = "/app/settings"

// AccountHandler serves the referral and settings pages
type AccountHandler struct {
	pages   *Pages
	account usecase.AccountUseCase
	logger  coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(pages *Pages, account usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		pages:   pages,
		account: account,
		logger:  logger,
	}
}

// Referrals handles GET /app/referrals
func (h *AccountHandler) Referrals(c *gin.Context) {
	ctx := c.Request.Context()

	referrals, err := h.account.Referrals(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load referrals")
		return
	}
	user, err := h.account.User(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load account")
		return
	}

	h.pages.Render(c, http.StatusOK, "referrals", "Referrals", view.ReferralsData{
		Referrals: referrals,
		User:      user,
	})
}

// Settings handles GET /app/settings
func (h *AccountHandler) Settings(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.account.User(ctx)
	if err != nil {
		h.pages.Error(c, err, "Failed to load account")
		return
	}

	// Support contacts are optional on this page
	setting, err := h.account.Setting(ctx)
	if err != nil {
		h.logger.Warn("Settings page without platform setting", map[string]any{
			"request_id": coreport.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}

	h.pages.Render(c, http.StatusOK, "settings", "Settings", view.SettingsData{
		User:    user,
		Setting: setting,
	})
}

// UpdateSettings handles POST /app/settings
func (h *AccountHandler) UpdateSettings(c *gin.Context) {
	var form dto.ProfileForm
	_ = c.ShouldBind(&form)

	if _, err := h.account.UpdateProfile(c.Request.Context(), form.ToUpdate()); err != nil {
		h.pages.Reject(c, err, "Failed to update user", settingsPath)
		return
	}
	h.pages.Redirect(c, entity.FlashSuccess, "Settings saved successfully!", settingsPath)
}
