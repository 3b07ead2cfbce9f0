package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/cookie"
	"github.com/gin-gonic/gin"
)

const (
	loginFailed  = "Invalid email or password"
	signupFailed = "Failed to create account"
)

// AuthHandler handles login, signup and logout
type AuthHandler struct {
	pages    *Pages
	auth     usecase.AuthUseCase
	sessions usecase.SessionUseCase
	codec    *cookie.Codec
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	pages *Pages,
	auth usecase.AuthUseCase,
	sessions usecase.SessionUseCase,
	codec *cookie.Codec,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		pages:    pages,
		auth:     auth,
		sessions: sessions,
		codec:    codec,
		logger:   logger,
	}
}

// LoginPage handles GET /auth/login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.pages.Render(c, http.StatusOK, "login", "Sign in", view.AuthData{})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.Render(c, http.StatusBadRequest, "login", "Sign in", view.AuthData{Error: "Please fill in all fields"})
		return
	}

	session := entity.SessionFromContext(c.Request.Context())
	if err := h.auth.Login(c.Request.Context(), session, form.Email, form.Password); err != nil {
		_ = c.Error(err)
		h.pages.Render(c, statusFor(err), "login", "Sign in", view.AuthData{
			Error: domainerr.UserMessage(err, loginFailed),
			Email: form.Email,
		})
		return
	}
	if !h.rotate(c, session) {
		return
	}

	c.Redirect(http.StatusSeeOther, middleware.HomePath)
}

// rotate gives a signed-in session a new ID so an ID known before sign-in stops working.
// On failure the credentials are discarded and an error page is rendered.
func (h *AuthHandler) rotate(c *gin.Context, session *entity.Session) bool {
	if err := h.sessions.Rotate(c.Request.Context(), session); err != nil {
		session.SignOut()
		h.pages.Error(c, err, "Failed to sign in")
		return false
	}
	return true
}

// SignupPage handles GET /auth/signup. A ?ref= code pre-fills the referral field.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	var query dto.SignupQuery
	// An oversized code is dropped rather than rejected
	_ = c.ShouldBindQuery(&query)
	h.pages.Render(c, http.StatusOK, "signup", "Create account", view.AuthData{ReferredByCode: query.Ref})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.Render(c, http.StatusBadRequest, "signup", "Create account", view.AuthData{Error: signupFailed})
		return
	}

	session := entity.SessionFromContext(c.Request.Context())
	signedIn, err := h.auth.Signup(c.Request.Context(), session, form.ToInput())
	if err != nil {
		_ = c.Error(err)
		h.pages.Render(c, statusFor(err), "signup", "Create account", view.AuthData{
			Error:          domainerr.UserMessage(err, signupFailed),
			Name:           form.Name,
			Email:          form.Email,
			WalletAddress:  form.WalletAddress,
			ReferredByCode: form.ReferredByCode,
		})
		return
	}

	if !signedIn {
		h.pages.Redirect(c, entity.FlashSuccess, "Account created successfully! Please sign in.", middleware.LoginPath)
		return
	}
	if !h.rotate(c, session) {
		return
	}
	h.pages.Redirect(c, entity.FlashSuccess, "Account created successfully!", middleware.HomePath)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.auth.Logout(ctx, entity.SessionFromContext(ctx)); err != nil {
		h.logger.Warn("Logout failed", map[string]any{
			"request_id": coreport.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}
	if err := middleware.DestroySession(c, h.sessions, h.codec); err != nil {
		h.logger.Error("Failed to destroy session", map[string]any{
			"request_id": coreport.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
