package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// Pages renders full pages with the shared layout, flashes and error cards
type Pages struct {
	account usecase.AccountUseCase
	logger  coreport.Logger
}

// NewPages creates a page renderer. account supplies the user shown in the navigation.
func NewPages(account usecase.AccountUseCase, logger coreport.Logger) *Pages {
	return &Pages{
		account: account,
		logger:  logger,
	}
}

// Render writes page name with data. Queued flashes are consumed.
func (p *Pages) Render(c *gin.Context, status int, name, title string, data any) {
	ctx := c.Request.Context()
	page := view.Page{
		Title: title,
		Path:  c.Request.URL.Path,
		Data:  data,
	}
	if s := entity.SessionFromContext(ctx); s != nil {
		page.SignedIn = s.HasToken()
		page.Flashes = s.PopFlashes()
		if page.SignedIn {
			// The navigation degrades to no user when the profile cannot be read
			page.User, _ = p.account.User(ctx)
		}
	}
	c.HTML(status, name, page)
}

// Error logs err and renders the generic error card with a retry link for GET requests
func (p *Pages) Error(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	fields := map[string]any{
		"path":       c.Request.URL.Path,
		"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		"error_code": domainerr.ErrorCode(err),
		"error":      err.Error(),
	}
	var apiErr *domainerr.APIError
	if errors.As(err, &apiErr) {
		for k, v := range apiErr.LogFields() {
			fields[k] = v
		}
	}
	if status >= http.StatusInternalServerError {
		p.logger.Error("Page failed", fields)
	} else {
		p.logger.Warn("Page failed", fields)
	}

	data := view.ErrorData{Message: domainerr.UserMessage(err, fallback)}
	if c.Request.Method == http.MethodGet {
		data.RetryURL = c.Request.URL.RequestURI()
	}
	_ = c.Error(err)
	p.Render(c, status, "error", "Error", data)
}

// Redirect queues a flash and answers with 303 See Other
func (p *Pages) Redirect(c *gin.Context, kind entity.FlashKind, message, location string) {
	if s := entity.SessionFromContext(c.Request.Context()); s != nil && message != "" {
		s.AddFlash(kind, message)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// Reject flashes the user-facing message of err and redirects back to location
func (p *Pages) Reject(c *gin.Context, err error, fallback, location string) {
	if !domainerr.IsValidationError(err) {
		p.logger.Warn("Form submission failed", map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			"error_code": domainerr.ErrorCode(err),
			"error":      err.Error(),
		})
	}
	_ = c.Error(err)
	p.Redirect(c, entity.FlashError, domainerr.UserMessage(err, fallback), location)
}

// StatusPage returns a handler that renders message with the status already set on the response
func (p *Pages) StatusPage(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.HTML(status, "error", view.Page{
			Title: "Error",
			Path:  c.Request.URL.Path,
			Data:  view.ErrorData{Message: message},
		})
	}
}

// NotFound renders the 404 page
func (p *Pages) NotFound(c *gin.Context) {
	p.Render(c, http.StatusNotFound, "not_found", "Page not found", nil)
}

// statusFor maps an error onto the page status code
func statusFor(err error) int {
	var apiErr *domainerr.APIError
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		switch apiErr.Kind {
		case domainerr.KindTimeout:
			return http.StatusGatewayTimeout
		case domainerr.KindNotFound:
			return http.StatusNotFound
		case domainerr.KindAuth:
			return http.StatusUnauthorized
		case domainerr.KindValidation:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusBadGateway
		}
	case errors.Is(err, domainerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrSessionStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
