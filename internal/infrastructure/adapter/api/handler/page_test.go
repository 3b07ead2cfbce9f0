package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domainerr.NewValidationError("amount", "Please enter a valid amount", domainerr.ErrInvalidAmount), http.StatusUnprocessableEntity},
		{"upstream not found", domainerr.NewAPIError("GET", "/plan", http.StatusNotFound, ""), http.StatusNotFound},
		{"upstream server", domainerr.NewAPIError("GET", "/plan", http.StatusInternalServerError, ""), http.StatusBadGateway},
		{"upstream rejected token", domainerr.NewAPIError("GET", "/user/u1", http.StatusUnauthorized, ""), http.StatusUnauthorized},
		{"upstream bad request", domainerr.NewAPIError("POST", "/wallet/create", http.StatusBadRequest, "Invalid address"), http.StatusUnprocessableEntity},
		{"upstream timeout", &domainerr.APIError{Kind: domainerr.KindTimeout, Method: "GET", Path: "/plan"}, http.StatusGatewayTimeout},
		{"unauthenticated", domainerr.ErrUnauthenticated, http.StatusUnauthorized},
		{"wallet missing", domainerr.ErrWalletNotFound, http.StatusNotFound},
		{"bad transition", fmt.Errorf("%w: done -> submitting", domainerr.ErrInvalidTransition), http.StatusConflict},
		{"session store", domainerr.ErrSessionStore, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestPages(t *testing.T) {
	t.Run("should render the error card with a retry link for GET requests", func(t *testing.T) {
		// Arrange
		h := newHarness(t, true)
		h.router.GET("/app/dashboard", func(c *gin.Context) {
			h.pages.Error(c, domainerr.NewAPIError("GET", "/dashboard", http.StatusInternalServerError, ""), "Failed to load dashboard")
		})

		// Act
		w := h.get("/app/dashboard?x=1")

		// Assert
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to load dashboard")
		assert.Contains(t, w.Body.String(), `href="/app/dashboard?x=1"`)
	})

	t.Run("should prefer the server message over the fallback", func(t *testing.T) {
		h := newHarness(t, true)
		h.router.GET("/app/wallet", func(c *gin.Context) {
			h.pages.Error(c, domainerr.NewAPIError("GET", "/wallet", http.StatusBadRequest, "Wallet locked"), "Failed to fetch wallet")
		})

		w := h.get("/app/wallet")

		assert.Contains(t, w.Body.String(), "Wallet locked")
	})

	t.Run("should consume flashes when rendering", func(t *testing.T) {
		// Arrange
		h := newHarness(t, true)
		h.session.AddFlash(entity.FlashSuccess, "Wallet created successfully!")
		h.router.GET("/app/privacy", func(c *gin.Context) {
			h.pages.Render(c, http.StatusOK, "privacy", "Privacy Policy", nil)
		})

		// Act
		w := h.get("/app/privacy")

		// Assert
		assert.Contains(t, w.Body.String(), "Wallet created successfully!")
		assert.Contains(t, w.Body.String(), "Ada")
		assert.Empty(t, h.flashes())
	})

	t.Run("should render without a user when the profile fails", func(t *testing.T) {
		h := newHarness(t, true)
		h.account.ExpectedCalls = nil
		h.account.On("User", mock.Anything).Return(nil, errors.New("down"))
		h.router.GET("/app/terms", func(c *gin.Context) {
			h.pages.Render(c, http.StatusOK, "terms", "Terms of Service", nil)
		})

		w := h.get("/app/terms")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Logout")
	})

	t.Run("should queue a flash and answer 303 on redirect", func(t *testing.T) {
		h := newHarness(t, true)
		h.router.POST("/app/settings", func(c *gin.Context) {
			h.pages.Reject(c, domainerr.NewValidationError("name", "Name is required", domainerr.ErrRequiredField), "Failed to update user", "/app/settings")
		})

		w := h.post("/app/settings", nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/app/settings", w.Header().Get("Location"))
		assert.Equal(t, []entity.Flash{{Kind: entity.FlashError, Message: "Name is required"}}, h.flashes())
	})

	t.Run("should render the 404 page", func(t *testing.T) {
		h := newHarness(t, false)
		h.router.NoRoute(h.pages.NotFound)

		w := h.get("/nowhere")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Oops! Page not found")
	})

	t.Run("should keep the status set before a status page", func(t *testing.T) {
		h := newHarness(t, false)
		h.router.GET("/limited", func(c *gin.Context) {
			c.Status(http.StatusTooManyRequests)
			h.pages.StatusPage("Too many requests")(c)
		})

		w := h.get("/limited")

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
	})
}
