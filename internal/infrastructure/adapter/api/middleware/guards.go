package middleware

import (
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/gin-gonic/gin"
)

const (
	// LoginPath is where anonymous visitors of protected pages are sent
	LoginPath = "/auth/login"
	// HomePath is where signed-in visitors of public-only pages are sent
	HomePath = "/app/dashboard"
)

// RequireSession redirects to the login page unless the session carries a token.
// The token itself is not verified.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !entity.SessionFromContext(c.Request.Context()).HasToken() {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireGuest redirects signed-in sessions to the dashboard
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if entity.SessionFromContext(c.Request.Context()).HasToken() {
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
			return
		}
		c.Next()
	}
}
