package middleware

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and hands the request to onPanic, which renders the error page
func ErrorHandler(logger coreport.Logger, onPanic gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in page request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": coreport.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.Status(http.StatusInternalServerError)
				onPanic(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
