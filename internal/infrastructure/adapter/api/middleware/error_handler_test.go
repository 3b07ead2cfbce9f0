package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should recover a panic into the error page", func(t *testing.T) {
		// Arrange
		router := gin.New()
		router.Use(ErrorHandler(logger.NewNoopLogger(), func(c *gin.Context) {
			c.String(c.Writer.Status(), "Something went wrong")
		}))
		router.GET("/boom", func(c *gin.Context) { panic("boom") })

		// Act
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Something went wrong", w.Body.String())
	})
}
