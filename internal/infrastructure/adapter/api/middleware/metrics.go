package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records page request metrics
type RequestObserver interface {
	RequestStarted() func(method, route string, status int, duration time.Duration)
}

// Metrics records count, duration and in-flight requests per route template
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := observer.RequestStarted()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
