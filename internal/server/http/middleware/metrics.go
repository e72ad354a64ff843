package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver receives per-request measurements.
type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
}

const unmatchedRoute = "unmatched"

// Metrics reports request outcome keyed by route template, so path
// parameters do not inflate label cardinality.
func Metrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		observer.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
