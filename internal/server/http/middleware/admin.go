package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the administrative key.
const AdminKeyHeader = "X-Admin-Key"

// KeyVerifier checks administrative keys.
type KeyVerifier interface {
	Verify(key string) bool
}

// AdminRequired rejects requests without a valid admin key.
func AdminRequired(verifier KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !verifier.Verify(key) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
