package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated caller id set by the auth
// middleware, or 0 when the request is unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}
