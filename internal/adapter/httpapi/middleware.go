package httpapi

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// userHeader carries the acting user. The tracker trusts the header as-is:
// this is a family deployment, identification not authentication.
const userHeader = "X-User-ID"

const userKey = "httpapi.user"

// UserID extracts the acting user for the request, empty for anonymous.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userKey); ok {
		return v.(string)
	}
	return ""
}

func userMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userKey, strings.TrimSpace(c.GetHeader(userHeader)))
		c.Next()
	}
}
