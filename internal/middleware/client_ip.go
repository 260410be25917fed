package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIdentifier extracts a best-effort client identity for rate limiting.
// It prefers the first hop of X-Forwarded-For, then X-Real-Ip, then a
// constant placeholder for untraceable origins (loopback, dev). This is an
// identity heuristic, not a security control: forwarded headers are
// spoofable by clients that do not pass through the front proxy.
func ClientIdentifier(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}

	if realIP := c.GetHeader("X-Real-Ip"); realIP != "" {
		return realIP
	}

	return "localhost"
}
