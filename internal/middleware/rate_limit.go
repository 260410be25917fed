package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gin-gonic/gin"

	httpapi "github.com/portfolio-site/go-portfolio-backend/internal/api/http"
	"github.com/portfolio-site/go-portfolio-backend/internal/ratelimit"
)

// RateLimit gates an endpoint with the fixed-window limiter. The check runs
// before body parsing so over-limit clients are rejected cheaply. Identities
// are namespaced by scope so different endpoints track separate windows.
func RateLimit(limiter *ratelimit.Limiter, scope string, cfg ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := fmt.Sprintf("%s:%s", scope, ClientIdentifier(c))

		result := limiter.Check(identifier, cfg)
		if !result.Allowed {
			retryAfter := int(math.Ceil(time.Until(result.ResetTime).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}

			slog.Warn("rate limit exceeded",
				"identifier", identifier,
				"retry_after_s", retryAfter,
				"request_id", c.GetString("request_id"),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			httpapi.RateLimited(c, fmt.Sprintf("too many requests, retry in %d seconds", retryAfter))
			c.Abort()
			return
		}

		c.Next()
	}
}
