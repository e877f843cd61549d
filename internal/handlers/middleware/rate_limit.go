package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
)

// RateLimit limita requisições por IP de cliente dentro de uma janela.
// Falha do backend de contagem libera a requisição.
func RateLimit(limiter ports.RateLimiter, scope string, limit int, window time.Duration, log ports.Logger, respond ErrorResponder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Warn("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Info("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			abortWith(respond, c, http.StatusTooManyRequests, errors.ErrTooManyRequests)
			return
		}

		c.Next()
	}
}
