package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/plazanorte/directory-api/internal/config"
)

// SubmitRateLimiter applies a token bucket limiter to the form submission
// endpoints, the only write paths of the API.
func SubmitRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
	var mu sync.Mutex

	limited := map[string]struct{}{
		"/api/leads":   {},
		"/api/contact": {},
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := limited[c.Path()]; !ok {
				return next(c)
			}

			mu.Lock()
			allowed := limiter.Allow()
			mu.Unlock()

			if !allowed {
				// Mirrors the handler envelope without importing it.
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"status":  "error",
					"code":    "rate_limited",
					"message": "submission rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
