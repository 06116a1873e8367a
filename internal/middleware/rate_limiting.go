package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"glowfolio-backend/internal/config"
)

const rateLimitManagerKey = "rateLimitManager"

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// WithRateLimitManager stores the manager on the context for the limiting middlewares.
func WithRateLimitManager(manager *RateLimitManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(rateLimitManagerKey, manager)
		c.Next()
	}
}

func managerFrom(c *gin.Context) *RateLimitManager {
	managerVal, exists := c.Get(rateLimitManagerKey)
	if !exists {
		return nil
	}
	manager, _ := managerVal.(*RateLimitManager)
	return manager
}

// RateLimitMiddleware creates a middleware that limits request rate per IP
// It requires a RateLimitManager to be set in the context by the application
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldBypassRateLimit(c.Request) {
			c.Next()
			return
		}

		manager := managerFrom(c)
		if manager == nil {
			c.Next()
			return
		}

		limiter := manager.GetVisitor(
			c.ClientIP(),
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			cfg.RateLimitBurst,
		)
		if limiter != nil && !limiter.Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// RenderRateLimitMiddleware limits on-demand render requests per IP.
func RenderRateLimitMiddleware(requestsPerWindow, windowSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		manager := managerFrom(c)
		if manager == nil {
			c.Next()
			return
		}

		limiter := manager.GetRenderLimiter(c.ClientIP(), requestsPerWindow, windowSeconds)
		if limiter != nil && !limiter.Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "too many requests, please try again later",
	})
}

func shouldBypassRateLimit(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}

	path := r.URL.Path
	if path == "" {
		return false
	}

	if strings.HasPrefix(path, "/static/") {
		return true
	}

	switch path {
	case "/favicon.ico", "/health", "/metrics":
		return true
	}

	return false
}
