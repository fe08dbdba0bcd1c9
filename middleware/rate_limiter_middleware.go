package middleware

import (
	"net/http"
	"time"

	"github.com/omapatel2503/UptradeX-Trading-Platform/config"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// RateLimiter throttles per client IP. Each IP gets a token bucket refilling
// RateLimitMax tokens per RateLimitWindow; idle buckets are evicted.
func RateLimiter(cfg *config.SystemConfigs) gin.HandlerFunc {
	limiters := cache.New(10*time.Minute, 15*time.Minute)
	perSecond := rate.Limit(float64(cfg.RateLimitMax) / cfg.RateLimitWindow.Seconds())

	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()

		var limiter *rate.Limiter
		if val, found := limiters.Get(ip); found {
			limiter = val.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(perSecond, cfg.RateLimitMax)
			limiters.Set(ip, limiter, cache.DefaultExpiration)
		}

		if !limiter.Allow() {
			ctx.Header("Retry-After", "5")
			ctx.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": "Too many requests. Please wait before trying again.",
				"retry":   5,
			})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// RecoveryMiddleware converts panics into a generic 500. The underlying
// message stays hidden outside development mode.
func RecoveryMiddleware(cfg *config.SystemConfigs) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("panic", err).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("PANIC_RECOVERED")

				body := gin.H{
					"message": "Internal server error",
					"error":   "unexpected_panic",
				}
				if cfg.Environment == "development" {
					body["detail"] = err
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}

func ZerologMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()
		latency := time.Since(start)

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}
