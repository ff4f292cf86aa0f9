package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
)

// RateLimitConfig describes one limiter: a counter per client IP, capped at
// Limit per Window. Redis keeps the counters when available; otherwise an
// in-memory store takes over (per-process, good enough for a single node).
type RateLimitConfig struct {
	Limit      int
	Window     time.Duration
	KeyPrefix  string
	FailClosed bool // reject instead of falling back when Redis errors
}

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on first hit. Returns [count, ttl].
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// GlobalRateLimitConfig covers all API routes.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}
}

// LoginRateLimitConfig is stricter and fails closed: losing Redis must not
// open the door to credential stuffing.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
	}
}

// RateLimit enforces the config against the client IP.
func RateLimit(config RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := config.KeyPrefix + c.ClientIP()
		now := time.Now()

		var (
			count   int
			resetAt time.Time
		)

		if client := redis.Client(); client != nil {
			var err error
			count, resetAt, err = checkRedis(c.Request.Context(), client, key, config)
			if err != nil {
				if config.FailClosed {
					logger.Log.Warn("rate limiter unavailable", "key_prefix", config.KeyPrefix, "error", err)
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
					c.Abort()
					return
				}
				count, resetAt = checkInMemory(key, config, now)
			}
		} else {
			count, resetAt = checkInMemory(key, config, now)
		}

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		remaining := config.Limit - count
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}

func checkRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	result, err := client.Eval(ctx, rateLimitScript, []string{key}, int(config.Window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: unexpected result %T", result)
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func checkInMemory(key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(config.Window)})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}
	entry.count++
	return entry.count, entry.resetAt
}

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				expired := now.After(entry.resetAt)
				entry.mu.Unlock()
				if expired {
					rateLimitStore.Delete(key)
				}
				return true
			})
		}
	}()
}
