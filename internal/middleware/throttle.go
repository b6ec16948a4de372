package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Rate is a throttle quota: at most Requests per Window.
type Rate struct {
	Requests int
	Window   time.Duration
}

var ratePeriods = map[string]time.Duration{
	"second": time.Second,
	"sec":    time.Second,
	"minute": time.Minute,
	"min":    time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// ParseRate parses "<count>/<period>" strings like "5/day" or "100/hour".
func ParseRate(s string) (Rate, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(parts) != 2 {
		return Rate{}, fmt.Errorf("invalid throttle rate %q, want <count>/<period>", s)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil || count < 1 {
		return Rate{}, fmt.Errorf("invalid throttle count in %q", s)
	}

	window, ok := ratePeriods[strings.ToLower(parts[1])]
	if !ok {
		return Rate{}, fmt.Errorf("invalid throttle period in %q, want second, minute, hour or day", s)
	}

	return Rate{Requests: count, Window: window}, nil
}

// Throttler enforces per-scope request quotas. Counters live in Redis as
// fixed windows keyed by scope and principal; when Redis is unreachable an
// in-process token bucket per key takes over so the API stays rate limited
// rather than wide open.
type Throttler struct {
	rdb    *redis.Client
	logger *slog.Logger

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

func NewThrottler(rdb *redis.Client, logger *slog.Logger) *Throttler {
	return &Throttler{
		rdb:    rdb,
		logger: logger,
		local:  make(map[string]*rate.Limiter),
	}
}

// Scope returns middleware limiting requests within the named scope.
// Authenticated principals are keyed by user id, anonymous ones by client IP.
func (t *Throttler) Scope(scope string, quota Rate) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := c.ClientIP()
		if claims := PrincipalFromContext(c); claims != nil {
			principal = claims.UserID
		}
		t.enforce(c, "throttle:"+scope+":"+principal, quota)
	}
}

// Global returns the default throttle middleware. Authenticated requests
// count against the user quota, anonymous requests against the anon quota.
// Endpoints with a scoped throttle use Scope instead of this.
func (t *Throttler) Global(userQuota, anonQuota Rate) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, quota, principal := "anon", anonQuota, c.ClientIP()
		if claims := PrincipalFromContext(c); claims != nil {
			scope, quota, principal = "user", userQuota, claims.UserID
		}
		t.enforce(c, "throttle:"+scope+":"+principal, quota)
	}
}

func (t *Throttler) enforce(c *gin.Context, key string, quota Rate) {
	if !t.allow(c, key, quota) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Request was throttled"})
		c.Abort()
		return
	}
	c.Next()
}

func (t *Throttler) allow(c *gin.Context, key string, quota Rate) bool {
	if t.rdb != nil {
		ctx := c.Request.Context()
		count, err := t.rdb.Incr(ctx, key).Result()
		if err == nil {
			if count == 1 {
				// first hit opens the window
				t.rdb.Expire(ctx, key, quota.Window)
			}
			return count <= int64(quota.Requests)
		}
		t.logger.Warn("throttle counter unavailable, using local limiter", "key", key, "error", err)
	}

	return t.localLimiter(key, quota).Allow()
}

func (t *Throttler) localLimiter(key string, quota Rate) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	limiter, ok := t.local[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(quota.Window/time.Duration(quota.Requests)), quota.Requests)
		t.local[key] = limiter
	}
	return limiter
}
