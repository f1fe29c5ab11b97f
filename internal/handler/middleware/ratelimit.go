package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spot-booking/internal/handler/httperr"
	"spot-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = time.Hour

type actorLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ActorRateLimiter hands each authenticated actor its own token bucket.
type ActorRateLimiter struct {
	mu       sync.Mutex
	limiters map[uuid.UUID]*actorLimiter
	rps      rate.Limit
	burst    int
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewActorRateLimiter(cfg config.RateLimitConfig) *ActorRateLimiter {
	rl := &ActorRateLimiter{
		limiters: make(map[uuid.UUID]*actorLimiter),
		rps:      rate.Limit(cfg.RPS),
		burst:    max(cfg.Burst, 1),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

func (rl *ActorRateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for actor, l := range rl.limiters {
				if time.Since(l.lastSeen) > limiterIdleTTL {
					delete(rl.limiters, actor)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ActorRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func (rl *ActorRateLimiter) Allow(actor uuid.UUID) bool {
	rl.mu.Lock()
	l, ok := rl.limiters[actor]
	if !ok {
		l = &actorLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[actor] = l
	}
	l.lastSeen = time.Now()
	rl.mu.Unlock()

	return l.limiter.Allow()
}

// Limit must run after RequireAuth; anonymous requests pass through.
func (rl *ActorRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetUserID(c)
		if !ok || rl.Allow(actor) {
			c.Next()
			return
		}

		slog.Warn("Rate limit exceeded",
			"request_id", GetRequestID(c),
			"user_id", actor.String(),
			"path", c.Request.URL.Path,
		)
		httperr.AbortWithStatus(c, http.StatusTooManyRequests, "Rate limit exceeded")
	}
}
