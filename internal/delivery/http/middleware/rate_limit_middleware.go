package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/josephsae/healthhub-app/pkg/apperror"
	"github.com/josephsae/healthhub-app/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	RateLimitKeyPrefix = "ratelimit:"

	rateLimitTimeout = 500 * time.Millisecond
)

// RateLimitMiddleware is a fixed-window counter per client IP stored in Redis.
// Without a Redis client every request passes, and Redis errors fail open.
type RateLimitMiddleware struct {
	client *redis.Client
	scope  string
	max    int
	window time.Duration
	log    *logrus.Logger
}

func NewRateLimitMiddleware(client *redis.Client, scope string, max int, window time.Duration, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		client: client,
		scope:  scope,
		max:    max,
		window: window,
		log:    log,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.client == nil || m.max <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := m.allow(r.Context(), clientIP(r))
		if err != nil {
			m.log.Warnf("Rate limit check failed, allowing request: %+v", err)
		} else if !allowed {
			w.Header().Set("Retry-After", formatSeconds(m.window))
			response.Error(w, apperror.ErrTooManyRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) allow(ctx context.Context, ip string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, rateLimitTimeout)
	defer cancel()

	key := RateLimitKeyPrefix + m.scope + ":" + ip

	// SET NX EX opens the window and INCR counts inside the same MULTI, so a
	// counter never exists without its TTL.
	var count *redis.IntCmd
	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, m.window)
		count = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return false, err
	}

	return count.Val() <= int64(m.max), nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func formatSeconds(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
