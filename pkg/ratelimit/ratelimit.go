// Package ratelimit implements a redis backed sliding window limiter for
// net/http handlers.
package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/electric-cars/pkg/logger"
)

// Limiter allows at most maxRequests per client within window
type Limiter struct {
	redis       redis.Cmdable
	maxRequests int
	window      time.Duration
	prefix      string
	now         func() time.Time
}

func NewLimiter(client redis.Cmdable, maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		redis:       client,
		maxRequests: maxRequests,
		window:      window,
		prefix:      "ratelimit:",
		now:         time.Now,
	}
}

// Result describes one limiter decision
type Result struct {
	Allowed   bool
	Remaining int
	Reset     time.Time
}

// Allow records a request for identifier and reports whether it fits the window.
func (l *Limiter) Allow(ctx context.Context, identifier string) (Result, error) {
	key := l.prefix + identifier
	now := l.now()
	windowStart := now.Add(-l.window)

	pipe := l.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	pipe.Expire(ctx, key, l.window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, err
	}

	count := countCmd.Val()
	remaining := l.maxRequests - int(count) - 1
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count < int64(l.maxRequests),
		Remaining: remaining,
		Reset:     now.Add(l.window),
	}, nil
}

// Middleware rejects requests over the limit with 429. Redis failures let
// the request through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identifier := ClientIP(r)

		res, err := l.Allow(r.Context(), identifier)
		if err != nil {
			logger.Error(r.Context()).Err(err).Str("identifier", identifier).Msg("Rate limiter error")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset.Unix(), 10))

		if !res.Allowed {
			logger.Warn(r.Context()).Str("identifier", identifier).Int("limit", l.maxRequests).Msg("Rate limit exceeded")
			retryAfter := res.Reset.Sub(l.now()).Round(time.Second)
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": fmt.Sprintf("Too many requests. Try again in %v", retryAfter),
				"error":   "Rate limit exceeded",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the first X-Forwarded-For hop or the remote host.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
