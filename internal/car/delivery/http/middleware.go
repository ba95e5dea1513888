package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/electric-cars/pkg/logger"
)

// MiddlewareConfig holds configuration for middlewares
type MiddlewareConfig struct {
	EnableLogging   bool
	EnableTracing   bool
	EnableCORS      bool
	EnableRecovery  bool
	EnableTimeout   bool
	TimeoutDuration time.Duration
	CORSOptions     cors.Options
	// RateLimit, when set, wraps every request.
	RateLimit func(http.Handler) http.Handler
}

// DefaultMiddlewareConfig returns the middleware set used in production.
// Request timeouts are off unless a duration is configured.
func DefaultMiddlewareConfig(allowedOrigins []string, timeout time.Duration) MiddlewareConfig {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return MiddlewareConfig{
		EnableLogging:   true,
		EnableTracing:   true,
		EnableCORS:      true,
		EnableRecovery:  true,
		EnableTimeout:   timeout > 0,
		TimeoutDuration: timeout,
		CORSOptions: cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		},
	}
}

// Wrap applies the configured middlewares around h. The outermost layer
// is recovery, followed by request id, tracing, logging, CORS, rate
// limiting and timeout.
func (c MiddlewareConfig) Wrap(h http.Handler) http.Handler {
	logger.Logger.Info().
		Bool("logging", c.EnableLogging).
		Bool("tracing", c.EnableTracing).
		Bool("cors", c.EnableCORS).
		Bool("recovery", c.EnableRecovery).
		Bool("rate_limit", c.RateLimit != nil).
		Dur("timeout", c.TimeoutDuration).
		Msg("Registering middlewares")

	if c.EnableTimeout {
		h = TimeoutMiddleware(c.TimeoutDuration)(h)
	}
	if c.RateLimit != nil {
		h = c.RateLimit(h)
	}
	if c.EnableCORS {
		h = cors.New(c.CORSOptions).Handler(h)
	}
	if c.EnableLogging {
		h = LoggingMiddleware(h)
	}
	if c.EnableTracing {
		h = TracingMiddleware("electric-cars-http-request", h)
	}
	h = RequestIDMiddleware(h)
	if c.EnableRecovery {
		h = RecoveryMiddleware(h)
	}
	return h
}

// RecoveryMiddleware turns a panic into a JSON 500
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context()).
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Panic recovered")

				respondJSON(w, http.StatusInternalServerError, Response{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// TimeoutMiddleware bounds request handling time
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, `{"success":false,"message":"Request timeout"}`)
	}
}

// RequestIDMiddleware propagates or assigns an X-Request-ID
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := logger.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TracingMiddleware starts a server span per request
func TracingMiddleware(operation string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, operation)
}

// LoggingMiddleware logs HTTP requests with structured logging
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		logger.Debug(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Msg("HTTP request started")

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		ev := logger.Info(ctx)
		if rw.statusCode >= http.StatusBadRequest {
			ev = logger.Error(ctx)
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("HTTP request completed")
	})
}
