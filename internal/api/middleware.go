package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/logger"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

type contextKey string

const (
	studentContextKey contextKey = "student_id"
	studentHeader                = "X-Student-ID"
	requestIDHeader              = "X-Request-ID"
)

func studentFromContext(ctx context.Context) int64 {
	if v, ok := ctx.Value(studentContextKey).(int64); ok {
		return v
	}
	return 0
}

// studentMiddleware resolves the authenticated student from the X-Student-ID
// header set by the auth gateway in front of this service.
func studentMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raw := strings.TrimSpace(r.Header.Get(studentHeader))
		if raw == "" {
			log.Debug("missing %s header", studentHeader)
			handleError(w, r, errors.NewValidationError("student_id", "X-Student-ID header is required"))
			return
		}

		studentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || studentID <= 0 {
			log.Warn("invalid student header: %q", raw)
			handleError(w, r, errors.NewValidationError("student_id", "must be a positive integer"))
			return
		}

		ctx := context.WithValue(r.Context(), studentContextKey, studentID)
		ctx = logger.NewContext(ctx, logger.FromContext(ctx).WithField("student_id", studentID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs HTTP requests with timing, status codes, and request IDs.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		log := logger.Default().WithFields(map[string]any{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		if r.RemoteAddr != "" {
			log = log.WithField("remote_addr", r.RemoteAddr)
		}

		r = r.WithContext(logger.NewContext(r.Context(), log))
		w.Header().Set(requestIDHeader, requestID)

		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		log.Debug("request started")
		next.ServeHTTP(wrapped, r)

		log = log.WithFields(map[string]any{
			"status":      wrapped.status,
			"size":        wrapped.size,
			"duration_ms": time.Since(start).Milliseconds(),
		})

		if wrapped.status >= 500 {
			log.Error("request completed with server error")
		} else if wrapped.status >= 400 {
			log.Warn("request completed with client error")
		} else {
			log.Info("request completed")
		}
	})
}

// recoveryMiddleware recovers from panics and logs them.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromContext(r.Context())
				log.Error("panic recovered: %v", rec)
				writeJSON(w, http.StatusInternalServerError, errorBody(errors.ErrCodeInternal, "Internal Server Error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// securityHeadersMiddleware adds security headers to responses.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// timeoutMiddleware wraps a handler with a timeout.
func timeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(errorBody(errors.ErrCodeTimeout, "request timeout"))
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
