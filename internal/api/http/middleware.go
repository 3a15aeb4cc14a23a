package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shareit-booking/internal/logger"
	"shareit-booking/internal/security"

	"github.com/google/uuid"
)

const (
	HeaderUserID    = "X-Sharer-User-Id"
	HeaderRequestID = "X-Request-ID"
)

type userIDKey struct{}

func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request once it completes.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.InfoContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// Authenticator resolves the caller's user id from a bearer token, or from
// the X-Sharer-User-Id header when the deployment trusts it.
type Authenticator struct {
	tokens          security.TokenManager
	trustUserHeader bool
}

func NewAuthenticator(tokens security.TokenManager, trustUserHeader bool) *Authenticator {
	return &Authenticator{tokens: tokens, trustUserHeader: trustUserHeader}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.trustUserHeader {
			if raw := r.Header.Get(HeaderUserID); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					writeMessage(w, http.StatusBadRequest, "invalid "+HeaderUserID+" header")
					return
				}
				next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), id)))
				return
			}
		}

		auth := r.Header.Get("Authorization")
		if a.tokens == nil || len(auth) <= 7 || !strings.EqualFold(auth[:7], "Bearer ") {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}
		claims, err := a.tokens.ValidateToken(auth[7:])
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), claims.UserID)))
	})
}
