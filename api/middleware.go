package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/klypso/agency-backend/auth"
	"github.com/klypso/agency-backend/database"
	"github.com/klypso/agency-backend/errs"
	"github.com/klypso/agency-backend/models"
)

type authMiddleware struct {
	responder Responder
	tokens    auth.TokenIssuer
	userRepo  *database.UserRepo
}

func newAuthMiddleware(tokens auth.TokenIssuer, userRepo *database.UserRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		tokens:    tokens,
		userRepo:  userRepo,
	}
}

// resolveUser verifies the bearer token and loads the user it was issued
// for. Returns nil without error when no Authorization header is present.
func (m authMiddleware) resolveUser(r *http.Request) (*models.User, *errs.ApiErr) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errs.NewUnauthorizedError("malformed authorization header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := m.tokens.Verify(tokenString)
	if err != nil {
		return nil, errs.NewUnauthorizedError("invalid or expired token")
	}

	resolved, err := m.userRepo.FindByID(userID)
	if err != nil {
		return nil, errs.NewUnauthorizedError("unable to resolve token user")
	}
	if resolved == nil {
		return nil, errs.NewUnauthorizedError("token user no longer exists")
	}
	return resolved, nil
}

// authenticate rejects requests without a valid bearer token and attaches
// the resolved user to the request context.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, apiErr := m.resolveUser(r)
		if apiErr != nil {
			m.responder.WriteError(w, apiErr)
			return
		}
		if user == nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("missing authorization header"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUser(r.Context(), user)))
	})
}

// optionalAuth attaches the user when a valid token is present but lets
// anonymous requests through. Used on public routes whose response varies
// by caller (blog and job listings).
func (m authMiddleware) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, apiErr := m.resolveUser(r)
		if apiErr != nil || user == nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUser(r.Context(), user)))
	})
}

// requireAdmin rejects authenticated callers whose IsAdmin flag is false.
// Must run after authenticate.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromCtx(r.Context())
		if user == nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}
		if !user.IsAdmin {
			m.responder.WriteError(w, errs.NewForbiddenError("admin privileges required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
