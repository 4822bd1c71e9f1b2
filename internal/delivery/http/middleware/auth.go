package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "kioskcheckin/internal/delivery/http/helpers"
	"kioskcheckin/internal/domain"
)

type contextKey string

const kioskIDKey contextKey = "kioskID"

// SetKioskID returns a context with the kiosk session subject set.
func SetKioskID(ctx context.Context, kioskID string) context.Context {
	return context.WithValue(ctx, kioskIDKey, kioskID)
}

// KioskIDFromContext returns the kiosk session subject from the context, if present.
func KioskIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(kioskIDKey).(string)
	return id, ok
}

// RequireSession returns a wrapper that validates the Bearer session token and
// sets the kiosk subject in the request context. If the token is missing or
// invalid, it responds with 401 and does not call next.
func RequireSession(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			kioskID, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired session")
				return
			}
			r = r.WithContext(SetKioskID(r.Context(), kioskID))
			next(w, r)
		}
	}
}
