package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/adminjournal/authenticator"
	"github.com/blogem/adminjournal/userctx"
)

// RequireAuth ensures the request carries a valid bearer ID token and puts
// the verified identity in the request context
func RequireAuth(verifier authenticator.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			identity, err := verifier.Verify(r.Context(), raw)
			if err != nil {
				logger.Debug("Rejected bearer token", zap.String("path", r.URL.Path), zap.Error(err))
				unauthorized(w, "invalid bearer token")
				return
			}

			// Add identity to request context for use in handlers
			ctx := userctx.SetActor(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="adminjournal"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
