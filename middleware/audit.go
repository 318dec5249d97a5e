package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/userctx"
)

// JournalSubjectType is the subject type of journal entries themselves
var JournalSubjectType = models.NewSubjectType("adminjournal", "entry")

// JournalAccess records a VIEW entry for every read of the journal API, so
// browsing the journal leaves a trace in it. Anonymous requests are not
// recorded.
func JournalAccess(journal Recorder, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only reads are journaled; the API has no mutations
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			if actor, ok := userctx.GetActor(r.Context()); ok {
				payload := map[string]any{
					"method":     r.Method,
					"path":       r.URL.Path,
					"ip_address": getIPAddress(r),
					"user_agent": r.UserAgent(),
				}
				if q := r.URL.RawQuery; q != "" {
					payload["query"] = q
				}

				subjectType := JournalSubjectType
				if _, err := journal.Record(r.Context(), models.EntryInput{
					Action:      models.ActionView,
					Actor:       actor,
					SubjectType: &subjectType,
					Description: "Journal viewed.",
					Payload:     payload,
				}); err != nil {
					logger.Warn("Failed to journal API access", zap.String("path", r.URL.Path), zap.Error(err))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
