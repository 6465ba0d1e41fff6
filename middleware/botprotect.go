package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"portfolio-server/security"
)

// BotProtection blocks suspected automated submissions on the routes it
// wraps (the contact form, primarily).
type BotProtection struct {
	detector *security.SpamDetector
	enabled  bool
}

// NewBotProtection creates a new bot protection middleware
func NewBotProtection(maxRequestsPerMinute int, enabled bool) *BotProtection {
	return &BotProtection{
		detector: security.NewSpamDetector(maxRequestsPerMinute),
		enabled:  enabled,
	}
}

// Protect returns a middleware function that blocks suspicious requests.
func (bp *BotProtection) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !bp.enabled {
			next.ServeHTTP(w, r)
			return
		}

		suspicious, reason := bp.detector.IsSuspicious(r)
		if suspicious {
			log.Warn().
				Str("ip", security.ClientIP(r)).
				Str("user_agent", r.UserAgent()).
				Str("reason", reason).
				Str("path", r.URL.Path).
				Msg("Suspicious request blocked")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{
				"error":   "Request blocked",
				"message": "This request appears to be automated. If you believe this is an error, please contact support.",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
