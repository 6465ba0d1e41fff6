// Package security guards the contact form against automated submissions.
package security

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// SpamDetector flags automated contact-form traffic using user-agent
// heuristics and a per-IP frequency window.
type SpamDetector struct {
	mu      sync.Mutex
	history map[string][]time.Time

	maxRequestsPerMinute int
}

// NewSpamDetector creates a detector allowing maxRequestsPerMinute
// submissions per client IP.
func NewSpamDetector(maxRequestsPerMinute int) *SpamDetector {
	return &SpamDetector{
		history:              make(map[string][]time.Time),
		maxRequestsPerMinute: maxRequestsPerMinute,
	}
}

// IsSuspicious checks a request and returns the reason when it looks
// automated.
func (d *SpamDetector) IsSuspicious(r *http.Request) (bool, string) {
	if suspiciousUserAgent(r.UserAgent()) {
		return true, "suspicious_user_agent"
	}
	if d.overLimit(ClientIP(r)) {
		return true, "excessive_request_rate"
	}
	return false, ""
}

func suspiciousUserAgent(userAgent string) bool {
	if strings.TrimSpace(userAgent) == "" {
		return true
	}

	ua := strings.ToLower(userAgent)
	patterns := []string{
		"curl",
		"wget",
		"python-requests",
		"scrapy",
		"headless",
		"phantomjs",
		"crawler",
		"spider",
		"scraper",
	}
	for _, p := range patterns {
		if strings.Contains(ua, p) {
			return true
		}
	}
	return false
}

// overLimit records a hit for the IP and reports whether the trailing
// minute exceeds the allowance.
func (d *SpamDetector) overLimit(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	recent := d.history[ip][:0]
	for _, t := range d.history[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)
	d.history[ip] = recent

	return len(recent) > d.maxRequestsPerMinute
}

// ClientIP extracts the client address, honoring X-Forwarded-For and
// X-Real-IP when a proxy sits in front.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
