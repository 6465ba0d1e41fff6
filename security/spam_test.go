package security

import (
	"net/http/httptest"
	"testing"
)

func TestSuspiciousUserAgents(t *testing.T) {
	d := NewSpamDetector(100)

	tests := []struct {
		name       string
		userAgent  string
		suspicious bool
	}{
		{"Browser", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36", false},
		{"Empty", "", true},
		{"Curl", "curl/8.4.0", true},
		{"Python", "python-requests/2.31", true},
		{"Headless", "Mozilla/5.0 HeadlessChrome/120", true},
		{"Scraper", "my-scraper-bot", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/contact", nil)
			if tt.userAgent != "" {
				r.Header.Set("User-Agent", tt.userAgent)
			}
			got, reason := d.IsSuspicious(r)
			if got != tt.suspicious {
				t.Errorf("IsSuspicious() = %v (%s), want %v", got, reason, tt.suspicious)
			}
		})
	}
}

func TestRateWindow(t *testing.T) {
	d := NewSpamDetector(3)

	r := httptest.NewRequest("POST", "/api/contact", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0")
	r.RemoteAddr = "10.1.2.3:55555"

	for i := 0; i < 3; i++ {
		if got, reason := d.IsSuspicious(r); got {
			t.Fatalf("Request %d should pass, flagged as %s", i+1, reason)
		}
	}
	if got, reason := d.IsSuspicious(r); !got || reason != "excessive_request_rate" {
		t.Errorf("Fourth request should be flagged for rate, got %v (%s)", got, reason)
	}

	// A different IP is unaffected
	other := httptest.NewRequest("POST", "/api/contact", nil)
	other.Header.Set("User-Agent", "Mozilla/5.0")
	other.RemoteAddr = "10.9.9.9:1234"
	if got, _ := d.IsSuspicious(other); got {
		t.Error("Different IP should not inherit the rate window")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"Plain remote addr", "192.0.2.4:9999", nil, "192.0.2.4"},
		{"X-Forwarded-For single", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"X-Forwarded-For chain", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"X-Real-IP", "10.0.0.1:1", map[string]string{"X-Real-IP": "198.51.100.3"}, "198.51.100.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
