package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func localeHandler() http.Handler {
	lr := NewLocaleRedirect([]string{"pt", "en"}, "pt")
	return lr.Redirect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestLocaleRedirect(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantTarget string
	}{
		{"No locale prefix", "/projects", http.StatusTemporaryRedirect, "/pt/projects"},
		{"Nested path", "/about/me", http.StatusTemporaryRedirect, "/pt/about/me"},
		{"Root", "/", http.StatusTemporaryRedirect, "/pt/"},
		{"Already default locale", "/pt/projects", http.StatusOK, ""},
		{"Already alternate locale", "/en/projects", http.StatusOK, ""},
		{"API route", "/api/projects", http.StatusOK, ""},
		{"Swagger", "/swagger/index.html", http.StatusOK, ""},
		{"Health", "/health", http.StatusOK, ""},
		{"Static asset dir", "/static/logo.png", http.StatusOK, ""},
		{"Next.js assets", "/_next/chunk.js", http.StatusOK, ""},
		{"File extension", "/favicon.ico", http.StatusOK, ""},
		{"Robots", "/robots.txt", http.StatusOK, ""},
		{"Unsupported locale-ish prefix", "/de/projects", http.StatusTemporaryRedirect, "/pt/de/projects"},
	}

	h := localeHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Status %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantTarget != "" {
				if got := w.Header().Get("Location"); got != tt.wantTarget {
					t.Errorf("Location %q, want %q", got, tt.wantTarget)
				}
			}
		})
	}
}

func TestLocaleRedirectKeepsQuery(t *testing.T) {
	h := localeHandler()

	req := httptest.NewRequest("GET", "/projects?category=web", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("Status %d, want 307", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/pt/projects?category=web" {
		t.Errorf("Location %q, want /pt/projects?category=web", got)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/projects", nil)
	req.RemoteAddr = "203.0.113.5:4444"

	// Burst of 2 passes, the third is limited
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: status %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Third request: status %d, want 429", w.Code)
	}

	// A different IP has its own bucket
	other := httptest.NewRequest("GET", "/api/projects", nil)
	other.RemoteAddr = "203.0.113.99:4444"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, other)
	if w.Code != http.StatusOK {
		t.Errorf("Different IP: status %d, want 200", w.Code)
	}
}

func TestBotProtection(t *testing.T) {
	bp := NewBotProtection(100, true)
	h := bp.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Browser passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/contact", nil)
		req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Status %d, want 200", w.Code)
		}
	})

	t.Run("Scripted client blocked", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/contact", nil)
		req.Header.Set("User-Agent", "curl/8.4.0")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("Status %d, want 403", w.Code)
		}
	})

	t.Run("Disabled lets everything through", func(t *testing.T) {
		off := NewBotProtection(100, false)
		hOff := off.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest("POST", "/api/contact", nil)
		req.Header.Set("User-Agent", "curl/8.4.0")
		w := httptest.NewRecorder()
		hOff.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Status %d, want 200", w.Code)
		}
	})
}
