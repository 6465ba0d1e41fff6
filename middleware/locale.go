package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// LocaleRedirect rewrites page requests that are missing a locale prefix,
// redirecting them to the default locale. API routes, static assets and
// paths with a file extension pass through untouched.
type LocaleRedirect struct {
	supported     map[string]bool
	defaultLocale string
}

// Path prefixes never subject to locale redirection.
var localeExcludedPrefixes = []string{
	"/api",
	"/swagger",
	"/health",
	"/_next",
	"/static",
	"/assets",
}

// NewLocaleRedirect creates the middleware for a supported-locale set.
func NewLocaleRedirect(supported []string, defaultLocale string) *LocaleRedirect {
	set := make(map[string]bool, len(supported))
	for _, l := range supported {
		set[strings.ToLower(l)] = true
	}
	return &LocaleRedirect{
		supported:     set,
		defaultLocale: defaultLocale,
	}
}

// Redirect is the middleware entry point.
func (lr *LocaleRedirect) Redirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if !lr.needsLocale(path) {
			next.ServeHTTP(w, r)
			return
		}

		target := "/" + lr.defaultLocale + path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		log.Debug().
			Str("path", path).
			Str("target", target).
			Msg("Redirecting to default locale")

		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

// needsLocale reports whether the path should be redirected.
func (lr *LocaleRedirect) needsLocale(path string) bool {
	for _, prefix := range localeExcludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	// Files (anything with an extension) are served as-is
	last := path[strings.LastIndex(path, "/")+1:]
	if strings.Contains(last, ".") {
		return false
	}

	// Already locale-prefixed?
	segment := path
	segment = strings.TrimPrefix(segment, "/")
	if i := strings.Index(segment, "/"); i >= 0 {
		segment = segment[:i]
	}
	return !lr.supported[strings.ToLower(segment)]
}
