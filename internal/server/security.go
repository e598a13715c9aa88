package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls response hardening headers, CORS and the operand
// length cap.
type SecurityConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	AllowedMethods []string
	// MaxDigits caps each operand of /multiply. 0 disables the cap.
	MaxDigits int
}

func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxDigits:      1_000_000,
	}
}

// originAllowed returns the value for Access-Control-Allow-Origin, or "" if
// origin is not accepted.
func (c SecurityConfig) originAllowed(origin string) string {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return allowed
		}
	}
	return ""
}

// SecurityMiddleware sets hardening headers on every response and answers
// CORS preflight requests itself.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")

		if config.EnableCORS {
			if allowed := config.originAllowed(r.Header.Get("Origin")); allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
				h.Set("Access-Control-Max-Age", "86400")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next(w, r)
	}
}
