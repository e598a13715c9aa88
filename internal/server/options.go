package server

import (
	"time"

	"github.com/agbru/decmul/internal/logging"
	"github.com/agbru/decmul/internal/service"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger replaces the default JSON logger on stdout. Nil is ignored.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithService injects the multiplication service, typically a mock.
func WithService(svc service.Service) Option {
	return func(s *Server) {
		if svc != nil {
			s.service = svc
		}
	}
}

// WithTimeouts replaces the server timeouts.
func WithTimeouts(timeouts Timeouts) Option {
	return func(s *Server) {
		s.timeouts = timeouts
	}
}

// WithRateLimiter replaces the default per-client limiter.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Server) {
		s.rateLimiter = rl
	}
}

// WithSecurityConfig replaces the security headers and CORS settings.
func WithSecurityConfig(config SecurityConfig) Option {
	return func(s *Server) {
		s.securityConfig = config
	}
}

// WithMaxDigits caps the length of each operand; 0 removes the cap.
func WithMaxDigits(maxDigits int) Option {
	return func(s *Server) {
		s.securityConfig.MaxDigits = maxDigits
	}
}

// Timeouts groups the durations applied by the server.
type Timeouts struct {
	// RequestTimeout bounds a single multiplication.
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

func DefaultServerTimeouts() Timeouts {
	return Timeouts{
		RequestTimeout:  time.Minute,
		ShutdownTimeout: 30 * time.Second,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    2 * time.Minute,
		IdleTimeout:     2 * time.Minute,
	}
}
