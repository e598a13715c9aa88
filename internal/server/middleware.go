package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/agbru/decmul/internal/logging"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// requestID keeps a caller-supplied UUID and mints one otherwise.
func requestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// loggingMiddleware tags the response with a request ID and logs one line
// per request once it completes.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := requestID(r)
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.logger.Info("request",
			logging.String("request_id", id),
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.String("client", clientIP(r)),
			logging.Int("status", rec.status),
			logging.Duration("duration", time.Since(start)))
	}
}
