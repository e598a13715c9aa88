package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/logging"
	"github.com/agbru/decmul/internal/service"
	"github.com/agbru/decmul/pkg/models"
)

// requestBodyOverhead is the room left for JSON syntax and the algo key
// beyond the two operands.
const requestBodyOverhead = 4 << 10

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
	})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, models.AlgorithmsResponse{
		Algorithms: s.service.Algorithms(),
	})
}

// handleMultiply accepts the operands as query parameters (GET) or as a
// JSON MultiplyRequest (POST) and returns a MultiplyResponse.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseMultiplyRequest(w, r)
	if err != nil {
		var parseErr RequestParseError
		if errors.As(err, &parseErr) {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
			return
		}
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	res, err := s.service.Multiply(ctx, req.Algo, req.A, req.B)
	if err != nil {
		s.writeMultiplyError(w, req, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, models.MultiplyResponse{
		A:           req.A,
		B:           req.B,
		Algorithm:   res.Algorithm,
		Product:     res.Product.String(),
		Digits:      res.Product.Len(),
		Duration:    res.Duration.String(),
		WithinBound: res.WithinBound,
		Cached:      res.Cached,
	})
}

func (s *Server) parseMultiplyRequest(w http.ResponseWriter, r *http.Request) (models.MultiplyRequest, error) {
	var req models.MultiplyRequest
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req = models.MultiplyRequest{A: q.Get("a"), B: q.Get("b"), Algo: q.Get("algo")}
	case http.MethodPost:
		if s.securityConfig.MaxDigits > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, int64(2*s.securityConfig.MaxDigits+requestBodyOverhead))
		}
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return req, RequestParseError{StatusCode: http.StatusRequestEntityTooLarge, Message: "request body too large"}
			}
			return req, RequestParseError{StatusCode: http.StatusBadRequest, Message: "invalid JSON body: " + err.Error()}
		}
	default:
		return req, RequestParseError{StatusCode: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	}

	req.A = strings.TrimSpace(req.A)
	req.B = strings.TrimSpace(req.B)
	req.Algo = strings.ToLower(strings.TrimSpace(req.Algo))
	if req.A == "" || req.B == "" {
		return req, RequestParseError{StatusCode: http.StatusBadRequest, Message: "missing operand: both 'a' and 'b' are required"}
	}
	if req.Algo == "" {
		req.Algo = service.DefaultAlgorithm
	}
	return req, nil
}

// writeMultiplyError maps service errors to HTTP statuses.
func (s *Server) writeMultiplyError(w http.ResponseWriter, req models.MultiplyRequest, err error) {
	var validationErr apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, service.ErrOperandTooLarge),
		errors.Is(err, service.ErrUnknownAlgorithm):
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeErrorResponse(w, http.StatusGatewayTimeout, "multiplication timed out")
	case errors.Is(err, context.Canceled):
		s.writeErrorResponse(w, http.StatusServiceUnavailable, "request canceled")
	default:
		s.logger.Error("multiplication failed", err,
			logging.Algorithm(req.Algo),
			logging.Digits(len(req.A), len(req.B)))
		s.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSONResponse(w, status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
