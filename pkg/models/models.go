// Package models defines the JSON documents exchanged by the decmul HTTP API
// and printed by the CLI in -json mode.
package models

// MultiplyRequest is the body of POST /multiply. The GET form carries the
// same fields as query parameters.
type MultiplyRequest struct {
	A string `json:"a"`
	B string `json:"b"`
	// Algo is a strategy key. Empty selects the server default.
	Algo string `json:"algo,omitempty"`
}

// MultiplyResponse is the result of a single multiplication.
type MultiplyResponse struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Algorithm string `json:"algorithm"`
	Product   string `json:"product,omitempty"`
	Digits    int    `json:"digits,omitempty"`
	Duration  string `json:"duration"`
	// WithinBound is false when a bounded strategy ran on operands longer
	// than its exact range; the product may then be wrong.
	WithinBound bool `json:"within_bound"`
	// Cached is true when the server answered from its product cache.
	Cached bool   `json:"cached,omitempty"`
	Error  string `json:"error,omitempty"`
}

// StrategyResult is one row of a CLI comparison run.
type StrategyResult struct {
	Algorithm     string `json:"algorithm"`
	Product       string `json:"product,omitempty"`
	DurationNS    int64  `json:"duration_ns"`
	MaxSafeDigits int    `json:"max_safe_digits,omitempty"`
	WithinBound   bool   `json:"within_bound"`
	Error         string `json:"error,omitempty"`
}

// AlgorithmInfo describes a registered strategy.
type AlgorithmInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	// MaxSafeDigits is 0 for strategies that are exact at every length.
	MaxSafeDigits int `json:"max_safe_digits"`
}

// AlgorithmsResponse is the body of GET /algorithms.
type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
