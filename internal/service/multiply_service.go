// Package service validates multiplication requests and runs them on a
// strategy from the registry. It is shared by the HTTP server and the tests.
package service

//go:generate mockgen -source=multiply_service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agbru/decmul/internal/bignum"
	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/logging"
	"github.com/agbru/decmul/internal/multiply"
	"github.com/agbru/decmul/pkg/models"
)

// DefaultAlgorithm is used when a request names no strategy.
const DefaultAlgorithm = multiply.KeyKaratsuba

const (
	// DefaultCacheSize is the number of products kept by NewMultiplyService.
	DefaultCacheSize = 256
	// cacheMaxDigits bounds the combined operand length of a cached entry.
	cacheMaxDigits = 20_000
)

var (
	// ErrOperandTooLarge is returned when an operand is longer than the
	// configured digit limit.
	ErrOperandTooLarge = errors.New("operand exceeds maximum digit count")
	// ErrUnknownAlgorithm is returned for a strategy key the registry lacks.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Result is the outcome of Service.Multiply.
type Result struct {
	Product   bignum.BigNumber
	Algorithm string
	// WithinBound is false when the strategy ran past its exact range.
	WithinBound bool
	Duration    time.Duration
	// Cached is true when the product came from the result cache; Duration
	// is then the duration of the original computation.
	Cached bool
}

// Service multiplies decimal operands given as strings.
type Service interface {
	// Multiply validates a and b, resolves algo and returns a*b.
	Multiply(ctx context.Context, algo, a, b string) (Result, error)
	// Algorithms describes every registered strategy, sorted by key.
	Algorithms() []models.AlgorithmInfo
}

// MultiplyService implements Service on top of a multiply.Registry.
type MultiplyService struct {
	registry  multiply.Registry
	logger    logging.Logger
	maxDigits int
	cache     *lru.Cache[cacheKey, Result]
}

// cacheKey identifies a product by strategy and canonical operands.
type cacheKey struct {
	algo, a, b string
}

var _ Service = (*MultiplyService)(nil)

// NewMultiplyService creates a MultiplyService with a cache of
// DefaultCacheSize products. maxDigits caps each operand (0 for no cap); a
// nil logger discards output.
func NewMultiplyService(registry multiply.Registry, logger logging.Logger, maxDigits int) *MultiplyService {
	return NewMultiplyServiceWithCache(registry, logger, maxDigits, DefaultCacheSize)
}

// NewMultiplyServiceWithCache is NewMultiplyService with an explicit cache
// size. A size of 0 or less disables caching.
func NewMultiplyServiceWithCache(registry multiply.Registry, logger logging.Logger, maxDigits, cacheSize int) *MultiplyService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &MultiplyService{registry: registry, logger: logger, maxDigits: maxDigits}
	if cacheSize > 0 {
		// lru.New only fails on a non-positive size.
		s.cache, _ = lru.New[cacheKey, Result](cacheSize)
	}
	return s
}

func (s *MultiplyService) parseOperand(field, value string) (bignum.BigNumber, error) {
	n, err := bignum.Parse(value)
	if err != nil {
		return n, apperrors.ValidationError{Field: field, Message: err.Error(), Value: value, Cause: err}
	}
	if s.maxDigits > 0 && n.Len() > s.maxDigits {
		return n, fmt.Errorf("%w: '%s' has %d digits, the limit is %d", ErrOperandTooLarge, field, n.Len(), s.maxDigits)
	}
	return n, nil
}

// Multiply implements Service. Operand errors are ValidationErrors wrapping
// bignum.ErrInvalidNumberFormat, or wrap ErrOperandTooLarge; strategy
// failures are CalculationErrors.
func (s *MultiplyService) Multiply(ctx context.Context, algo, a, b string) (Result, error) {
	x, err := s.parseOperand("a", a)
	if err != nil {
		return Result{}, err
	}
	y, err := s.parseOperand("b", b)
	if err != nil {
		return Result{}, err
	}

	if algo == "" {
		algo = DefaultAlgorithm
	}
	m, err := s.registry.Get(algo)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}

	res := Result{Algorithm: m.Name(), WithinBound: multiply.WithinBound(m, x, y)}
	if !res.WithinBound {
		s.logger.Warn("operands exceed the exact range of the strategy",
			logging.Algorithm(m.Name()),
			logging.Int("digits", max(x.Len(), y.Len())),
			logging.Int("max_safe_digits", m.(multiply.Bounded).MaxSafeDigits()))
	}

	key := cacheKey{algo: algo, a: x.String(), b: y.String()}
	cacheable := s.cache != nil && x.Len()+y.Len() <= cacheMaxDigits
	if cacheable {
		if hit, ok := s.cache.Get(key); ok {
			hit.Cached = true
			s.logger.Debug("product served from cache", logging.Algorithm(hit.Algorithm), logging.Digits(x.Len(), y.Len()))
			return hit, nil
		}
	}

	start := time.Now()
	res.Product, err = m.Multiply(ctx, x, y)
	res.Duration = time.Since(start)
	if err != nil {
		return Result{}, apperrors.NewCalculationError(m.Name(), err)
	}
	if cacheable {
		s.cache.Add(key, res)
	}
	return res, nil
}

// Algorithms implements Service.
func (s *MultiplyService) Algorithms() []models.AlgorithmInfo {
	keys := s.registry.List()
	infos := make([]models.AlgorithmInfo, 0, len(keys))
	for _, key := range keys {
		m, err := s.registry.Get(key)
		if err != nil {
			continue
		}
		info := models.AlgorithmInfo{Key: key, Name: m.Name()}
		if bounded, ok := m.(multiply.Bounded); ok {
			info.MaxSafeDigits = bounded.MaxSafeDigits()
		}
		infos = append(infos, info)
	}
	return infos
}
