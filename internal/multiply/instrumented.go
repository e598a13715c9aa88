package multiply

import (
	"context"
	"time"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decmul_multiplications_total",
			Help: "The total number of multiplications processed",
		},
		[]string{"algorithm", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "decmul_multiplication_duration_seconds",
			Help: "The duration of multiplications in seconds",
		},
		[]string{"algorithm"},
	)
)

// InstrumentedMultiplier implements Multiplier by decorating a
// coreMultiplier with tracing, metrics and debug logging.
type InstrumentedMultiplier struct {
	core coreMultiplier
}

// NewMultiplier wraps core into a Multiplier. It panics if core is nil.
func NewMultiplier(core coreMultiplier) Multiplier {
	if core == nil {
		panic("multiply: the `coreMultiplier` implementation cannot be nil")
	}
	return &InstrumentedMultiplier{core: core}
}

// Name returns the name of the wrapped algorithm.
func (m *InstrumentedMultiplier) Name() string {
	return m.core.Name()
}

// MaxSafeDigits forwards the bound of the wrapped algorithm, or 0 when it
// has none.
func (m *InstrumentedMultiplier) MaxSafeDigits() int {
	if b, ok := m.core.(Bounded); ok {
		return b.MaxSafeDigits()
	}
	return 0
}

type coreResult struct {
	product bignum.BigNumber
	err     error
}

// Multiply returns a * b, or ctx.Err() as soon as ctx is done. The core
// cannot be interrupted: on cancellation it runs to completion in the
// background and its result is discarded.
func (m *InstrumentedMultiplier) Multiply(ctx context.Context, a, b bignum.BigNumber) (result bignum.BigNumber, err error) {
	if err := ctx.Err(); err != nil {
		return bignum.Zero, err
	}

	tracer := otel.Tracer("multiply")
	_, span := tracer.Start(ctx, "Multiply")
	defer span.End()
	algoName := m.core.Name()
	span.SetAttributes(
		attribute.String("algorithm", algoName),
		attribute.Int("a.digits", a.Len()),
		attribute.Int("b.digits", b.Len()),
	)

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		multiplicationsTotal.WithLabelValues(algoName, status).Inc()
		multiplicationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int("a_digits", a.Len()).
			Int("b_digits", b.Len()).
			Float64("duration", duration).
			Str("status", status).
			Msg("multiplication completed")
	}()

	done := make(chan coreResult, 1)
	go func() {
		product, err := m.core.MultiplyCore(a, b)
		done <- coreResult{product: product, err: err}
	}()

	select {
	case res := <-done:
		return res.product, res.err
	case <-ctx.Done():
		return bignum.Zero, ctx.Err()
	}
}
