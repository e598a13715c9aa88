package calibration

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/multiply"
)

// ReferenceKey is the strategy every other one is checked against.
const ReferenceKey = multiply.KeyKaratsuba

// ProbeOptions bounds a probe run.
type ProbeOptions struct {
	// LinearLimit: strategies documented exact up to at most LinearLimit
	// digits are probed at every length from 1 to LinearLimit.
	LinearLimit int
	// DoublingLimit: the others are probed at 1, 2, 4, ... up to
	// DoublingLimit digits.
	DoublingLimit int
	// Trials is the number of random pairs per length, on top of the
	// all-nines pair.
	Trials int
	Seed   uint64
}

// DefaultProbeOptions matches the -probe-limit and -probe-fft-limit defaults.
func DefaultProbeOptions() ProbeOptions {
	return ProbeOptions{LinearLimit: 40, DoublingLimit: 1 << 16, Trials: 3, Seed: 1}
}

// StrategyPrecision is the finding for one strategy.
type StrategyPrecision struct {
	Key                  string `json:"key"`
	Name                 string `json:"name"`
	DocumentedSafeDigits int    `json:"documented_safe_digits"`
	// EmpiricalSafeDigits is the largest probed length at which every
	// trial, and every shorter probed length, was exact.
	EmpiricalSafeDigits int `json:"empirical_safe_digits"`
	// FirstInexactDigits is 0 when no trial failed.
	FirstInexactDigits int `json:"first_inexact_digits,omitempty"`
	MaxProbedDigits    int `json:"max_probed_digits"`
	Trials             int `json:"trials"`
}

// Unsafe reports a failure at or below the documented bound.
func (s StrategyPrecision) Unsafe() bool {
	return s.FirstInexactDigits > 0 && s.FirstInexactDigits <= s.DocumentedSafeDigits
}

// Verdict summarizes the finding for display.
func (s StrategyPrecision) Verdict() string {
	switch {
	case s.Unsafe():
		return "UNSAFE: inexact within documented bound"
	case s.FirstInexactDigits > 0:
		return "bound holds"
	case s.MaxProbedDigits < s.DocumentedSafeDigits:
		return "no error found (bound not reached)"
	default:
		return "no error found"
	}
}

type probeTarget struct {
	key string
	m   multiply.Multiplier
	max int
}

// boundedTargets lists the registry's strategies that declare a precision
// bound, in key order.
func boundedTargets(registry multiply.Registry) []probeTarget {
	var targets []probeTarget
	for _, key := range registry.List() {
		if key == ReferenceKey {
			continue
		}
		m, err := registry.Get(key)
		if err != nil {
			continue
		}
		if bounded, ok := m.(multiply.Bounded); ok && bounded.MaxSafeDigits() > 0 {
			targets = append(targets, probeTarget{key: key, m: m, max: bounded.MaxSafeDigits()})
		}
	}
	return targets
}

// probeLengths returns the operand lengths to try for a strategy
// documented exact up to bound digits.
func probeLengths(bound int, opts ProbeOptions) []int {
	var lengths []int
	if bound <= opts.LinearLimit {
		for n := 1; n <= opts.LinearLimit; n++ {
			lengths = append(lengths, n)
		}
		return lengths
	}
	for n := 1; n <= opts.DoublingLimit; n *= 2 {
		lengths = append(lengths, n)
	}
	return lengths
}

// randomOperand returns a signed n-digit number without a leading zero.
func randomOperand(r *rand.Rand, n int) bignum.BigNumber {
	var b strings.Builder
	b.Grow(n + 1)
	if r.IntN(2) == 0 {
		b.WriteByte('-')
	}
	b.WriteByte(byte('1' + r.IntN(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + r.IntN(10)))
	}
	return bignum.MustParse(b.String())
}

func allNines(n int) bignum.BigNumber {
	return bignum.MustParse(strings.Repeat("9", n))
}

// Probe checks every bounded strategy of registry against the reference
// strategy, concurrently. onDone, if not nil, receives each strategy name
// as it completes. Results are in key order.
func Probe(ctx context.Context, registry multiply.Registry, opts ProbeOptions, onDone func(name string)) ([]StrategyPrecision, error) {
	ref, err := registry.Get(ReferenceKey)
	if err != nil {
		return nil, fmt.Errorf("reference strategy unavailable: %w", err)
	}
	if opts.Trials < 0 {
		return nil, errors.New("trials must not be negative")
	}

	targets := boundedTargets(registry)
	results := make([]StrategyPrecision, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
			res, err := probeStrategy(ctx, target, ref, probeLengths(target.max, opts), opts.Trials, rng)
			if err != nil {
				return fmt.Errorf("%s: %w", target.m.Name(), err)
			}
			results[i] = res
			if onDone != nil {
				onDone(target.m.Name())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// probeStrategy walks lengths in increasing order and stops at the first
// inexact product.
func probeStrategy(ctx context.Context, target probeTarget, ref multiply.Multiplier, lengths []int, trials int, rng *rand.Rand) (StrategyPrecision, error) {
	res := StrategyPrecision{Key: target.key, Name: target.m.Name(), DocumentedSafeDigits: target.max}
	for _, n := range lengths {
		pairs := [][2]bignum.BigNumber{{allNines(n), allNines(n)}}
		for range trials {
			pairs = append(pairs, [2]bignum.BigNumber{randomOperand(rng, n), randomOperand(rng, n)})
		}

		res.MaxProbedDigits = n
		for _, p := range pairs {
			want, err := ref.Multiply(ctx, p[0], p[1])
			if err != nil {
				return res, err
			}
			got, err := target.m.Multiply(ctx, p[0], p[1])
			if err != nil {
				return res, err
			}
			res.Trials++
			if !got.Equal(want) {
				res.FirstInexactDigits = n
				return res, nil
			}
		}
		res.EmpiricalSafeDigits = n
	}
	return res, nil
}
