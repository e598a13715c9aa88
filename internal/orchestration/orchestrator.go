// Package orchestration runs several multiplication strategies on the same
// operands, then compares and reports their products.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/markkurossi/tabulate"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/cli"
	"github.com/agbru/decmul/internal/config"
	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/multiply"
	"github.com/agbru/decmul/internal/ui"
	"github.com/agbru/decmul/pkg/models"
)

// MultiplicationResult is the outcome of one strategy.
type MultiplicationResult struct {
	Name     string
	Product  bignum.BigNumber
	Duration time.Duration
	// MaxSafeDigits is the strategy's exact range, 0 when unbounded.
	MaxSafeDigits int
	// WithinBound is false when the operands exceed MaxSafeDigits.
	WithinBound bool
	Err         error
}

// ExecuteMultiplications runs every multiplier concurrently on a and b and
// returns one result per multiplier, in input order. A spinner is drawn on
// out until all strategies finish.
func ExecuteMultiplications(ctx context.Context, multipliers []multiply.Multiplier, a, b bignum.BigNumber, out io.Writer) []MultiplicationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]MultiplicationResult, len(multipliers))
	finished := make(chan string, len(multipliers))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, finished, len(multipliers), out)

	for i, m := range multipliers {
		g.Go(func() error {
			res := MultiplicationResult{Name: m.Name(), WithinBound: multiply.WithinBound(m, a, b)}
			if bounded, ok := m.(multiply.Bounded); ok {
				res.MaxSafeDigits = bounded.MaxSafeDigits()
			}
			start := time.Now()
			res.Product, res.Err = m.Multiply(ctx, a, b)
			res.Duration = time.Since(start)
			if res.Err != nil {
				res.Err = apperrors.NewCalculationError(res.Name, res.Err)
			}
			results[i] = res
			finished <- res.Name
			return nil
		})
	}

	_ = g.Wait()
	close(finished)
	displayWg.Wait()

	return results
}

// sortResults orders successes before failures, then by duration.
func sortResults(results []MultiplicationResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})
}

// Compare picks the reference product and checks agreement. Only results
// within their strategy's bound take part in the check; a disagreement among
// them is a MismatchError. The reference is the fastest in-bound success,
// or the fastest success when every strategy ran past its bound. When no
// strategy succeeded, the first error is returned.
func Compare(results []MultiplicationResult) (MultiplicationResult, error) {
	sorted := append([]MultiplicationResult(nil), results...)
	sortResults(sorted)

	var (
		reference MultiplicationResult
		found     bool
		firstErr  error
	)
	for _, res := range sorted {
		switch {
		case res.Err != nil:
			if firstErr == nil {
				firstErr = res.Err
			}
		case res.WithinBound && (!found || !reference.WithinBound):
			reference, found = res, true
		case !found:
			reference, found = res, true
		}
	}
	if !found {
		return MultiplicationResult{}, firstErr
	}
	if !reference.WithinBound {
		return reference, nil
	}

	products := make(map[string]string)
	mismatch := false
	for _, res := range sorted {
		if res.Err != nil || !res.WithinBound {
			continue
		}
		products[res.Name] = res.Product.String()
		if !res.Product.Equal(reference.Product) {
			mismatch = true
		}
	}
	if mismatch {
		return reference, apperrors.MismatchError{Products: products}
	}
	return reference, nil
}

// statusOf describes a result relative to the reference product.
func statusOf(res MultiplicationResult, reference MultiplicationResult, haveReference bool) string {
	switch {
	case res.Err != nil:
		return fmt.Sprintf("Failure (%v)", res.Err)
	case res.WithinBound:
		if haveReference && reference.WithinBound && !res.Product.Equal(reference.Product) {
			return "MISMATCH"
		}
		return "Success"
	case haveReference && reference.WithinBound && !res.Product.Equal(reference.Product):
		return "Beyond bound (inexact)"
	case haveReference && reference.WithinBound:
		return "Beyond bound (matches)"
	default:
		return "Beyond bound (unverified)"
	}
}

// PrintSummary writes the comparison table.
func PrintSummary(results []MultiplicationResult, reference MultiplicationResult, haveReference bool, out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Duration").SetAlign(tabulate.MR)
	tab.Header("Exact up to").SetAlign(tabulate.MR)
	tab.Header("Status").SetAlign(tabulate.ML)

	for _, res := range results {
		row := tab.Row()
		row.Column(res.Name)
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		row.Column(duration)
		bound := "any length"
		if res.MaxSafeDigits > 0 {
			bound = strconv.Itoa(res.MaxSafeDigits) + " digits"
		}
		row.Column(bound)
		row.Column(statusOf(res, reference, haveReference))
	}
	tab.Print(out)
}

// ToStrategyResults converts results for JSON output.
func ToStrategyResults(results []MultiplicationResult) []models.StrategyResult {
	out := make([]models.StrategyResult, len(results))
	for i, res := range results {
		out[i] = models.StrategyResult{
			Algorithm:     res.Name,
			DurationNS:    res.Duration.Nanoseconds(),
			MaxSafeDigits: res.MaxSafeDigits,
			WithinBound:   res.WithinBound,
		}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		} else {
			out[i].Product = res.Product.String()
		}
	}
	return out
}

// AnalyzeComparisonResults prints the summary and the reference product and
// returns the process exit code.
func AnalyzeComparisonResults(results []MultiplicationResult, cfg config.AppConfig, a, b bignum.BigNumber, out io.Writer) int {
	sortResults(results)
	reference, err := Compare(results)
	haveReference := err == nil || apperrors.ExitCode(err) == apperrors.ExitErrorMismatch

	if cfg.Quiet {
		if err != nil {
			return apperrors.HandleCalculationError(err, 0, out, nil)
		}
		cli.DisplayQuietResult(out, reference.Product)
		if cfg.OutputFile != "" {
			outCfg := cli.OutputConfig{OutputFile: cfg.OutputFile, Quiet: true}
			if err := cli.WriteResultToFile(reference.Product, a, b, reference.Duration, reference.Name, outCfg); err != nil {
				return apperrors.HandleCalculationError(err, 0, out, nil)
			}
		}
		return apperrors.ExitSuccess
	}

	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	PrintSummary(results, reference, haveReference, out)

	if !haveReference {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the multiplication.\n")
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}
	if err != nil {
		fmt.Fprintf(out, "\n%sGlobal Status: CRITICAL ERROR! Strategies within their exact range disagree.%s\n", ui.ColorRed(), ui.ColorReset())
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}

	if reference.WithinBound {
		fmt.Fprintf(out, "\n%sGlobal Status: Success. All exact results are consistent.%s\n", ui.ColorGreen(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "\n%sGlobal Status: Unverified. Every strategy ran past its exact range; the product may be wrong.%s\n", ui.ColorYellow(), ui.ColorReset())
	}
	outCfg := cli.OutputConfig{OutputFile: cfg.OutputFile, Verbose: cfg.Verbose, Details: cfg.Details}
	if err := cli.DisplayResultWithConfig(out, reference.Product, a, b, reference.Duration, reference.Name, outCfg); err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}
	return apperrors.ExitSuccess
}
