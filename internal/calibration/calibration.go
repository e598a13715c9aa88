package calibration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/decmul/internal/cli"
	"github.com/agbru/decmul/internal/config"
	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/multiply"
	"github.com/agbru/decmul/internal/ui"
)

// ProbeOptionsFromConfig maps the -probe-* flags to ProbeOptions.
func ProbeOptionsFromConfig(cfg config.AppConfig) ProbeOptions {
	opts := DefaultProbeOptions()
	if cfg.ProbeLimit > 0 {
		opts.LinearLimit = cfg.ProbeLimit
	}
	if cfg.ProbeFFTLimit > 0 {
		opts.DoublingLimit = cfg.ProbeFFTLimit
	}
	return opts
}

// RunProbe implements -probe. A saved profile is reused when it was
// recorded on matching hardware with the same inverter and limits;
// otherwise the strategies are probed and the profile is rewritten. The
// result is ExitErrorMismatch when a strategy fails within its documented
// bound.
func RunProbe(ctx context.Context, cfg config.AppConfig, registry multiply.Registry, out io.Writer) int {
	fmt.Fprintf(out, "--- Precision Probe: exact range of the bounded strategies ---\n")

	opts := ProbeOptionsFromConfig(cfg)
	path := cfg.ProbeProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}

	if cached, err := LoadProfile(path); err == nil {
		switch {
		case cached.IsValid() && cached.Covers(cfg.Inverter, opts):
			fmt.Fprintf(out, "%sLoaded precision profile from %s%s\n", ui.ColorGreen(), path, ui.ColorReset())
			PrintProfile(out, cached)
			return exitCodeFor(cached)
		case !cached.IsValid():
			fmt.Fprintf(out, "%sProfile at %s was recorded on different hardware; probing again.%s\n",
				ui.ColorYellow(), path, ui.ColorReset())
		}
	}

	total := len(boundedTargets(registry))
	fmt.Fprintf(out, "Probing %d strategies against %s: every length up to %d digits, doubling lengths up to %d digits.\n",
		total, ReferenceKey, opts.LinearLimit, opts.DoublingLimit)

	finished := make(chan string, total)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, finished, total, out)

	start := time.Now()
	strategies, err := Probe(ctx, registry, opts, func(name string) { finished <- name })
	close(finished)
	displayWg.Wait()

	if err != nil {
		return apperrors.HandleCalculationError(err, time.Since(start), out, cli.CLIColorProvider{})
	}

	profile := NewProfile(cfg.Inverter, opts)
	profile.Strategies = strategies
	profile.ProbeDuration = time.Since(start).String()

	PrintProfile(out, profile)

	if err := profile.Save(path); err != nil {
		fmt.Fprintf(out, "%sWarning: could not save the precision profile: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "Profile saved to %s\n", path)
	}
	return exitCodeFor(profile)
}

func exitCodeFor(p *PrecisionProfile) int {
	if len(p.Unsafe()) > 0 {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}
