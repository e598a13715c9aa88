package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/config"
	"github.com/agbru/decmul/internal/multiply"
	"github.com/agbru/decmul/internal/ui"
)

// GetMultipliersToRun returns the strategies selected by cfg.Algo, in key
// order for "all".
func GetMultipliersToRun(cfg config.AppConfig, registry multiply.Registry) []multiply.Multiplier {
	if cfg.Algo == "all" {
		keys := registry.List()
		multipliers := make([]multiply.Multiplier, 0, len(keys))
		for _, k := range keys {
			if m, err := registry.Get(k); err == nil {
				multipliers = append(multipliers, m)
			}
		}
		return multipliers
	}
	if m, err := registry.Get(cfg.Algo); err == nil {
		return []multiply.Multiplier{m}
	}
	return nil
}

// PrintExecutionConfig describes the operands and the environment.
func PrintExecutionConfig(cfg config.AppConfig, a, b bignum.BigNumber, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying %s%d%s-digit by %s%d%s-digit operands with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), a.Len(), ui.ColorReset(),
		ui.ColorMagenta(), b.Len(), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Toom-Cook-3 inverter: %s%s%s.\n", ui.ColorCyan(), cfg.Inverter, ui.ColorReset())
}

// PrintExecutionMode tells whether one strategy runs or several are
// compared, and warns about strategies past their exact range.
func PrintExecutionMode(multipliers []multiply.Multiplier, a, b bignum.BigNumber, out io.Writer) {
	if len(multipliers) > 1 {
		fmt.Fprintf(out, "Execution mode: Parallel comparison of %d strategies.\n", len(multipliers))
	} else {
		fmt.Fprintf(out, "Execution mode: Single multiplication with %s%s%s.\n",
			ui.ColorGreen(), multipliers[0].Name(), ui.ColorReset())
	}
	for _, m := range multipliers {
		if !multiply.WithinBound(m, a, b) {
			fmt.Fprintf(out, "%sWarning: %s is exact only up to %d digits; its product may be wrong.%s\n",
				ui.ColorYellow(), m.Name(), m.(multiply.Bounded).MaxSafeDigits(), ui.ColorReset())
		}
	}
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
