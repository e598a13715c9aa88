package calibration

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"

	"github.com/agbru/decmul/internal/ui"
)

func digitsLabel(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}

// PrintProfile writes the probe findings as a table.
func PrintProfile(out io.Writer, p *PrecisionProfile) {
	fmt.Fprintf(out, "\n--- Precision Summary (%s/%s, FMA: %t, inverter: %s) ---\n",
		p.GOOS, p.GOARCH, p.HasFMA, p.Inverter)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Strategy").SetAlign(tabulate.ML)
	tab.Header("Documented").SetAlign(tabulate.MR)
	tab.Header("Empirical").SetAlign(tabulate.MR)
	tab.Header("First inexact").SetAlign(tabulate.MR)
	tab.Header("Probed up to").SetAlign(tabulate.MR)
	tab.Header("Trials").SetAlign(tabulate.MR)
	tab.Header("Verdict").SetAlign(tabulate.ML)

	for _, s := range p.Strategies {
		row := tab.Row()
		row.Column(s.Name)
		row.Column(digitsLabel(s.DocumentedSafeDigits))
		row.Column(digitsLabel(s.EmpiricalSafeDigits))
		row.Column(digitsLabel(s.FirstInexactDigits))
		row.Column(digitsLabel(s.MaxProbedDigits))
		row.Column(fmt.Sprintf("%d", s.Trials))
		row.Column(s.Verdict())
	}
	tab.Print(out)

	if unsafe := p.Unsafe(); len(unsafe) > 0 {
		for _, s := range unsafe {
			fmt.Fprintf(out, "%sWarning: %s was inexact at %d digits, below its documented bound of %d.%s\n",
				ui.ColorRed(), s.Name, s.FirstInexactDigits, s.DocumentedSafeDigits, ui.ColorReset())
		}
		return
	}
	fmt.Fprintf(out, "%sEvery documented bound holds on this machine.%s\n", ui.ColorGreen(), ui.ColorReset())
}
