// Package cli renders the command-line side of decmul: progress while the
// strategies run, the product, file and JSON output, and shell completion.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/decmul/internal/bignum"
	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/ui"
)

const (
	// TruncationLimit is the product length past which standard output
	// shows only the edges.
	TruncationLimit = 100
	// DisplayEdges is the number of digits shown at each end of a truncated
	// product.
	DisplayEdges = 25
	// ProgressRefreshRate is the spinner redraw interval.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// FormatExecutionDuration formats d with µs or ms resolution below one
// second.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// CLIColorProvider feeds the current ui theme to apperrors.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// Spinner abstracts the terminal spinner so tests can replace it.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// progressLine renders "done/total" with the names finished so far.
func progressLine(done, total int, last string) string {
	line := fmt.Sprintf("Strategies: %d/%d [%s]", done, total, progressBar(float64(done)/float64(total), ProgressBarWidth))
	if last != "" {
		line += " last: " + last
	}
	return line
}

// DisplayProgress shows a spinner until finished is closed. Each value
// received on finished is the display name of a strategy that completed.
// It must run in its own goroutine; wg is released on return.
func DisplayProgress(wg *sync.WaitGroup, finished <-chan string, total int, out io.Writer) {
	defer wg.Done()
	if total <= 0 {
		for range finished {
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	done, last := 0, ""
	for {
		select {
		case name, ok := <-finished:
			if !ok {
				s.Stop()
				stopped = true
				fmt.Fprintln(out, progressLine(done, total, ""))
				return
			}
			done++
			last = name
		case <-ticker.C:
			s.UpdateSuffix(" " + progressLine(done, total, last))
		}
	}
}

// DisplayResult prints the product of a and b. Products longer than
// TruncationLimit are shortened unless verbose; details adds digit counts
// and timing.
func DisplayResult(product, a, b bignum.BigNumber, algo string, duration time.Duration, verbose, details bool, out io.Writer) {
	if details {
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
		durationStr := FormatExecutionDuration(duration)
		if duration == 0 {
			durationStr = "< 1µs"
		}
		fmt.Fprintf(out, "Algorithm              : %s%s%s\n", ui.ColorBlue(), algo, ui.ColorReset())
		fmt.Fprintf(out, "Multiplication time    : %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())
		fmt.Fprintf(out, "Operand digits         : %s%s%s x %s%s%s\n",
			ui.ColorCyan(), formatNumberString(fmt.Sprint(a.Len())), ui.ColorReset(),
			ui.ColorCyan(), formatNumberString(fmt.Sprint(b.Len())), ui.ColorReset())
		fmt.Fprintf(out, "Product digits         : %s%s%s\n", ui.ColorCyan(), formatNumberString(fmt.Sprint(product.Len())), ui.ColorReset())
		if product.Len() > 6 {
			mag := product.Magnitude()
			sign := ""
			if product.IsNegative() {
				sign = "-"
			}
			fmt.Fprintf(out, "Scientific notation    : %s%s%c.%se+%d%s\n", ui.ColorCyan(), sign, mag[0], mag[1:7], len(mag)-1, ui.ColorReset())
		}
	}

	productStr := product.String()
	fmt.Fprintf(out, "\n%s--- Product ---%s\n", ui.ColorBold(), ui.ColorReset())
	switch {
	case verbose:
		fmt.Fprintf(out, "a x b =\n%s%s%s\n", ui.ColorGreen(), formatNumberString(productStr), ui.ColorReset())
	case product.Len() > TruncationLimit:
		mag := product.Magnitude()
		sign := productStr[:len(productStr)-len(mag)]
		fmt.Fprintf(out, "a x b (truncated) = %s%s%s...%s%s\n",
			ui.ColorGreen(), sign, mag[:DisplayEdges], mag[len(mag)-DisplayEdges:], ui.ColorReset())
		fmt.Fprintf(out, "(Tip: use the %s-v%s option to display the full value)\n", ui.ColorYellow(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "a x b = %s%s%s\n", ui.ColorGreen(), formatNumberString(productStr), ui.ColorReset())
	}
}

// formatNumberString inserts thousand separators into a decimal string with
// an optional leading '-'.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	var builder strings.Builder
	builder.Grow(len(prefix) + n + (n-1)/3)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])
	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
