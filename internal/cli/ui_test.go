package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/testutil"
	"github.com/agbru/decmul/internal/ui"
)

type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	m.suffix = suffix
	m.mu.Unlock()
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		length   int
		want     string
	}{
		{0.0, 10, "░░░░░░░░░░"},
		{0.5, 10, "█████░░░░░"},
		{1.0, 10, "██████████"},
		{1.2, 10, "██████████"},
		{-0.1, 10, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.progress, tt.length); got != tt.want {
			t.Errorf("progressBar(%f, %d) = %s; want %s", tt.progress, tt.length, got, tt.want)
		}
	}
}

func TestProgressLine(t *testing.T) {
	t.Parallel()
	got := progressLine(2, 4, "FFT")
	if !strings.HasPrefix(got, "Strategies: 2/4 [") || !strings.HasSuffix(got, "] last: FFT") {
		t.Errorf("unexpected progress line %q", got)
	}
	if strings.Contains(progressLine(4, 4, ""), "last:") {
		t.Error("final line should not name a strategy")
	}
}

func TestDisplayResult(t *testing.T) {
	original := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(original)
	ui.SetCurrentTheme(ui.NoColorTheme)

	big := bignum.MustParse("-" + strings.Repeat("7", 150))
	tests := []struct {
		name     string
		product  bignum.BigNumber
		verbose  bool
		details  bool
		contains []string
		excludes []string
	}{
		{
			name:     "short product",
			product:  bignum.MustParse("-853973398759468"),
			contains: []string{"--- Product ---", "a x b = -853,973,398,759,468"},
			excludes: []string{"Detailed"},
		},
		{
			name:     "details",
			product:  bignum.MustParse("-853973398759468"),
			details:  true,
			contains: []string{"Detailed result analysis", "Algorithm              : Karatsuba", "Operand digits         : 8 x 8", "Product digits         : 15", "Scientific notation    : -8.539733e+14"},
		},
		{
			name:     "truncated",
			product:  big,
			contains: []string{"(truncated) = -" + strings.Repeat("7", DisplayEdges) + "..." + strings.Repeat("7", DisplayEdges), "Tip: use"},
		},
		{
			name:     "verbose",
			product:  big,
			verbose:  true,
			contains: []string{"a x b =\n-777,777"},
			excludes: []string{"truncated"},
		},
	}
	a, b := bignum.MustParse("31415926"), bignum.MustParse("-27182818")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(tt.product, a, b, "Karatsuba", time.Millisecond, tt.verbose, tt.details, &buf)
			out := testutil.StripAnsiCodes(buf.String())
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output lacks %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input, expected string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
		{"-123", "-123"},
	}
	for _, tt := range tests {
		if got := formatNumberString(tt.input); got != tt.expected {
			t.Errorf("formatNumberString(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	rs := &realSpinner{spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(&buf))}
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestCLIColorProvider(t *testing.T) {
	original := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(original)

	ui.SetCurrentTheme(ui.DarkTheme)
	p := CLIColorProvider{}
	if p.Red() != ui.DarkTheme.Error || p.Yellow() != ui.DarkTheme.Warning || p.Reset() != ui.DarkTheme.Reset {
		t.Error("provider does not follow the current theme")
	}
}

func TestDisplayProgress(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }

	var wg sync.WaitGroup
	wg.Add(1)
	finished := make(chan string)
	var out bytes.Buffer

	go func() {
		finished <- "Karatsuba"
		finished <- "FFT"
		close(finished)
	}()

	DisplayProgress(&wg, finished, 2, &out)
	wg.Wait()

	if !mockS.started || !mockS.stopped {
		t.Error("spinner should have started and stopped")
	}
	if !strings.Contains(out.String(), "Strategies: 2/2") {
		t.Errorf("final progress line missing: %q", out.String())
	}
}

func TestDisplayProgressNoStrategies(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	finished := make(chan string)
	close(finished)
	DisplayProgress(&wg, finished, 0, &bytes.Buffer{})
	wg.Wait()
}
