package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/linalg"
)

var availableAlgos = []string{"fft", "karatsuba", "schoolbook", "toom3"}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("decmul", []string{"-a", "12", "-b", "34"}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Algo != DefaultAlgo {
		t.Errorf("Expected default Algo %q, got %q", DefaultAlgo, cfg.Algo)
	}
	if cfg.Inverter != DefaultInverter {
		t.Errorf("Expected default Inverter %q, got %q", DefaultInverter, cfg.Inverter)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Expected default Timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}
	if cfg.Port != DefaultPort || cfg.MaxDigits != DefaultMaxDigits {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.ProbeLimit != DefaultProbeLimit || cfg.ProbeFFTLimit != DefaultProbeFFTLimit {
		t.Errorf("unexpected probe defaults %+v", cfg)
	}
}

func TestParseConfigAllFlags(t *testing.T) {
	t.Parallel()
	args := []string{
		"-a", "-1234567890",
		"-b", "987654321",
		"-algo", "TOOM3",
		"-inverter", "LU",
		"-timeout", "10s",
		"-v", "-details", "-json", "-q",
		"-o", "product.txt",
		"-no-color",
		"-max-digits", "50",
	}
	cfg, err := ParseConfig("decmul", args, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := AppConfig{
		A: "-1234567890", B: "987654321",
		Algo: "toom3", Inverter: "lu",
		Timeout: 10 * time.Second,
		Verbose: true, Details: true, JSONOutput: true, Quiet: true,
		OutputFile: "product.txt", NoColor: true,
		Port: DefaultPort, MaxDigits: 50,
		ProbeLimit: DefaultProbeLimit, ProbeFFTLimit: DefaultProbeFFTLimit,
	}
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}
}

func TestParseConfigModesWithoutOperands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		args  []string
		check func(AppConfig) bool
	}{
		{"server", []string{"-server", "-port", "9090"}, func(c AppConfig) bool { return c.ServerMode && c.Port == "9090" }},
		{"probe", []string{"-probe", "-probe-limit", "30", "-probe-fft-limit", "4096"}, func(c AppConfig) bool {
			return c.Probe && c.ProbeLimit == 30 && c.ProbeFFTLimit == 4096
		}},
		{"completion", []string{"-completion", "Fish"}, func(c AppConfig) bool { return c.Completion == "fish" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig("decmul", tt.args, io.Discard, availableAlgos)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestParseConfigValidationErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing operands", []string{}, "both operands"},
		{"missing b", []string{"-a", "1"}, "both operands"},
		{"bad operand", []string{"-a", "12x", "-b", "3"}, "invalid operand -a"},
		{"bare minus", []string{"-a", "5", "-b", "-"}, "invalid operand -b"},
		{"unknown algo", []string{"-a", "1", "-b", "2", "-algo", "quantum"}, "unrecognized algorithm"},
		{"unknown inverter", []string{"-a", "1", "-b", "2", "-inverter", "qr"}, "unknown inverter"},
		{"zero timeout", []string{"-a", "1", "-b", "2", "-timeout", "0s"}, "timeout"},
		{"negative max digits", []string{"-a", "1", "-b", "2", "-max-digits", "-1"}, "max-digits"},
		{"operand too long", []string{"-a", "123456", "-b", "2", "-max-digits", "5"}, "the limit is 5"},
		{"probe limit", []string{"-probe", "-probe-limit", "0"}, "probe limits"},
		{"bad shell", []string{"-completion", "tcsh"}, "unsupported shell"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			_, err := ParseConfig("decmul", tt.args, &out, availableAlgos)
			if err == nil {
				t.Fatal("expected an error")
			}
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("expected a ConfigError in the chain, got %T", err)
			}
			if apperrors.ExitCode(err) != apperrors.ExitErrorConfig {
				t.Errorf("exit code = %d", apperrors.ExitCode(err))
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
			if !strings.Contains(out.String(), "Configuration error:") || !strings.Contains(out.String(), "Usage:") {
				t.Errorf("usage not printed: %q", out.String())
			}
		})
	}
}

func TestParseConfigFlagErrors(t *testing.T) {
	t.Parallel()
	if _, err := ParseConfig("decmul", []string{"-h"}, io.Discard, availableAlgos); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
	_, err := ParseConfig("decmul", []string{"-unknown"}, io.Discard, availableAlgos)
	if code := apperrors.ExitCode(err); code != apperrors.ExitErrorConfig {
		t.Errorf("unknown flag: exit code %d (%v), want %d", code, err, apperrors.ExitErrorConfig)
	}
	if _, err := ParseConfig("decmul", []string{"-timeout", "soon"}, io.Discard, availableAlgos); err == nil {
		t.Error("expected an error for an invalid duration")
	}
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"DECMUL_A":               "-99",
		"DECMUL_B":               "101",
		"DECMUL_ALGO":            "fft",
		"DECMUL_INVERTER":        "lu",
		"DECMUL_TIMEOUT":         "2m",
		"DECMUL_PORT":            "3000",
		"DECMUL_MAX_DIGITS":      "10",
		"DECMUL_OUTPUT":          "out.txt",
		"DECMUL_JSON":            "yes",
		"DECMUL_DETAILS":         "1",
		"DECMUL_QUIET":           "true",
		"DECMUL_PROBE_LIMIT":     "25",
		"DECMUL_PROBE_FFT_LIMIT": "1024",
		"DECMUL_PROBE_PROFILE":   "/tmp/p.json",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := ParseConfig("decmul", nil, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := AppConfig{
		A: "-99", B: "101", Algo: "fft", Inverter: "lu",
		Timeout: 2 * time.Minute, Port: "3000", MaxDigits: 10,
		OutputFile: "out.txt", JSONOutput: true, Details: true, Quiet: true,
		ProbeLimit: 25, ProbeFFTLimit: 1024, ProbeProfile: "/tmp/p.json",
	}
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}

	t.Run("flags win over environment", func(t *testing.T) {
		cfg, err := ParseConfig("decmul", []string{"-algo", "karatsuba", "-b", "7", "-q=false"}, io.Discard, availableAlgos)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Algo != "karatsuba" || cfg.B != "7" || cfg.Quiet {
			t.Errorf("flags did not take precedence: %+v", cfg)
		}
		if cfg.A != "-99" {
			t.Errorf("environment not applied to unset flag: %+v", cfg)
		}
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("DECMUL_TEST_INT", "not-a-number")
	t.Setenv("DECMUL_TEST_BOOL", "maybe")
	t.Setenv("DECMUL_TEST_DUR", "5 minutes")
	if got := getEnvInt("TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt fallback = %d", got)
	}
	if got := getEnvBool("TEST_BOOL", true); !got {
		t.Error("getEnvBool fallback lost")
	}
	if got := getEnvDuration("TEST_DUR", time.Second); got != time.Second {
		t.Errorf("getEnvDuration fallback = %v", got)
	}
	if got := getEnvString("TEST_MISSING", "x"); got != "x" {
		t.Errorf("getEnvString fallback = %q", got)
	}
}

func TestToMultiplyOptions(t *testing.T) {
	t.Parallel()
	opts, err := AppConfig{Inverter: "lu"}.ToMultiplyOptions()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := opts.Inverter.(linalg.LUInverter); !ok {
		t.Errorf("expected LUInverter, got %T", opts.Inverter)
	}
	if _, err := (AppConfig{Inverter: "svd"}).ToMultiplyOptions(); apperrors.ExitCode(err) != apperrors.ExitErrorConfig {
		t.Errorf("expected a config error, got %v", err)
	}
}

func TestOperands(t *testing.T) {
	t.Parallel()
	a, b, err := AppConfig{A: "-007", B: "0"}.Operands()
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "-7" || b.String() != "0" {
		t.Errorf("got %s, %s", a, b)
	}
}
