package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt falls back to defaultVal when the variable is unset or not an
// integer.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool accepts true/1/yes and false/0/no, case-insensitively.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether any of names was given on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides fills every setting not given as a flag from its
// DECMUL_* variable, so the precedence is flags, then environment, then
// defaults.
//
//	DECMUL_A, DECMUL_B          operands
//	DECMUL_ALGO                 algorithm key or "all"
//	DECMUL_INVERTER             exact | lu
//	DECMUL_TIMEOUT              duration ("30s", "2m")
//	DECMUL_PORT, DECMUL_SERVER  server mode
//	DECMUL_MAX_DIGITS           operand cap
//	DECMUL_OUTPUT               output file
//	DECMUL_PROBE, DECMUL_PROBE_PROFILE, DECMUL_PROBE_LIMIT, DECMUL_PROBE_FFT_LIMIT
//	DECMUL_JSON, DECMUL_VERBOSE, DECMUL_DETAILS, DECMUL_QUIET, DECMUL_NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	strs := []struct {
		flags []string
		key   string
		dst   *string
	}{
		{[]string{"a"}, "A", &config.A},
		{[]string{"b"}, "B", &config.B},
		{[]string{"algo"}, "ALGO", &config.Algo},
		{[]string{"inverter"}, "INVERTER", &config.Inverter},
		{[]string{"port"}, "PORT", &config.Port},
		{[]string{"output", "o"}, "OUTPUT", &config.OutputFile},
		{[]string{"probe-profile"}, "PROBE_PROFILE", &config.ProbeProfile},
	}
	for _, s := range strs {
		if !isFlagSet(fs, s.flags...) {
			*s.dst = getEnvString(s.key, *s.dst)
		}
	}

	ints := []struct {
		flag, key string
		dst       *int
	}{
		{"max-digits", "MAX_DIGITS", &config.MaxDigits},
		{"probe-limit", "PROBE_LIMIT", &config.ProbeLimit},
		{"probe-fft-limit", "PROBE_FFT_LIMIT", &config.ProbeFFTLimit},
	}
	for _, i := range ints {
		if !isFlagSet(fs, i.flag) {
			*i.dst = getEnvInt(i.key, *i.dst)
		}
	}

	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}

	bools := []struct {
		flags []string
		key   string
		dst   *bool
	}{
		{[]string{"server"}, "SERVER", &config.ServerMode},
		{[]string{"json"}, "JSON", &config.JSONOutput},
		{[]string{"v"}, "VERBOSE", &config.Verbose},
		{[]string{"d", "details"}, "DETAILS", &config.Details},
		{[]string{"quiet", "q"}, "QUIET", &config.Quiet},
		{[]string{"no-color"}, "NO_COLOR", &config.NoColor},
		{[]string{"probe"}, "PROBE", &config.Probe},
	}
	for _, b := range bools {
		if !isFlagSet(fs, b.flags...) {
			*b.dst = getEnvBool(b.key, *b.dst)
		}
	}
}
