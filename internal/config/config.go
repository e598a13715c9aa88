// Package config turns command-line flags and DECMUL_* environment
// variables into a validated AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/decmul/internal/bignum"
	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/multiply"
)

// EnvPrefix is the prefix of every environment variable read by decmul.
const EnvPrefix = "DECMUL_"

// Default configuration values.
const (
	DefaultTimeout  = time.Minute
	DefaultPort     = "8080"
	DefaultAlgo     = "all"
	DefaultInverter = multiply.InverterExact
	// DefaultMaxDigits caps each operand; 0 disables the cap.
	DefaultMaxDigits = 1_000_000
	// DefaultProbeLimit is the longest operand the probe tries on Toom-Cook-3.
	DefaultProbeLimit = 40
	// DefaultProbeFFTLimit is the longest operand the probe tries on FFT.
	DefaultProbeFFTLimit = 1 << 16
)

// Shells with a completion script.
var supportedShells = []string{"bash", "fish"}

// AppConfig holds every setting of a run.
type AppConfig struct {
	// A and B are the operands as typed; Validate checks them.
	A, B string
	// Algo is a registry key or "all".
	Algo string
	// Inverter selects the Toom-Cook-3 matrix inverter ("exact" or "lu").
	Inverter string
	Timeout  time.Duration
	// Verbose prints the full product instead of a truncated one.
	Verbose bool
	// Details adds digit counts and precision bounds to the report.
	Details    bool
	JSONOutput bool
	// Quiet prints only the product.
	Quiet      bool
	OutputFile string
	NoColor    bool
	ServerMode bool
	Port       string
	// MaxDigits caps the length of each operand; 0 means no cap.
	MaxDigits int
	// Probe runs the precision probe instead of a multiplication.
	Probe bool
	// ProbeProfile is where the probe reads and writes its profile. Empty
	// means ~/.decmul_precision.json.
	ProbeProfile  string
	ProbeLimit    int
	ProbeFFTLimit int
	// Completion names a shell whose completion script is printed.
	Completion string
}

// ToMultiplyOptions builds the registry options for this configuration.
func (c AppConfig) ToMultiplyOptions() (multiply.Options, error) {
	inv, err := multiply.InverterByName(c.Inverter)
	if err != nil {
		return multiply.Options{}, apperrors.NewConfigError("%v", err)
	}
	return multiply.Options{Inverter: inv}, nil
}

// Operands parses A and B.
func (c AppConfig) Operands() (a, b bignum.BigNumber, err error) {
	if a, err = bignum.Parse(c.A); err != nil {
		return a, b, apperrors.NewConfigError("invalid operand -a %q: %v", c.A, err)
	}
	if b, err = bignum.Parse(c.B); err != nil {
		return a, b, apperrors.NewConfigError("invalid operand -b %q: %v", c.B, err)
	}
	return a, b, nil
}

// needsOperands reports whether the run multiplies the command-line operands.
func (c AppConfig) needsOperands() bool {
	return !c.ServerMode && !c.Probe && c.Completion == ""
}

// Validate checks the configuration against the available algorithm keys.
// It returns a ConfigError on the first problem found.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.MaxDigits < 0 {
		return apperrors.NewConfigError("max-digits cannot be negative: %d", c.MaxDigits)
	}
	if c.ProbeLimit <= 0 || c.ProbeFFTLimit <= 0 {
		return apperrors.NewConfigError("probe limits must be strictly positive")
	}
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if _, err := multiply.InverterByName(c.Inverter); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Completion != "" && !slices.Contains(supportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell for completion: '%s'. Supported: %s", c.Completion, strings.Join(supportedShells, ", "))
	}
	if !c.needsOperands() {
		return nil
	}
	if c.A == "" || c.B == "" {
		return apperrors.NewConfigError("both operands -a and -b are required")
	}
	a, b, err := c.Operands()
	if err != nil {
		return err
	}
	if c.MaxDigits > 0 && max(a.Len(), b.Len()) > c.MaxDigits {
		return apperrors.NewConfigError("operand has %d digits, the limit is %d (see -max-digits)", max(a.Len(), b.Len()), c.MaxDigits)
	}
	return nil
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// for flags not given explicitly, and validates the result. Usage and
// validation messages go to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithm to use: 'all' (default) or one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.A, "a", "", "First operand (decimal integer, optional leading '-').")
	fs.StringVar(&config.B, "b", "", "Second operand (decimal integer, optional leading '-').")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.StringVar(&config.Inverter, "inverter", DefaultInverter, "Toom-Cook-3 matrix inverter: 'exact' or 'lu'.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full product (can be very long).")
	fs.BoolVar(&config.Details, "d", false, "Display digit counts and precision bounds.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: print only the product.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.StringVar(&config.OutputFile, "output", "", "Write the product to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.IntVar(&config.MaxDigits, "max-digits", DefaultMaxDigits, "Maximum digits per operand (0 for no limit).")
	fs.BoolVar(&config.Probe, "probe", false, "Measure the precision bounds of Toom-Cook-3 and FFT on this machine.")
	fs.StringVar(&config.ProbeProfile, "probe-profile", "", "Path to the precision profile (default: ~/.decmul_precision.json).")
	fs.IntVar(&config.ProbeLimit, "probe-limit", DefaultProbeLimit, "Longest operand probed on Toom-Cook-3.")
	fs.IntVar(&config.ProbeFFTLimit, "probe-fft-limit", DefaultProbeFFTLimit, "Longest operand probed on FFT.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, fish).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	config.Inverter = strings.ToLower(config.Inverter)
	config.Completion = strings.ToLower(config.Completion)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, apperrors.WrapError(err, "invalid configuration")
	}
	return config, nil
}
