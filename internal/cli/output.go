package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/ui"
	"github.com/agbru/decmul/pkg/models"
)

// OutputConfig selects how a product is reported.
type OutputConfig struct {
	// OutputFile is where the product is saved; empty disables file output.
	OutputFile string
	// Quiet prints only the product, for scripts.
	Quiet   bool
	Verbose bool
	Details bool
}

// WriteResultToFile writes the product with a commented header to
// config.OutputFile, creating parent directories as needed.
func WriteResultToFile(product, a, b bignum.BigNumber, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Decimal Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Operand digits: %d x %d\n", a.Len(), b.Len())
	fmt.Fprintf(file, "# Product digits: %d\n", product.Len())
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "a =\n%s\nb =\n%s\na x b =\n%s\n", a, b, product)

	return file.Close()
}

// DisplayQuietResult prints the bare product on one line.
func DisplayQuietResult(out io.Writer, product bignum.BigNumber) {
	fmt.Fprintln(out, product.String())
}

// DisplayResultWithConfig reports product according to config and saves it
// when an output file is set.
func DisplayResultWithConfig(out io.Writer, product, a, b bignum.BigNumber, duration time.Duration, algo string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, product)
	} else {
		DisplayResult(product, a, b, algo, duration, config.Verbose, config.Details, out)
	}

	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(product, a, b, duration, algo, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
	}
	return nil
}

// WriteJSONResults encodes results as an indented JSON array.
func WriteJSONResults(out io.Writer, results []models.StrategyResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
