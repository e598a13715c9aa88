package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/decmul/internal/calibration"
	"github.com/agbru/decmul/internal/cli"
	"github.com/agbru/decmul/internal/config"
	apperrors "github.com/agbru/decmul/internal/errors"
	"github.com/agbru/decmul/internal/logging"
	"github.com/agbru/decmul/internal/multiply"
	"github.com/agbru/decmul/internal/orchestration"
	"github.com/agbru/decmul/internal/server"
	"github.com/agbru/decmul/internal/ui"
)

// Application is a parsed decmul invocation ready to run.
type Application struct {
	Config config.AppConfig
	// Registry holds the strategies, built with the configured inverter.
	Registry  multiply.Registry
	ErrWriter io.Writer
}

// New parses args (program name first) and builds the strategy registry.
// Invalid configurations come back as errors carrying a ConfigError.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "decmul"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, multiply.GlobalRegistry().List())
	if err != nil {
		return nil, err
	}

	opts, err := cfg.ToMultiplyOptions()
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Registry:  multiply.NewRegistry(opts),
		ErrWriter: errWriter,
	}, nil
}

// Run dispatches to completion, server, probe or multiplication mode and
// returns the exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	logging.SetDebug(a.Config.Details || a.Config.Verbose)

	switch {
	case a.Config.ServerMode:
		return a.runServer()
	case a.Config.Probe:
		return a.runProbe(ctx, out)
	default:
		return a.runMultiply(ctx, out)
	}
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runServer() int {
	srv := server.NewServer(a.Registry, a.Config, server.WithLogger(logging.NewLogger(os.Stdout, "server")))
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) runProbe(ctx context.Context, out io.Writer) int {
	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()
	return calibration.RunProbe(ctx, a.Config, a.Registry, out)
}

// runMultiply runs the selected strategies on the operands and reports
// the outcome in the configured format.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) int {
	x, y, err := a.Config.Operands()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	multipliers := cli.GetMultipliersToRun(a.Config, a.Registry)
	if len(multipliers) == 0 {
		fmt.Fprintf(a.ErrWriter, "No strategy matches -algo %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	quiet := a.Config.JSONOutput || a.Config.Quiet
	if !quiet {
		cli.PrintExecutionConfig(a.Config, x, y, out)
		cli.PrintExecutionMode(multipliers, x, y, out)
	}

	progressOut := out
	if quiet {
		progressOut = io.Discard
	}
	results := orchestration.ExecuteMultiplications(ctx, multipliers, x, y, progressOut)

	if a.Config.JSONOutput {
		return printJSONResults(results, out)
	}
	return orchestration.AnalyzeComparisonResults(results, a.Config, x, y, out)
}

// printJSONResults writes every strategy's result as a JSON array. The exit
// code still reflects disagreement or total failure.
func printJSONResults(results []orchestration.MultiplicationResult, out io.Writer) int {
	if err := cli.WriteJSONResults(out, orchestration.ToStrategyResults(results)); err != nil {
		return apperrors.ExitErrorGeneric
	}
	_, err := orchestration.Compare(results)
	return apperrors.ExitCode(err)
}

// IsHelpError reports whether err comes from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
