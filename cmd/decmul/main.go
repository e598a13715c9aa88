// Command decmul multiplies arbitrarily large decimal integers with several
// strategies and cross-checks their products.
package main

import (
	"context"
	"io"
	"os"

	"github.com/agbru/decmul/internal/app"
	apperrors "github.com/agbru/decmul/internal/errors"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if app.HasVersionFlag(args[1:]) {
		app.PrintVersion(out)
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, errOut)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitCode(err)
	}
	return application.Run(ctx, out)
}
