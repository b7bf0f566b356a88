package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	apperrors "finbot/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := newApp(os.Stdout, os.Stderr)
	err := newRootCommand(a).ExecuteContext(ctx)
	a.close()
	stop()

	if err != nil {
		os.Exit(a.reportError(err))
	}
}

// reportError writes err to stderr and returns the exit status.
// Service failures are rendered as a JSON error response.
func (a *app) reportError(err error) int {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		fmt.Fprintln(a.errOut, "Error:", err)
		return 1
	}

	response := apperrors.FromError(err, a.requestID)
	body, jsonErr := response.ToJSON()
	if jsonErr != nil {
		fmt.Fprintln(a.errOut, response.String())
		return response.ExitCode()
	}
	fmt.Fprintln(a.errOut, string(body))
	return response.ExitCode()
}
