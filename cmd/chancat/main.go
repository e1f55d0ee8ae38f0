// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Command chancat sorts the channels of an M3U playlist into categories and
// writes a grouped report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ManuGH/chancat/internal/app"
	"github.com/ManuGH/chancat/internal/category"
	"github.com/ManuGH/chancat/internal/config"
	"github.com/ManuGH/chancat/internal/validate"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks failures caused by how chancat was invoked or configured.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(err, stdout, stderr)
		return exitCode(err)
	}
	return exitOK
}

// reportError prints err as an "Error:" status line. An unreadable playlist
// is part of the run's console output and goes to stdout; everything else
// goes to stderr. Validation failures list one field per line.
func reportError(err error, stdout, stderr io.Writer) {
	w := stderr
	if errors.Is(err, app.ErrSourceUnreadable) {
		w = stdout
	}
	fmt.Fprintf(w, "Error: %v\n", err)

	var ve validate.ValidationError
	if errors.As(err, &ve) && len(ve.Errors()) > 1 {
		for _, fe := range ve.Errors() {
			fmt.Fprintf(w, "  - %s: %s\n", fe.Field, fe.Message)
		}
	}
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrUnknownConfigField),
		errors.Is(err, category.ErrUnknownGroup):
		return exitUsage
	default:
		return exitFailure
	}
}
