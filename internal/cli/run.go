package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/hitcount/internal/contention"
)

func runHarness(opts *RootOptions, cmd *cobra.Command) error {
	// Only failures are logged: on success stderr carries the report alone.
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = contention.UUIDv7Generator{}
	}
	h := contention.New(opts.Config,
		contention.WithLogger(logger),
		contention.WithRunIDGenerator(runIDs),
	)

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Error("received signal, stopping run", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	rep, err := h.Run(ctx)
	if err != nil {
		if contention.IsConfigError(err) {
			return WrapExitError(ExitCommandError, "invalid configuration", err)
		}
		return WrapExitError(ExitFailure, "run failed", err)
	}

	if err := rep.WriteText(cmd.ErrOrStderr()); err != nil {
		return WrapExitError(ExitFailure, "failed to write report", err)
	}
	return nil
}
