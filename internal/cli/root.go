package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/hitcount/internal/contention"
)

// RootOptions holds the run parameters of the root command.
//
// None of these are exposed as flags: the program takes no arguments and
// always runs the reference configuration. Tests construct RootOptions
// directly to run smaller configurations.
type RootOptions struct {
	Config contention.Config

	// RunIDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs contention.RunIDGenerator
}

// NewRootCommand creates the root command for the hitcount CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{Config: contention.DefaultConfig()})
}

// NewRootCommandWithOptions creates the root command with explicit options.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hitcount",
		Short: "Mutex contention harness",
		Long: `Run a fixed pool of workers against one shared lock and report how often
each worker acquired it.

All workers are released together, increment their own counter under the
shared lock for a fixed window, and are then stopped and joined. The report
is written to stderr as one "[id] hit N times" line per worker.

Hit counts depend on wall-clock timing and scheduling and differ between runs.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarness(opts, cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	return cmd
}
