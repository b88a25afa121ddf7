// Command hitcount runs the mutex contention harness with its reference
// configuration and prints per-worker hit counts to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/hitcount/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
