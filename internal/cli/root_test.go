package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/hitcount/internal/contention"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "hitcount", cmd.Use)
	assert.Contains(t, cmd.Long, "shared lock")
	assert.False(t, cmd.Flags().HasFlags(), "the command takes no flags")
}

func executeWithConfig(t *testing.T, cfg contention.Config, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommandWithOptions(&RootOptions{
		Config: cfg,
		RunIDs: contention.NewFixedGenerator("test-run"),
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_WritesReportToStderr(t *testing.T) {
	const workers = 5
	stdout, stderr, err := executeWithConfig(t, contention.Config{
		Workers:  workers,
		Duration: 10 * time.Millisecond,
		Backoff:  contention.DefaultBackoff,
	})
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, GetExitCode(err))
	assert.Empty(t, stdout, "nothing goes to stdout")

	scanner := bufio.NewScanner(strings.NewReader(stderr))
	id := 0
	for scanner.Scan() {
		var gotID int
		var hits int64
		_, scanErr := fmt.Sscanf(scanner.Text(), "[%d] hit %d times", &gotID, &hits)
		require.NoError(t, scanErr, "unexpected stderr line %q", scanner.Text())
		assert.Equal(t, id, gotID)
		assert.GreaterOrEqual(t, hits, int64(0))
		id++
	}
	assert.Equal(t, workers, id)
}

func TestRun_NoWorkers(t *testing.T) {
	stdout, stderr, err := executeWithConfig(t, contention.Config{})
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRun_RejectsArguments(t *testing.T) {
	_, _, err := executeWithConfig(t, contention.Config{}, "extra")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestRun_RejectsFlags(t *testing.T) {
	_, _, err := executeWithConfig(t, contention.Config{}, "--workers", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid flags")
}

func TestRun_InvalidConfig(t *testing.T) {
	_, stderr, err := executeWithConfig(t, contention.Config{Workers: -1})
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.NotContains(t, stderr, "hit", "no report on failure")
}

func TestRun_CancelledContextFails(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommandWithOptions(&RootOptions{
		Config: contention.Config{Workers: 3, Duration: 10 * time.Second},
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, contention.IsCancelled(err))
	assert.Contains(t, err.Error(), "run failed")
	assert.NotContains(t, stderr.String(), "] hit ", "no partial report on failure")
	assert.Contains(t, stderr.String(), "run cancelled", "failure is logged as a diagnostic")
}
