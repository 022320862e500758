package hashcat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/unclesp1d3r/hashcatgui/appstate"
)

// DefaultQueryTimeout bounds metadata queries when no timeout is configured.
const DefaultQueryTimeout = 10 * time.Second

// QueryError reports a failed metadata query in the form shown to the user.
type QueryError struct {
	Path     string   // Hashcat binary that was executed
	Args     []string // Arguments passed to it, including --quiet
	ExitCode int      // Process exit code, or -1 if it did not exit normally
	Err      error    // Underlying cause
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("Error executing %s %s: %v", e.Path, strings.Join(e.Args, " "), e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Runner executes short-lived hashcat invocations that print metadata.
type Runner struct {
	Path    string        // Path to the hashcat binary
	Timeout time.Duration // Per-query timeout; zero means DefaultQueryTimeout
}

// NewRunner returns a Runner for the given binary and timeout.
func NewRunner(path string, timeout time.Duration) *Runner {
	return &Runner{Path: path, Timeout: timeout}
}

// Query runs hashcat with args plus --quiet and returns its standard output.
// The process is killed when the timeout elapses or ctx is cancelled.
func (r *Runner) Query(ctx context.Context, args ...string) (string, error) {
	args = append(append([]string{}, args...), FlagQuiet)

	if strings.TrimSpace(r.Path) == "" {
		return "", &QueryError{Path: r.Path, Args: args, ExitCode: -1, Err: ErrNoHashcatPath}
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.Path, args...) //nolint:gosec // binary path is user configured
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	appstate.Logger.Debug("Running hashcat query", "command", cmd.String())

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	qerr := &QueryError{Path: r.Path, Args: args, ExitCode: -1, Err: err}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		qerr.Err = fmt.Errorf("%w after %s", ErrQueryTimeout, timeout)
	case cmd.ProcessState != nil:
		qerr.ExitCode = cmd.ProcessState.ExitCode()
		info := ClassifyExitCode(qerr.ExitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			qerr.Err = fmt.Errorf("exit code %d (%s): %s", qerr.ExitCode, info.Status, msg)
		} else {
			qerr.Err = fmt.Errorf("exit code %d (%s)", qerr.ExitCode, info.Status)
		}
	}

	return "", qerr
}

// QueryResult carries the outcome of an asynchronous query.
type QueryResult struct {
	Output string
	Err    error
}

// QueryAsync runs Query on a separate goroutine. The returned channel receives exactly one result.
func (r *Runner) QueryAsync(ctx context.Context, args ...string) <-chan QueryResult {
	ch := make(chan QueryResult, 1)

	go func() {
		out, err := r.Query(ctx, args...)
		ch <- QueryResult{Output: out, Err: err}
	}()

	return ch
}

// Version returns the trimmed output of `hashcat --version`.
func (r *Runner) Version(ctx context.Context) (string, error) {
	out, err := r.Query(ctx, FlagVersion)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.NewReplacer("\r", "", "\n", "").Replace(out)), nil
}

// Eula returns the license text printed by `hashcat --eula`.
func (r *Runner) Eula(ctx context.Context) (string, error) {
	return r.Query(ctx, FlagEula)
}

// ExampleHashes queries and parses the hash-mode catalog.
func (r *Runner) ExampleHashes(ctx context.Context) (Catalog, error) {
	out, err := r.Query(ctx, FlagExampleHashes, FlagMachineReadable)
	if err != nil {
		return nil, err
	}

	return ParseCatalog([]byte(out))
}
