// Package toolexec runs external analyzer binaries as subprocesses with
// bounded lifetimes. A binary missing from PATH and a deadline overrun map to
// the domain sentinel errors; everything else the tool reports travels back
// as captured output and exit code.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// killGrace is how long a subprocess gets between context cancellation and a
// hard kill.
const killGrace = 2 * time.Second

// Invoker executes analyzer binaries found in PATH.
type Invoker struct{}

func NewInvoker() *Invoker { return &Invoker{} }

// Invoke runs the binary with the given arguments under the context deadline.
// Non-zero exit codes are not errors: analyzers signal findings through exit
// status, and the caller interprets the captured output.
func (i *Invoker) Invoke(ctx context.Context, binary string, args ...string) (*domain.InvokeResult, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", binary, domain.ErrToolNotFound)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = killGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if ctx.Err() != nil {
		return nil, fmt.Errorf("%q: %w", binary, domain.ErrToolTimeout)
	}

	result := &domain.InvokeResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("run %q: %w", binary, runErr)
	}

	return result, nil
}
