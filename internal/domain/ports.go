package domain

import (
	"context"
	"errors"
	"fmt"
)

// Target is the artifact under validation: its resolved path and raw source.
// The source is read once by the orchestrator and is read-only for the whole
// run; no check may mutate it.
type Target struct {
	Path   string
	Source []byte
	Commit string
}

// Check is one concrete test contributing evidence toward an article's
// verdict. Implementations construct their CheckResult themselves; the
// runner only normalizes faults and fills the duration.
type Check interface {
	// Name identifies the check in results and violation strings.
	Name() string
	// Tool returns the logical external tool name, or "" for in-process
	// checks.
	Tool() string
	// Run executes the check against the target. Implementations should
	// honor ctx cancellation when they block.
	Run(ctx context.Context, target *Target) CheckResult
}

// InvokeResult is the captured output of one external analyzer run.
type InvokeResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// ToolInvoker runs an external analyzer binary against the target path.
type ToolInvoker interface {
	Invoke(ctx context.Context, binary string, args ...string) (*InvokeResult, error)
}

// Sentinel errors returned by ToolInvoker implementations.
var (
	// ErrToolNotFound indicates the analyzer binary was not found in PATH.
	ErrToolNotFound = errors.New("tool not found")
	// ErrToolTimeout indicates the analyzer exceeded its configured timeout.
	ErrToolTimeout = errors.New("tool timed out")
)

// ConfigLoader loads the run configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (RunConfig, error)
}

// CommitResolver reports the commit hash of the repository containing a path,
// if any.
type CommitResolver interface {
	CommitHash(path string) (string, error)
}

// TargetError is the single fatal error tier: the target artifact is missing,
// unreadable, or of the wrong kind. It aborts the run before any article is
// evaluated; every other fault is converted into a check status instead.
type TargetError struct {
	Path   string
	Reason string
	Err    error
}

func (e *TargetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("target %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("target %s: %s", e.Path, e.Reason)
}

func (e *TargetError) Unwrap() error { return e.Err }
