// Package application wires the article catalog, check execution, and result
// aggregation into the validation use case. It depends only on the domain
// layer; adapters inject tool invokers, config loaders, and commit resolvers.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// CheckRunner executes single checks under a per-check timeout. It never
// returns an error: every fault a check can produce, including a panic,
// becomes an ERROR-status result so sibling checks are unaffected.
type CheckRunner struct {
	timeout time.Duration
}

func NewCheckRunner(timeout time.Duration) *CheckRunner {
	if timeout <= 0 {
		timeout = domain.DefaultCheckTimeout
	}
	return &CheckRunner{timeout: timeout}
}

// Run executes one check with its own deadline and returns its result with
// the measured wall-clock duration filled in.
func (r *CheckRunner) Run(ctx context.Context, check domain.Check, target *domain.Target) (result domain.CheckResult) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			result = domain.CheckResult{
				Check:  check.Name(),
				Tool:   check.Tool(),
				Status: domain.StatusError,
				Detail: "check panicked",
				Evidence: map[string]any{
					"panic": fmt.Sprintf("%v", rec),
				},
			}
		}
		result.Duration = time.Since(start)
	}()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return check.Run(ctx, target)
}
