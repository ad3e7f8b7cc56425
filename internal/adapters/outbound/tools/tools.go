// Package tools adapts external Go analyzers (go vet, staticcheck, gosec,
// deadcode, gocyclo, gofmt) into catalog checks. Each check shells out through
// a ToolInvoker, parses the analyzer's output, and degrades gracefully: a
// missing binary or a timeout is an ERROR for that check only, and output the
// parser cannot read is a WARNING carrying the raw text, since the tool did
// run.
package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// rawEvidenceLimit caps how much raw analyzer output is kept in evidence when
// parsing fails.
const rawEvidenceLimit = 512

// installHints tells users how to get a missing analyzer, keyed by logical
// tool name.
var installHints = map[string]string{
	"govet":       "install the Go toolchain from https://go.dev/dl",
	"staticcheck": "go install honnef.co/go/tools/cmd/staticcheck@latest",
	"gosec":       "go install github.com/securego/gosec/v2/cmd/gosec@latest",
	"deadcode":    "go install golang.org/x/tools/cmd/deadcode@latest",
	"gocyclo":     "go install github.com/fzipp/gocyclo/cmd/gocyclo@latest",
	"gofmt":       "install the Go toolchain from https://go.dev/dl",
}

// binaryFor resolves the binary for a logical tool, preferring a configured
// override. The fallback differs from the tool name only for govet, which
// runs through the go binary.
func binaryFor(cfg domain.RunConfig, tool, fallback string) string {
	if b, ok := cfg.ToolOverrides[tool]; ok {
		return b
	}
	return fallback
}

// parseFunc interprets one analyzer's captured output. A returned error means
// the output was unreadable, not that the artifact has findings.
type parseFunc func(res *domain.InvokeResult) (domain.Status, string, map[string]any, error)

// toolCheck is the shared shape of every analyzer-backed check.
type toolCheck struct {
	name    string
	tool    string
	binary  string
	timeout time.Duration
	invoker domain.ToolInvoker
	args    func(target *domain.Target) []string
	parse   parseFunc
}

func (c *toolCheck) Name() string { return c.name }
func (c *toolCheck) Tool() string { return c.tool }

func (c *toolCheck) Run(ctx context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	res, err := c.invoker.Invoke(ctx, c.binary, c.args(target)...)
	if err != nil {
		return c.invokeError(err, start)
	}

	status, detail, evidence, perr := c.parse(res)
	if perr != nil {
		return domain.CheckResult{
			Check:  c.name,
			Tool:   c.tool,
			Status: domain.StatusWarning,
			Detail: fmt.Sprintf("%s output could not be parsed", c.tool),
			Evidence: map[string]any{
				"parse_error": perr.Error(),
				"raw_output":  truncate(res.Stdout, res.Stderr),
			},
			Duration: time.Since(start),
		}
	}

	return domain.CheckResult{
		Check:    c.name,
		Tool:     c.tool,
		Status:   status,
		Detail:   detail,
		Evidence: evidence,
		Duration: time.Since(start),
	}
}

func (c *toolCheck) invokeError(err error, start time.Time) domain.CheckResult {
	switch {
	case errors.Is(err, domain.ErrToolNotFound):
		return domain.CheckResult{
			Check:  c.name,
			Tool:   c.tool,
			Status: domain.StatusError,
			Detail: fmt.Sprintf("%s not found in PATH (%s)", c.binary, installHints[c.tool]),
			Evidence: map[string]any{
				"binary": c.binary,
			},
			Duration: time.Since(start),
		}
	case errors.Is(err, domain.ErrToolTimeout):
		return domain.CheckResult{
			Check:  c.name,
			Tool:   c.tool,
			Status: domain.StatusError,
			Detail: "timed out",
			Evidence: map[string]any{
				"timeout": c.timeout.String(),
			},
			Duration: time.Since(start),
		}
	default:
		return domain.CheckResult{
			Check:    c.name,
			Tool:     c.tool,
			Status:   domain.StatusError,
			Detail:   fmt.Sprintf("%s failed to run", c.tool),
			Evidence: map[string]any{"error": err.Error()},
			Duration: time.Since(start),
		}
	}
}

// truncate joins stdout and stderr and caps the result for evidence payloads.
func truncate(stdout, stderr []byte) string {
	combined := string(stdout)
	if len(stderr) > 0 {
		if combined != "" {
			combined += "\n"
		}
		combined += string(stderr)
	}
	if len(combined) > rawEvidenceLimit {
		combined = combined[:rawEvidenceLimit] + "..."
	}
	return combined
}
