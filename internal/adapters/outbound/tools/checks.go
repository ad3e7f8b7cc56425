package tools

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/artcheck/artcheck/internal/domain"
)

// cyclomaticThreshold is the gocyclo cutoff above which a function is an
// offender.
const cyclomaticThreshold = 10

// NewGoVet runs `go vet -json` over the artifact.
func NewGoVet(invoker domain.ToolInvoker, cfg domain.RunConfig) domain.Check {
	return &toolCheck{
		name:    "govet_diagnostics",
		tool:    "govet",
		binary:  binaryFor(cfg, "govet", "go"),
		timeout: cfg.CheckTimeout,
		invoker: invoker,
		args: func(t *domain.Target) []string {
			return []string{"vet", "-json", t.Path}
		},
		parse: parseGoVet,
	}
}

// parseGoVet reads the -json vet report: a JSON object per package mapping
// analyzer names to diagnostic lists, with `#` package headers interleaved on
// stderr.
func parseGoVet(res *domain.InvokeResult) (domain.Status, string, map[string]any, error) {
	payload := stripHashLines(res.Stderr)
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = stripHashLines(res.Stdout)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		if res.ExitCode != 0 {
			return "", "", nil, fmt.Errorf("exit code %d with no report", res.ExitCode)
		}
		return domain.StatusPass, "go vet reports no diagnostics", map[string]any{"diagnostics": 0}, nil
	}

	var report map[string]map[string][]struct {
		Posn    string `json:"posn"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &report); err != nil {
		return "", "", nil, err
	}

	var messages []string
	for _, analyzers := range report {
		for analyzer, diags := range analyzers {
			for _, d := range diags {
				messages = append(messages, fmt.Sprintf("%s: %s (%s)", d.Posn, d.Message, analyzer))
			}
		}
	}

	evidence := map[string]any{"diagnostics": len(messages)}
	if len(messages) > 0 {
		evidence["messages"] = messages
		return domain.StatusFail, fmt.Sprintf("go vet reports %d diagnostics", len(messages)), evidence, nil
	}
	return domain.StatusPass, "go vet reports no diagnostics", evidence, nil
}

// NewStaticcheck runs staticcheck with JSON-lines output.
func NewStaticcheck(invoker domain.ToolInvoker, cfg domain.RunConfig) domain.Check {
	return &toolCheck{
		name:    "staticcheck_issues",
		tool:    "staticcheck",
		binary:  binaryFor(cfg, "staticcheck", "staticcheck"),
		timeout: cfg.CheckTimeout,
		invoker: invoker,
		args: func(t *domain.Target) []string {
			return []string{"-f", "json", t.Path}
		},
		parse: parseStaticcheck,
	}
}

func parseStaticcheck(res *domain.InvokeResult) (domain.Status, string, map[string]any, error) {
	type issue struct {
		Code     string `json:"code"`
		Severity string `json:"severity"`
		Message  string `json:"message"`
		Location struct {
			File string `json:"file"`
			Line int    `json:"line"`
		} `json:"location"`
	}

	var issues []string
	scanner := bufio.NewScanner(bytes.NewReader(res.Stdout))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var is issue
		if err := json.Unmarshal(line, &is); err != nil {
			return "", "", nil, err
		}
		issues = append(issues, fmt.Sprintf("%s:%d: %s (%s)", is.Location.File, is.Location.Line, is.Message, is.Code))
	}
	if err := scanner.Err(); err != nil {
		return "", "", nil, err
	}

	evidence := map[string]any{"issues": len(issues)}
	if len(issues) > 0 {
		evidence["messages"] = issues
		return domain.StatusFail, fmt.Sprintf("staticcheck reports %d issues", len(issues)), evidence, nil
	}
	return domain.StatusPass, "staticcheck reports no issues", evidence, nil
}

// NewGosec runs gosec with JSON output.
func NewGosec(invoker domain.ToolInvoker, cfg domain.RunConfig) domain.Check {
	return &toolCheck{
		name:    "gosec_findings",
		tool:    "gosec",
		binary:  binaryFor(cfg, "gosec", "gosec"),
		timeout: cfg.CheckTimeout,
		invoker: invoker,
		args: func(t *domain.Target) []string {
			return []string{"-quiet", "-fmt=json", t.Path}
		},
		parse: parseGosec,
	}
}

// parseGosec distinguishes finding severity: high or medium findings fail the
// check, a report of only low findings is a warning.
func parseGosec(res *domain.InvokeResult) (domain.Status, string, map[string]any, error) {
	payload := bytes.TrimSpace(res.Stdout)
	if len(payload) == 0 {
		if res.ExitCode != 0 {
			return "", "", nil, fmt.Errorf("exit code %d with no report", res.ExitCode)
		}
		return domain.StatusPass, "gosec reports no findings", map[string]any{"findings": 0}, nil
	}

	var report struct {
		Issues []struct {
			Severity string `json:"severity"`
			RuleID   string `json:"rule_id"`
			Details  string `json:"details"`
			File     string `json:"file"`
			Line     string `json:"line"`
		} `json:"Issues"`
	}
	if err := json.Unmarshal(payload, &report); err != nil {
		return "", "", nil, err
	}

	var findings []string
	severe := 0
	for _, is := range report.Issues {
		findings = append(findings, fmt.Sprintf("%s:%s: %s (%s, %s)", is.File, is.Line, is.Details, is.RuleID, is.Severity))
		if !strings.EqualFold(is.Severity, "LOW") {
			severe++
		}
	}

	evidence := map[string]any{"findings": len(findings)}
	switch {
	case len(findings) == 0:
		return domain.StatusPass, "gosec reports no findings", evidence, nil
	case severe > 0:
		evidence["messages"] = findings
		return domain.StatusFail, fmt.Sprintf("gosec reports %d findings (%d medium or higher)", len(findings), severe), evidence, nil
	default:
		evidence["messages"] = findings
		return domain.StatusWarning, fmt.Sprintf("gosec reports %d low-severity findings", len(findings)), evidence, nil
	}
}

// NewDeadcode runs the deadcode analyzer, which emits one plain-text line per
// unreachable function.
func NewDeadcode(invoker domain.ToolInvoker, cfg domain.RunConfig) domain.Check {
	return &toolCheck{
		name:    "deadcode_scan",
		tool:    "deadcode",
		binary:  binaryFor(cfg, "deadcode", "deadcode"),
		timeout: cfg.CheckTimeout,
		invoker: invoker,
		args: func(t *domain.Target) []string {
			return []string{t.Path}
		},
		parse: parseDeadcode,
	}
}

func parseDeadcode(res *domain.InvokeResult) (domain.Status, string, map[string]any, error) {
	if res.ExitCode != 0 && len(bytes.TrimSpace(res.Stdout)) == 0 {
		return "", "", nil, fmt.Errorf("exit code %d: %s", res.ExitCode, bytes.TrimSpace(res.Stderr))
	}

	unreachable := nonEmptyLines(res.Stdout)
	evidence := map[string]any{"unreachable": len(unreachable)}
	if len(unreachable) > 0 {
		evidence["functions"] = unreachable
		return domain.StatusFail, fmt.Sprintf("%d unreachable functions", len(unreachable)), evidence, nil
	}
	return domain.StatusPass, "no unreachable functions", evidence, nil
}

// NewGocyclo runs gocyclo over the artifact, reporting functions above the
// cyclomatic threshold.
func NewGocyclo(invoker domain.ToolInvoker, cfg domain.RunConfig) domain.Check {
	return &toolCheck{
		name:    "cyclomatic_complexity",
		tool:    "gocyclo",
		binary:  binaryFor(cfg, "gocyclo", "gocyclo"),
		timeout: cfg.CheckTimeout,
		invoker: invoker,
		args: func(t *domain.Target) []string {
			return []string{"-over", fmt.Sprintf("%d", cyclomaticThreshold), t.Path}
		},
		parse: parseGocyclo,
	}
}

func parseGocyclo(res *domain.InvokeResult) (domain.Status, string, map[string]any, error) {
	offenders := nonEmptyLines(res.Stdout)
	for _, line := range offenders {
		// "<complexity> <package> <function> <file>:<line>:<col>"
		if len(strings.Fields(line)) < 4 {
			return "", "", nil, fmt.Errorf("unexpected gocyclo line %q", line)
		}
	}

	evidence := map[string]any{
		"offenders": len(offenders),
		"threshold": cyclomaticThreshold,
	}
	if len(offenders) > 0 {
		evidence["functions"] = offenders
		return domain.StatusFail,
			fmt.Sprintf("%d functions exceed cyclomatic complexity %d", len(offenders), cyclomaticThreshold), evidence, nil
	}
	return domain.StatusPass,
		fmt.Sprintf("all functions within cyclomatic complexity %d", cyclomaticThreshold), evidence, nil
}

// NewGofmt runs `gofmt -l`, which prints the file path when formatting
// differs from canonical.
func NewGofmt(invoker domain.ToolInvoker, cfg domain.RunConfig) domain.Check {
	return &toolCheck{
		name:    "gofmt_canonical",
		tool:    "gofmt",
		binary:  binaryFor(cfg, "gofmt", "gofmt"),
		timeout: cfg.CheckTimeout,
		invoker: invoker,
		args: func(t *domain.Target) []string {
			return []string{"-l", t.Path}
		},
		parse: parseGofmt,
	}
}

func parseGofmt(res *domain.InvokeResult) (domain.Status, string, map[string]any, error) {
	if res.ExitCode != 0 {
		return "", "", nil, fmt.Errorf("exit code %d: %s", res.ExitCode, bytes.TrimSpace(res.Stderr))
	}

	unformatted := nonEmptyLines(res.Stdout)
	evidence := map[string]any{"unformatted": len(unformatted)}
	if len(unformatted) > 0 {
		evidence["files"] = unformatted
		return domain.StatusFail, "artifact is not gofmt-formatted", evidence, nil
	}
	return domain.StatusPass, "artifact is gofmt-formatted", evidence, nil
}

// stripHashLines removes `# package` header lines that go vet interleaves
// with its JSON report.
func stripHashLines(b []byte) []byte {
	var out bytes.Buffer
	for _, line := range bytes.Split(b, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("#")) {
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func nonEmptyLines(b []byte) []string {
	var out []string
	for _, line := range strings.Split(string(b), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
