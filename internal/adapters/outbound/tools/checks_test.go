package tools_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artcheck/artcheck/internal/adapters/outbound/tools"
	"github.com/artcheck/artcheck/internal/domain"
)

// stubInvoker returns canned results without spawning processes.
type stubInvoker struct {
	result *domain.InvokeResult
	err    error
	binary string
	args   []string
}

func (s *stubInvoker) Invoke(_ context.Context, binary string, args ...string) (*domain.InvokeResult, error) {
	s.binary = binary
	s.args = args
	return s.result, s.err
}

func run(t *testing.T, check domain.Check, invoker *stubInvoker) domain.CheckResult {
	t.Helper()
	return check.Run(context.Background(), &domain.Target{Path: "/tmp/artifact.go", Source: []byte("package x")})
}

func TestGoVet_CleanRunPasses(t *testing.T) {
	inv := &stubInvoker{result: &domain.InvokeResult{}}
	check := tools.NewGoVet(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusPass, res.Status)
	assert.Equal(t, "govet", res.Tool)
	assert.Equal(t, "go", inv.binary)
	assert.Equal(t, []string{"vet", "-json", "/tmp/artifact.go"}, inv.args)
}

func TestGoVet_DiagnosticsFail(t *testing.T) {
	report := `# command-line-arguments
{
	"command-line-arguments": {
		"printf": [
			{"posn": "/tmp/artifact.go:10:2", "message": "Sprintf format %d has arg of wrong type"}
		]
	}
}`
	inv := &stubInvoker{result: &domain.InvokeResult{Stderr: []byte(report), ExitCode: 1}}
	check := tools.NewGoVet(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, 1, res.Evidence["diagnostics"])
}

func TestGoVet_UnparseableOutputIsWarning(t *testing.T) {
	inv := &stubInvoker{result: &domain.InvokeResult{Stderr: []byte("not json at all"), ExitCode: 1}}
	check := tools.NewGoVet(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusWarning, res.Status)
	assert.Contains(t, res.Evidence, "raw_output")
	assert.Contains(t, res.Evidence["raw_output"], "not json")
}

func TestStaticcheck_IssuesPerLine(t *testing.T) {
	out := `{"code":"S1000","severity":"error","location":{"file":"/tmp/artifact.go","line":4},"message":"should use a simple channel send"}
{"code":"U1000","severity":"error","location":{"file":"/tmp/artifact.go","line":9},"message":"func unused is unused"}`
	inv := &stubInvoker{result: &domain.InvokeResult{Stdout: []byte(out), ExitCode: 1}}
	check := tools.NewStaticcheck(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, 2, res.Evidence["issues"])
}

func TestStaticcheck_NoOutputPasses(t *testing.T) {
	inv := &stubInvoker{result: &domain.InvokeResult{}}
	check := tools.NewStaticcheck(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestGosec_SevereFindingsFail(t *testing.T) {
	out := `{"Issues":[{"severity":"HIGH","rule_id":"G401","details":"Use of weak cryptographic primitive","file":"/tmp/artifact.go","line":"12"}]}`
	inv := &stubInvoker{result: &domain.InvokeResult{Stdout: []byte(out), ExitCode: 1}}
	check := tools.NewGosec(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusFail, res.Status)
}

func TestGosec_OnlyLowFindingsWarn(t *testing.T) {
	out := `{"Issues":[{"severity":"LOW","rule_id":"G104","details":"Errors unhandled","file":"/tmp/artifact.go","line":"7"}]}`
	inv := &stubInvoker{result: &domain.InvokeResult{Stdout: []byte(out), ExitCode: 1}}
	check := tools.NewGosec(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusWarning, res.Status)
}

func TestDeadcode_UnreachableFunctionsFail(t *testing.T) {
	out := "/tmp/artifact.go:20:6: unreachable func: leftover\n"
	inv := &stubInvoker{result: &domain.InvokeResult{Stdout: []byte(out)}}
	check := tools.NewDeadcode(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, 1, res.Evidence["unreachable"])
}

func TestGocyclo_OffendersFail(t *testing.T) {
	out := "15 sample deepFunc /tmp/artifact.go:10:1\n"
	inv := &stubInvoker{result: &domain.InvokeResult{Stdout: []byte(out), ExitCode: 1}}
	check := tools.NewGocyclo(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusFail, res.Status)
}

func TestGofmt_UnformattedFileFails(t *testing.T) {
	inv := &stubInvoker{result: &domain.InvokeResult{Stdout: []byte("/tmp/artifact.go\n")}}
	check := tools.NewGofmt(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusFail, res.Status)
}

func TestGofmt_CleanFilePasses(t *testing.T) {
	inv := &stubInvoker{result: &domain.InvokeResult{}}
	check := tools.NewGofmt(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestToolCheck_MissingBinaryIsError(t *testing.T) {
	inv := &stubInvoker{err: fmt.Errorf("%q: %w", "staticcheck", domain.ErrToolNotFound)}
	check := tools.NewStaticcheck(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	require.Equal(t, domain.StatusError, res.Status)
	assert.Contains(t, res.Detail, "staticcheck not found in PATH")
	assert.Contains(t, res.Detail, "go install")
}

func TestToolCheck_TimeoutIsError(t *testing.T) {
	inv := &stubInvoker{err: fmt.Errorf("%q: %w", "gosec", domain.ErrToolTimeout)}
	check := tools.NewGosec(inv, domain.DefaultRunConfig())

	res := run(t, check, inv)

	require.Equal(t, domain.StatusError, res.Status)
	assert.Equal(t, "timed out", res.Detail)
	assert.Equal(t, domain.DefaultCheckTimeout.String(), res.Evidence["timeout"])
}

func TestToolCheck_BinaryOverrideRespected(t *testing.T) {
	cfg := domain.DefaultRunConfig()
	cfg.ToolOverrides = map[string]string{"gocyclo": "/opt/bin/gocyclo"}
	inv := &stubInvoker{result: &domain.InvokeResult{}}
	check := tools.NewGocyclo(inv, cfg)

	run(t, check, inv)

	assert.Equal(t, "/opt/bin/gocyclo", inv.binary)
}
