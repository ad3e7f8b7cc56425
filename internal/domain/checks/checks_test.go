package checks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artcheck/artcheck/internal/domain"
	"github.com/artcheck/artcheck/internal/domain/checks"
)

func target(source string) *domain.Target {
	return &domain.Target{Path: "artifact.go", Source: []byte(source)}
}

const documentedSource = `package sample

// Greeting is the exported greeting.
type Greeting struct{}

// BuildGreeting builds a greeting.
func BuildGreeting() Greeting { return Greeting{} }
`

const undocumentedSource = `package sample

type Greeting struct{}

func BuildGreeting() Greeting { return Greeting{} }
`

const brokenSource = `package sample

func BuildGreeting( {
`

func TestDocComment_AllDocumented(t *testing.T) {
	res := checks.NewDocComment().Run(context.Background(), target(documentedSource))

	assert.Equal(t, domain.StatusPass, res.Status)
	assert.Equal(t, "doc_comments", res.Check)
}

func TestDocComment_AllUndocumented(t *testing.T) {
	res := checks.NewDocComment().Run(context.Background(), target(undocumentedSource))

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, 2, res.Evidence["undocumented"])
}

func TestDocComment_MinorityUndocumentedIsWarning(t *testing.T) {
	source := `package sample

// A is documented.
func A() {}

// B is documented.
func B() {}

func C() {}
`
	res := checks.NewDocComment().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusWarning, res.Status)
}

func TestDocComment_ParseFailureIsError(t *testing.T) {
	res := checks.NewDocComment().Run(context.Background(), target(brokenSource))

	assert.Equal(t, domain.StatusError, res.Status)
	assert.Contains(t, res.Evidence, "parse_error")
}

func TestNamingClarity_SpecificNamesPass(t *testing.T) {
	source := `package sample

// ResolveCommitHash is fine.
func ResolveCommitHash() {}
`
	res := checks.NewNamingClarity().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestNamingClarity_VagueNamesFlagged(t *testing.T) {
	source := `package sample

func Process() {}

func HandleData() {}
`
	res := checks.NewNamingClarity().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusWarning, res.Status)
	assert.ElementsMatch(t, []string{"Process", "HandleData"}, res.Evidence["names"])
}

func TestNamingClarity_FallbackOnBrokenSource(t *testing.T) {
	source := `package sample

func Process() {
	if {
}
`
	res := checks.NewNamingClarity().Run(context.Background(), target(source))

	require.Contains(t, res.Evidence, "fallback")
	assert.Equal(t, domain.StatusWarning, res.Status)
}

func TestDiscardedError_BlankAssignmentFails(t *testing.T) {
	source := `package sample

import "os"

func remove() {
	_ = os.Remove("tmp")
}
`
	res := checks.NewDiscardedError().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, 1, res.Evidence["discarded"])
}

func TestDiscardedError_HandledErrorPasses(t *testing.T) {
	source := `package sample

import "os"

func remove() error {
	if err := os.Remove("tmp"); err != nil {
		return err
	}
	return nil
}
`
	res := checks.NewDiscardedError().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestDiscardedError_FallbackOnBrokenSource(t *testing.T) {
	source := "package sample\n\nfunc broken( {\n\t_ = doThing()\n}\n"
	res := checks.NewDiscardedError().Run(context.Background(), target(source))

	require.Contains(t, res.Evidence, "fallback")
	assert.Equal(t, domain.StatusFail, res.Status)
}

func TestPanicUsage_SinglePanicIsWarning(t *testing.T) {
	source := `package sample

func mustParse() {
	panic("no")
}
`
	res := checks.NewPanicUsage().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusWarning, res.Status)
}

func TestPanicUsage_PanicInMainAllowed(t *testing.T) {
	source := `package main

func main() {
	panic("fatal startup")
}
`
	res := checks.NewPanicUsage().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestUnsafeAssertion_BareAssertionFails(t *testing.T) {
	source := `package sample

func cast(v any) string {
	return v.(string)
}
`
	res := checks.NewUnsafeAssertion().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusFail, res.Status)
}

func TestUnsafeAssertion_CommaOkAndTypeSwitchPass(t *testing.T) {
	source := `package sample

func cast(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	switch x := v.(type) {
	case string:
		return x
	}
	return ""
}
`
	res := checks.NewUnsafeAssertion().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestNestingDepth_FlatFunctionPasses(t *testing.T) {
	source := `package sample

func flat(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
`
	res := checks.NewNestingDepth().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestNestingDepth_DeepNestingFails(t *testing.T) {
	source := `package sample

func deep(a, b, c, d, e, f bool) {
	if a {
		if b {
			if c {
				if d {
					if e {
						if f {
							return
						}
					}
				}
			}
		}
	}
}
`
	res := checks.NewNestingDepth().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusFail, res.Status)
}

func TestHardcodedCredential_LiteralSecretFails(t *testing.T) {
	source := `package sample

var apiKey = "sk-live-abcdef123456"

const password = "hunter2hunter2"
`
	res := checks.NewHardcodedCredential().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusFail, res.Status)
}

func TestHardcodedCredential_CleanSourcePasses(t *testing.T) {
	source := `package sample

import "os"

func secret() string {
	return os.Getenv("API_KEY")
}
`
	res := checks.NewHardcodedCredential().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestHardcodedCredential_WorksOnBrokenSource(t *testing.T) {
	source := "package sample\n\nfunc broken( {\nvar password = \"hunter2hunter2\"\n"
	res := checks.NewHardcodedCredential().Run(context.Background(), target(source))

	assert.Equal(t, domain.StatusFail, res.Status)
}
