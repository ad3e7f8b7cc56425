package application

import (
	"github.com/artcheck/artcheck/internal/adapters/outbound/tools"
	"github.com/artcheck/artcheck/internal/domain"
	"github.com/artcheck/artcheck/internal/domain/checks"
)

// CheckRegistry maps article ids to their ordered check lists. The mapping is
// built once per run from the active config; articles absent from the
// registry roll up through the evaluator's not-implemented fallback.
type CheckRegistry struct {
	byArticle map[string][]domain.Check
}

// NewCheckRegistry builds a registry from an explicit article-to-check map.
func NewCheckRegistry(byArticle map[string][]domain.Check) *CheckRegistry {
	return &CheckRegistry{byArticle: byArticle}
}

// BuildRegistry assembles the stock article-to-check wiring. Tool-backed
// checks honor the config's binary overrides and timeout; in-process checks
// need neither.
func BuildRegistry(invoker domain.ToolInvoker, cfg domain.RunConfig) *CheckRegistry {
	return &CheckRegistry{
		byArticle: map[string][]domain.Check{
			"ART-01": {
				tools.NewGoVet(invoker, cfg),
				checks.NewUnsafeAssertion(),
			},
			"ART-02": {
				tools.NewStaticcheck(invoker, cfg),
			},
			"ART-03": {
				tools.NewGosec(invoker, cfg),
				checks.NewHardcodedCredential(),
			},
			"ART-04": {
				tools.NewDeadcode(invoker, cfg),
			},
			"ART-05": {
				tools.NewGocyclo(invoker, cfg),
				checks.NewNestingDepth(),
			},
			"ART-06": {
				checks.NewDocComment(),
			},
			"ART-07": {
				checks.NewNamingClarity(),
			},
			"ART-08": {
				checks.NewDiscardedError(),
				checks.NewPanicUsage(),
			},
			"ART-09": {
				tools.NewGofmt(invoker, cfg),
			},
			// ART-10 has no automated checks yet; the evaluator reports it
			// as not implemented.
		},
	}
}

// ChecksFor returns the ordered checks registered for an article, nil when
// none are.
func (r *CheckRegistry) ChecksFor(articleID string) []domain.Check {
	return r.byArticle[articleID]
}
