package application

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/artcheck/artcheck/internal/domain"
)

// RuleEvaluator turns articles into RuleAssessments by running their
// registered checks and rolling the statuses up. Parallel evaluation
// schedules every (article, check) pair onto one bounded pool and writes
// each result into its own slot, so the parallel and sequential modes
// produce identical reports.
type RuleEvaluator struct {
	registry *CheckRegistry
	runner   *CheckRunner
	strict   bool
	policy   domain.RollupPolicy
}

func NewRuleEvaluator(registry *CheckRegistry, runner *CheckRunner, cfg domain.RunConfig) *RuleEvaluator {
	return &RuleEvaluator{
		registry: registry,
		runner:   runner,
		strict:   cfg.StrictMode,
		policy:   cfg.Rollup,
	}
}

// Evaluate assesses a single article, running its checks in registration
// order.
func (e *RuleEvaluator) Evaluate(ctx context.Context, rule domain.Rule, target *domain.Target) domain.RuleAssessment {
	start := time.Now()

	checkList := e.registry.ChecksFor(rule.ID)

	var results []domain.CheckResult
	if len(checkList) == 0 {
		results = []domain.CheckResult{notImplementedResult(rule)}
	} else {
		results = make([]domain.CheckResult, 0, len(checkList))
		for _, check := range checkList {
			results = append(results, e.runner.Run(ctx, check, target))
		}
	}

	return e.assess(rule, results, time.Since(start))
}

// EvaluateAll assesses the given rules, preserving their order in the output.
// With workers > 1 every check of every article is scheduled onto one
// errgroup pool bounded to that size; each slot of the per-article result
// slices is written by exactly one goroutine, and rollup happens after the
// pool drains. workers == 1 degenerates to strictly sequential execution.
func (e *RuleEvaluator) EvaluateAll(ctx context.Context, rules []domain.Rule, target *domain.Target, workers int) []domain.RuleAssessment {
	if workers < 1 {
		workers = 1
	}

	assessments := make([]domain.RuleAssessment, len(rules))

	if workers == 1 {
		for i, rule := range rules {
			assessments[i] = e.Evaluate(ctx, rule, target)
		}
		return assessments
	}

	start := time.Now()
	slots := make([][]domain.CheckResult, len(rules))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for ri, rule := range rules {
		checkList := e.registry.ChecksFor(rule.ID)
		if len(checkList) == 0 {
			slots[ri] = []domain.CheckResult{notImplementedResult(rule)}
			continue
		}
		slots[ri] = make([]domain.CheckResult, len(checkList))
		for ci, check := range checkList {
			g.Go(func() error {
				slots[ri][ci] = e.runner.Run(ctx, check, target)
				return nil
			})
		}
	}
	// Workers never return errors; faults are statuses inside the results.
	_ = g.Wait()

	elapsed := time.Since(start)
	for i, rule := range rules {
		assessments[i] = e.assess(rule, slots[i], elapsed)
	}
	return assessments
}

func (e *RuleEvaluator) assess(rule domain.Rule, results []domain.CheckResult, elapsed time.Duration) domain.RuleAssessment {
	status, score := domain.RollUp(results, e.strict, e.policy)
	return domain.RuleAssessment{
		ArticleID:  rule.ID,
		Title:      rule.Title,
		Status:     status,
		Score:      score,
		Duration:   elapsed,
		Checks:     results,
		Violations: domain.Violations(results),
	}
}

// notImplementedResult stands in for articles with no registered checks.
// WARNING rather than ERROR: the catalog admits the article, the engine just
// cannot measure it yet.
func notImplementedResult(rule domain.Rule) domain.CheckResult {
	return domain.CheckResult{
		Check:  "not_implemented",
		Status: domain.StatusWarning,
		Detail: rule.Title + " has no automated checks yet",
		Evidence: map[string]any{
			"article": rule.ID,
		},
	}
}
