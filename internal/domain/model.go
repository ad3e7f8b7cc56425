package domain

import (
	"sort"
	"time"
)

// Status is the outcome of a single check or of a rolled-up article.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusWarning Status = "WARNING"
	StatusFail    Status = "FAIL"
	StatusError   Status = "ERROR"
)

// Verdict is the overall outcome of a validation run.
type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// CheckResult captures the outcome of one check execution. It is created once
// by the check runner and never mutated afterwards.
type CheckResult struct {
	Check    string         `json:"check"`
	Tool     string         `json:"tool,omitempty"`
	Status   Status         `json:"status"`
	Detail   string         `json:"detail"`
	Evidence map[string]any `json:"evidence,omitempty"`
	Duration time.Duration  `json:"duration_ns"`
}

// RuleAssessment is the rolled-up result of evaluating one article.
type RuleAssessment struct {
	ArticleID  string        `json:"article_id"`
	Title      string        `json:"title"`
	Status     Status        `json:"status"`
	Score      float64       `json:"score"`
	Duration   time.Duration `json:"duration_ns"`
	Checks     []CheckResult `json:"checks"`
	Violations []string      `json:"violations,omitempty"`
}

// ValidationSummary aggregates all article assessments of a run. It is derived
// purely from the assessment list and carries no independent state.
type ValidationSummary struct {
	TotalArticles   int           `json:"total_articles"`
	PassedArticles  int           `json:"passed_articles"`
	FailedArticles  int           `json:"failed_articles"`
	WarningArticles int           `json:"warning_articles"`
	OverallScore    float64       `json:"overall_score"`
	TotalDuration   time.Duration `json:"total_duration_ns"`
	ToolsUsed       []string      `json:"tools_used"`
}

// TargetRef identifies the artifact under validation.
type TargetRef struct {
	Path   string `json:"path"`
	Commit string `json:"commit,omitempty"`
}

// ValidationReport is the terminal output of a run. It is a plain structured
// value; serialization and exit codes are the caller's concern.
type ValidationReport struct {
	RunID          string            `json:"run_id"`
	Target         TargetRef         `json:"target"`
	CatalogVersion string            `json:"catalog_version"`
	Verdict        Verdict           `json:"verdict"`
	Summary        ValidationSummary `json:"summary"`
	Assessments    []RuleAssessment  `json:"assessments"`
	Remediation    []RemediationItem `json:"remediation,omitempty"`
	StartedAt      time.Time         `json:"started_at"`
	Elapsed        time.Duration     `json:"elapsed_ns"`
}

// Aggregate combines article assessments into a summary. Articles that ended
// in ERROR count as failed: a run cannot assert compliance it could not
// evaluate. The weighted overall score is Σ(score×weight)/Σ(weight) over the
// assessed articles, 0 when the weight sum is zero.
func Aggregate(catalog Catalog, assessments []RuleAssessment) ValidationSummary {
	summary := ValidationSummary{TotalArticles: len(assessments)}

	var weighted, totalWeight float64
	toolSet := make(map[string]bool)

	for _, a := range assessments {
		switch a.Status {
		case StatusPass:
			summary.PassedArticles++
		case StatusWarning:
			summary.WarningArticles++
		default: // FAIL and ERROR
			summary.FailedArticles++
		}

		weight := catalog.Weight(a.ArticleID)
		weighted += a.Score * weight
		totalWeight += weight
		summary.TotalDuration += a.Duration

		for _, c := range a.Checks {
			if c.Tool != "" {
				toolSet[c.Tool] = true
			}
		}
	}

	if totalWeight > 0 {
		summary.OverallScore = weighted / totalWeight
	}

	summary.ToolsUsed = make([]string, 0, len(toolSet))
	for tool := range toolSet {
		summary.ToolsUsed = append(summary.ToolsUsed, tool)
	}
	sort.Strings(summary.ToolsUsed)

	return summary
}

// VerdictFor returns PASS iff no article failed. WARNING articles do not fail
// a run; in strict mode the rollup has already escalated them to FAIL.
func VerdictFor(summary ValidationSummary) Verdict {
	if summary.FailedArticles == 0 {
		return VerdictPass
	}
	return VerdictFail
}
