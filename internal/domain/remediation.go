package domain

import "strings"

// Priority ranks a remediation item by the owning article's status.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
)

// Effort is a coarse estimate of the work a remediation needs.
type Effort string

const (
	EffortSmall  Effort = "small"
	EffortMedium Effort = "medium"
	EffortLarge  Effort = "large"
)

// RemediationItem ties one violation to an actionable recommendation.
type RemediationItem struct {
	ArticleID      string   `json:"article_id"`
	Violation      string   `json:"violation"`
	Recommendation string   `json:"recommendation"`
	Priority       Priority `json:"priority"`
	Effort         Effort   `json:"effort"`
}

// recommendations maps article ids to remediation guidance. Articles without
// an entry fall back to the generic recommendation, so lookup never fails.
var recommendations = map[string]string{
	"ART-01": "Run go vet locally and resolve every diagnostic; replace unchecked type assertions with the comma-ok form.",
	"ART-02": "Run staticcheck and fix the reported issues, or suppress false positives with lint directives and a justification.",
	"ART-03": "Address the security findings: parameterize inputs, drop weak primitives, and move secrets out of the source.",
	"ART-04": "Delete unreachable functions, or export and exercise them if they are meant to be API.",
	"ART-05": "Split oversized functions and flatten deep nesting with early returns.",
	"ART-06": "Add doc comments to exported declarations, starting with the declared name.",
	"ART-07": "Rename vague identifiers to specific multi-word names that state what they do.",
	"ART-08": "Handle or propagate every error return; replace panics on expected failures with wrapped errors.",
	"ART-09": "Run gofmt -w on the file and commit the result.",
}

const genericRecommendation = "Review this article's requirements and bring the artifact into compliance."

// RecommendationFor returns the remediation text for an article id.
func RecommendationFor(articleID string) string {
	if rec, ok := recommendations[articleID]; ok {
		return rec
	}
	return genericRecommendation
}

// Synthesize maps every violation of a non-passing article to a remediation
// item. Priority is HIGH for FAIL and ERROR articles (both count as failed)
// and MEDIUM for warnings. Articles with a non-passing status but no recorded
// violations, such as WARNING-only rollups or errored checks, get items
// derived from their check details so degraded articles always surface in the
// remediation list. An errored tool check thereby names the missing or broken
// tool in its remediation item.
func Synthesize(assessments []RuleAssessment) []RemediationItem {
	var items []RemediationItem

	for _, a := range assessments {
		if a.Status == StatusPass {
			continue
		}

		priority := PriorityMedium
		if a.Status == StatusFail || a.Status == StatusError {
			priority = PriorityHigh
		}

		violations := a.Violations
		if len(violations) == 0 {
			violations = degradedViolations(a)
		}

		for _, v := range violations {
			items = append(items, RemediationItem{
				ArticleID:      a.ArticleID,
				Violation:      v,
				Recommendation: RecommendationFor(a.ArticleID),
				Priority:       priority,
				Effort:         EstimateEffort(v),
			})
		}
	}

	return items
}

// degradedViolations derives violation strings from non-PASS checks of an
// article that rolled up without explicit FAIL violations.
func degradedViolations(a RuleAssessment) []string {
	var out []string
	for _, c := range a.Checks {
		if c.Status == StatusWarning || c.Status == StatusError {
			out = append(out, c.Check+": "+c.Detail)
		}
	}
	if len(out) == 0 {
		out = []string{a.Title + ": article did not pass"}
	}
	return out
}

// EstimateEffort buckets a violation by keyword. The heuristic is best
// effort; it always returns a bucket.
func EstimateEffort(violation string) Effort {
	lower := strings.ToLower(violation)
	switch {
	case strings.Contains(lower, "test") || strings.Contains(lower, "coverage"):
		return EffortLarge
	case strings.Contains(lower, "type") || strings.Contains(lower, "style") ||
		strings.Contains(lower, "format") || strings.Contains(lower, "naming") ||
		strings.Contains(lower, "doc"):
		return EffortSmall
	default:
		return EffortMedium
	}
}
