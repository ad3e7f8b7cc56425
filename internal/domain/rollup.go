package domain

import "fmt"

// RollupPolicy holds the scoring penalties applied when warnings are rolled
// into an article score. The constants are a policy choice, not a law, so
// they are configurable rather than hard-coded.
type RollupPolicy struct {
	// WarningPenalty scales the warning ratio in non-strict mode.
	WarningPenalty float64 `yaml:"warning_penalty" json:"warning_penalty"`
	// StrictWarningPenalty scales the warning ratio when strict mode
	// escalates warnings to failures.
	StrictWarningPenalty float64 `yaml:"strict_warning_penalty" json:"strict_warning_penalty"`
	// WarningFloor is the minimum score of a WARNING-status article.
	WarningFloor float64 `yaml:"warning_floor" json:"warning_floor"`
}

// DefaultRollupPolicy returns the stock penalty constants.
func DefaultRollupPolicy() RollupPolicy {
	return RollupPolicy{
		WarningPenalty:       0.3,
		StrictWarningPenalty: 0.5,
		WarningFloor:         0.5,
	}
}

// Validate checks the policy constants for sane ranges.
func (p RollupPolicy) Validate() error {
	fields := map[string]float64{
		"warning_penalty":        p.WarningPenalty,
		"strict_warning_penalty": p.StrictWarningPenalty,
		"warning_floor":          p.WarningFloor,
	}
	for name, v := range fields {
		if v < 0 || v > 1 {
			return fmt.Errorf("rollup.%s must be between 0.0 and 1.0 (got %.2f)", name, v)
		}
	}
	return nil
}

// RollUp reduces a set of check results to a single article status and score.
//
// Precedence: any ERROR wins, then any FAIL, then any WARNING (escalated to
// FAIL in strict mode), then PASS. The result depends only on the multiset of
// statuses, never on which check produced which status or in what order the
// checks completed, so concurrent and sequential evaluation roll up
// identically.
func RollUp(results []CheckResult, strict bool, policy RollupPolicy) (Status, float64) {
	total := len(results)
	if total == 0 {
		return StatusError, 0.0
	}

	var errored, failed, warned int
	for _, r := range results {
		switch r.Status {
		case StatusError:
			errored++
		case StatusFail:
			failed++
		case StatusWarning:
			warned++
		}
	}

	switch {
	case errored > 0:
		return StatusError, 0.0

	case failed > 0:
		score := 1.0 - float64(failed)/float64(total)
		if score < 0 {
			score = 0
		}
		return StatusFail, score

	case warned > 0 && strict:
		score := 1.0 - float64(warned)/float64(total)*policy.StrictWarningPenalty
		if score < 0 {
			score = 0
		}
		return StatusFail, score

	case warned > 0:
		score := 1.0 - float64(warned)/float64(total)*policy.WarningPenalty
		if score < policy.WarningFloor {
			score = policy.WarningFloor
		}
		return StatusWarning, score

	default:
		return StatusPass, 1.0
	}
}

// Violations returns one "check: detail" string per FAIL-status check, in the
// original check order.
func Violations(results []CheckResult) []string {
	var violations []string
	for _, r := range results {
		if r.Status == StatusFail {
			violations = append(violations, fmt.Sprintf("%s: %s", r.Check, r.Detail))
		}
	}
	return violations
}
