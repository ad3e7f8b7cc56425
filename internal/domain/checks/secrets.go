package checks

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// credentialPatterns match literal secrets in source text. The scan is
// text-based so it works even when the artifact does not parse.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|auth[_-]?token)\s*[:=]{1,2}\s*"[^"]{4,}"`),
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-._~+/]{16,}`),
	regexp.MustCompile(`-----BEGIN (RSA|EC|OPENSSH) PRIVATE KEY-----`),
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
}

// HardcodedCredential scans the raw source for literal secrets.
type HardcodedCredential struct{}

func NewHardcodedCredential() *HardcodedCredential { return &HardcodedCredential{} }

func (c *HardcodedCredential) Name() string { return "hardcoded_credentials" }
func (c *HardcodedCredential) Tool() string { return "" }

func (c *HardcodedCredential) Run(_ context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	var hits []string
	for _, pattern := range credentialPatterns {
		for _, m := range pattern.FindAllIndex(target.Source, -1) {
			line := 1 + countNewlines(target.Source[:m[0]])
			hits = append(hits, fmt.Sprintf("line %d", line))
		}
	}

	evidence := map[string]any{"matches": len(hits)}
	if len(hits) > 0 {
		evidence["locations"] = hits
	}

	if len(hits) == 0 {
		return result(c.Name(), domain.StatusPass, "no hardcoded credentials found", evidence, start)
	}
	return result(c.Name(), domain.StatusFail,
		fmt.Sprintf("%d potential hardcoded credentials", len(hits)), evidence, start)
}
