// Package checks holds the in-process checks of the article catalog. They
// analyze the artifact source via go/ast; checks that can degrade fall back
// to a regex scan when the artifact does not parse.
package checks

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// parseArtifact parses the target source. Callers decide whether a parse
// failure is an ERROR or triggers their regex fallback.
func parseArtifact(target *domain.Target) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, target.Path, target.Source, parser.ParseComments)
	if err != nil {
		return nil, nil, err
	}
	return file, fset, nil
}

// funcDeclPattern matches function declarations in raw source, for fallback
// scans on artifacts with syntax errors.
var funcDeclPattern = regexp.MustCompile(`(?m)^func\s+(?:\([^)]*\)\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// fallbackFuncNames extracts function names from unparseable source.
func fallbackFuncNames(source []byte) []string {
	var names []string
	for _, m := range funcDeclPattern.FindAllSubmatch(source, -1) {
		names = append(names, string(m[1]))
	}
	return names
}

// result builds a CheckResult for an in-process check. The runner overwrites
// the duration with the measured wall clock; setting it here keeps the value
// sane for checks exercised directly in tests.
func result(name string, status domain.Status, detail string, evidence map[string]any, start time.Time) domain.CheckResult {
	return domain.CheckResult{
		Check:    name,
		Status:   status,
		Detail:   detail,
		Evidence: evidence,
		Duration: time.Since(start),
	}
}

// parseError reports a failed structural parse as an ERROR result, with the
// underlying parse error captured in evidence.
func parseError(name string, err error, start time.Time) domain.CheckResult {
	return result(name, domain.StatusError, "artifact does not parse",
		map[string]any{"parse_error": err.Error()}, start)
}
