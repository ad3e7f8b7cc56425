package checks

import (
	"context"
	"fmt"
	"go/ast"
	"strings"
	"time"

	"github.com/fatih/camelcase"

	"github.com/artcheck/artcheck/internal/domain"
)

// vagueWords are generic identifier words that say nothing about behavior.
var vagueWords = map[string]bool{
	"Handle": true, "Process": true, "Data": true, "Do": true,
	"Manage": true, "Util": true, "Helper": true, "Info": true,
	"Stuff": true, "Thing": true, "Item": true, "Object": true,
	"Temp": true, "Misc": true,
}

// NamingClarity flags vague or single-word exported function names. When the
// artifact has syntax errors it degrades to a regex scan over raw source
// instead of erroring, since names are still recoverable.
type NamingClarity struct{}

func NewNamingClarity() *NamingClarity { return &NamingClarity{} }

func (c *NamingClarity) Name() string { return "naming_clarity" }
func (c *NamingClarity) Tool() string { return "" }

func (c *NamingClarity) Run(_ context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	var names []string
	fallback := false

	file, _, err := parseArtifact(target)
	if err != nil {
		fallback = true
		names = fallbackFuncNames(target.Source)
	} else {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok {
				names = append(names, fn.Name.Name)
			}
		}
	}

	var vague []string
	for _, name := range names {
		if !ast.IsExported(name) {
			continue
		}
		if isVagueName(name) {
			vague = append(vague, name)
		}
	}

	evidence := map[string]any{
		"functions": len(names),
		"vague":     len(vague),
	}
	if fallback {
		evidence["fallback"] = "regex scan (artifact does not parse)"
	}
	if len(vague) > 0 {
		evidence["names"] = vague
	}

	switch {
	case len(vague) == 0:
		return result(c.Name(), domain.StatusPass, "exported naming is specific", evidence, start)
	case len(vague) <= 2:
		return result(c.Name(), domain.StatusWarning,
			fmt.Sprintf("vague naming on %s", strings.Join(vague, ", ")), evidence, start)
	default:
		return result(c.Name(), domain.StatusFail,
			fmt.Sprintf("%d exported functions have vague naming: %s", len(vague), strings.Join(vague, ", ")), evidence, start)
	}
}

// isVagueName reports whether a name is a lone vague word, or consists
// entirely of vague words.
func isVagueName(name string) bool {
	words := camelcase.Split(name)
	if len(words) == 0 {
		return true
	}
	for _, w := range words {
		low := strings.ToLower(w)
		titled := strings.ToUpper(low[:1]) + low[1:]
		if !vagueWords[titled] {
			return false
		}
	}
	return true
}

// WordCount returns the number of CamelCase words in an identifier.
func WordCount(name string) int {
	return len(camelcase.Split(name))
}
