package checks

import (
	"context"
	"fmt"
	"go/ast"
	"regexp"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

var discardPattern = regexp.MustCompile(`(?m)^\s*_\s*=\s*\w+[\w.]*\(`)

// DiscardedError flags call results assigned entirely to the blank
// identifier. Falls back to a regex scan on unparseable artifacts.
type DiscardedError struct{}

func NewDiscardedError() *DiscardedError { return &DiscardedError{} }

func (c *DiscardedError) Name() string { return "discarded_errors" }
func (c *DiscardedError) Tool() string { return "" }

func (c *DiscardedError) Run(_ context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	var discarded []string
	fallback := false

	file, fset, err := parseArtifact(target)
	if err != nil {
		fallback = true
		for _, m := range discardPattern.FindAllIndex(target.Source, -1) {
			line := 1 + countNewlines(target.Source[:m[0]])
			discarded = append(discarded, fmt.Sprintf("line %d", line))
		}
	} else {
		ast.Inspect(file, func(n ast.Node) bool {
			assign, ok := n.(*ast.AssignStmt)
			if !ok || len(assign.Rhs) != 1 {
				return true
			}
			if _, isCall := assign.Rhs[0].(*ast.CallExpr); !isCall {
				return true
			}
			if !allBlank(assign.Lhs) {
				return true
			}
			discarded = append(discarded, fmt.Sprintf("line %d", fset.Position(assign.Pos()).Line))
			return true
		})
	}

	evidence := map[string]any{"discarded": len(discarded)}
	if fallback {
		evidence["fallback"] = "regex scan (artifact does not parse)"
	}
	if len(discarded) > 0 {
		evidence["locations"] = discarded
	}

	if len(discarded) == 0 {
		return result(c.Name(), domain.StatusPass, "no discarded call results", evidence, start)
	}
	return result(c.Name(), domain.StatusFail,
		fmt.Sprintf("%d call results discarded with the blank identifier", len(discarded)), evidence, start)
}

// PanicUsage flags panic calls outside main/init, where expected failures
// should surface as errors instead.
type PanicUsage struct{}

func NewPanicUsage() *PanicUsage { return &PanicUsage{} }

func (c *PanicUsage) Name() string { return "panic_usage" }
func (c *PanicUsage) Tool() string { return "" }

func (c *PanicUsage) Run(_ context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	file, fset, err := parseArtifact(target)
	if err != nil {
		return parseError(c.Name(), err, start)
	}

	var panics []string
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		if fn.Name.Name == "main" || fn.Name.Name == "init" {
			continue
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if ident, ok := call.Fun.(*ast.Ident); ok && ident.Name == "panic" {
				panics = append(panics, fmt.Sprintf("%s (line %d)", fn.Name.Name, fset.Position(call.Pos()).Line))
			}
			return true
		})
	}

	evidence := map[string]any{"panics": len(panics)}
	if len(panics) > 0 {
		evidence["locations"] = panics
	}

	switch {
	case len(panics) == 0:
		return result(c.Name(), domain.StatusPass, "no panic calls outside main/init", evidence, start)
	case len(panics) == 1:
		return result(c.Name(), domain.StatusWarning,
			"panic in "+panics[0], evidence, start)
	default:
		return result(c.Name(), domain.StatusFail,
			fmt.Sprintf("%d panic calls outside main/init", len(panics)), evidence, start)
	}
}

func allBlank(exprs []ast.Expr) bool {
	for _, e := range exprs {
		ident, ok := e.(*ast.Ident)
		if !ok || ident.Name != "_" {
			return false
		}
	}
	return len(exprs) > 0
}

func countNewlines(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}
