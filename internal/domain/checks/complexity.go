package checks

import (
	"context"
	"fmt"
	"go/ast"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// maxNestingDepth is the deepest acceptable block nesting inside a function
// body before the artifact fails the complexity article.
const maxNestingDepth = 5

// NestingDepth measures the deepest control-flow nesting per function.
type NestingDepth struct{}

func NewNestingDepth() *NestingDepth { return &NestingDepth{} }

func (c *NestingDepth) Name() string { return "nesting_depth" }
func (c *NestingDepth) Tool() string { return "" }

func (c *NestingDepth) Run(_ context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	file, _, err := parseArtifact(target)
	if err != nil {
		return parseError(c.Name(), err, start)
	}

	deepest := 0
	var offenders []string

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		depth := blockDepth(fn.Body, 0)
		if depth > deepest {
			deepest = depth
		}
		if depth > maxNestingDepth {
			offenders = append(offenders, fmt.Sprintf("%s (depth %d)", fn.Name.Name, depth))
		}
	}

	evidence := map[string]any{
		"max_depth": deepest,
		"threshold": maxNestingDepth,
	}
	if len(offenders) > 0 {
		evidence["functions"] = offenders
	}

	switch {
	case len(offenders) > 0:
		return result(c.Name(), domain.StatusFail,
			fmt.Sprintf("%d functions exceed nesting depth %d", len(offenders), maxNestingDepth), evidence, start)
	case deepest == maxNestingDepth:
		return result(c.Name(), domain.StatusWarning,
			fmt.Sprintf("deepest nesting is at the threshold (%d)", maxNestingDepth), evidence, start)
	default:
		return result(c.Name(), domain.StatusPass,
			fmt.Sprintf("deepest nesting %d within threshold %d", deepest, maxNestingDepth), evidence, start)
	}
}

// blockDepth walks a statement tree and returns the maximum nesting depth of
// control-flow constructs beneath it.
func blockDepth(stmt ast.Stmt, depth int) int {
	max := depth
	visit := func(s ast.Stmt, d int) {
		if sub := blockDepth(s, d); sub > max {
			max = sub
		}
	}

	switch s := stmt.(type) {
	case *ast.BlockStmt:
		for _, inner := range s.List {
			visit(inner, depth)
		}
	case *ast.IfStmt:
		visit(s.Body, depth+1)
		if s.Else != nil {
			visit(s.Else, depth+1)
		}
	case *ast.ForStmt:
		visit(s.Body, depth+1)
	case *ast.RangeStmt:
		visit(s.Body, depth+1)
	case *ast.SwitchStmt:
		visit(s.Body, depth+1)
	case *ast.TypeSwitchStmt:
		visit(s.Body, depth+1)
	case *ast.SelectStmt:
		visit(s.Body, depth+1)
	case *ast.CaseClause:
		for _, inner := range s.Body {
			visit(inner, depth)
		}
	case *ast.CommClause:
		for _, inner := range s.Body {
			visit(inner, depth)
		}
	case *ast.LabeledStmt:
		visit(s.Stmt, depth)
	}

	return max
}
