package checks

import (
	"context"
	"fmt"
	"go/ast"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// UnsafeAssertion flags type assertions not written in the comma-ok form.
// A bare `x.(T)` panics on mismatch; `v, ok := x.(T)` and type switches are
// safe.
type UnsafeAssertion struct{}

func NewUnsafeAssertion() *UnsafeAssertion { return &UnsafeAssertion{} }

func (c *UnsafeAssertion) Name() string { return "unsafe_assertions" }
func (c *UnsafeAssertion) Tool() string { return "" }

func (c *UnsafeAssertion) Run(_ context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	file, fset, err := parseArtifact(target)
	if err != nil {
		return parseError(c.Name(), err, start)
	}

	safe := make(map[*ast.TypeAssertExpr]bool)
	ast.Inspect(file, func(n ast.Node) bool {
		switch stmt := n.(type) {
		case *ast.AssignStmt:
			// v, ok := x.(T)
			if len(stmt.Lhs) == 2 && len(stmt.Rhs) == 1 {
				if ta, ok := stmt.Rhs[0].(*ast.TypeAssertExpr); ok {
					safe[ta] = true
				}
			}
		case *ast.TypeSwitchStmt:
			ast.Inspect(stmt.Assign, func(inner ast.Node) bool {
				if ta, ok := inner.(*ast.TypeAssertExpr); ok {
					safe[ta] = true
				}
				return true
			})
		}
		return true
	})

	var unsafe []string
	ast.Inspect(file, func(n ast.Node) bool {
		ta, ok := n.(*ast.TypeAssertExpr)
		if !ok || safe[ta] || ta.Type == nil {
			return true
		}
		unsafe = append(unsafe, fmt.Sprintf("line %d", fset.Position(ta.Pos()).Line))
		return true
	})

	evidence := map[string]any{"unsafe": len(unsafe)}
	if len(unsafe) > 0 {
		evidence["locations"] = unsafe
	}

	if len(unsafe) == 0 {
		return result(c.Name(), domain.StatusPass, "all type assertions use the comma-ok form", evidence, start)
	}
	return result(c.Name(), domain.StatusFail,
		fmt.Sprintf("%d type assertions without the comma-ok form", len(unsafe)), evidence, start)
}
