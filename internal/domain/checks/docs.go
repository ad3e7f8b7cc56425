package checks

import (
	"context"
	"fmt"
	"go/ast"
	"time"

	"github.com/artcheck/artcheck/internal/domain"
)

// DocComment verifies that exported declarations carry doc comments.
type DocComment struct{}

func NewDocComment() *DocComment { return &DocComment{} }

func (c *DocComment) Name() string { return "doc_comments" }
func (c *DocComment) Tool() string { return "" }

func (c *DocComment) Run(_ context.Context, target *domain.Target) domain.CheckResult {
	start := time.Now()

	file, fset, err := parseArtifact(target)
	if err != nil {
		return parseError(c.Name(), err, start)
	}

	var exported, undocumented int
	var missing []string

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if !d.Name.IsExported() {
				continue
			}
			exported++
			if d.Doc == nil {
				undocumented++
				missing = append(missing, fmt.Sprintf("func %s (line %d)", d.Name.Name, fset.Position(d.Pos()).Line))
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				exported++
				if d.Doc == nil && ts.Doc == nil {
					undocumented++
					missing = append(missing, fmt.Sprintf("type %s (line %d)", ts.Name.Name, fset.Position(ts.Pos()).Line))
				}
			}
		}
	}

	evidence := map[string]any{
		"exported":     exported,
		"undocumented": undocumented,
	}
	if len(missing) > 0 {
		evidence["missing"] = missing
	}

	switch {
	case exported == 0:
		return result(c.Name(), domain.StatusPass, "no exported declarations", evidence, start)
	case undocumented == 0:
		return result(c.Name(), domain.StatusPass,
			fmt.Sprintf("all %d exported declarations documented", exported), evidence, start)
	case undocumented*2 < exported:
		return result(c.Name(), domain.StatusWarning,
			fmt.Sprintf("%d of %d exported declarations lack doc comments", undocumented, exported), evidence, start)
	default:
		return result(c.Name(), domain.StatusFail,
			fmt.Sprintf("%d of %d exported declarations lack doc comments", undocumented, exported), evidence, start)
	}
}
