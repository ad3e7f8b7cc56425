package tui

import (
	"fmt"
	"strings"

	"github.com/artcheck/artcheck/internal/domain"
)

// RenderCatalog formats the article catalog for terminal output.
func RenderCatalog(catalog domain.Catalog) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Article Catalog") + "  " + dimStyle.Render(catalog.Version) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, rule := range catalog.Rules {
		id := dimStyle.Render(rule.ID)
		weight := faintStyle.Render(fmt.Sprintf("weight %.1f", rule.Weight))
		fmt.Fprintf(&b, "  %s  %s  %s\n", id, articleStyle.Render(padRight(rule.Title, 24)), weight)
		for _, criterion := range rule.Criteria {
			fmt.Fprintf(&b, "      %s\n", faintStyle.Render(criterion))
		}
	}

	b.WriteString("\n")
	return b.String()
}
