package domain

// Rule is one weighted compliance article in the catalog. Rules are static:
// the catalog is built once at process start and never mutated.
type Rule struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Weight   float64  `json:"weight"`
	Criteria []string `json:"criteria,omitempty"`
}

// Catalog is the ordered collection of articles a run validates against.
type Catalog struct {
	Version string `json:"version"`
	Rules   []Rule `json:"rules"`
}

// CatalogVersion identifies the built-in article set.
const CatalogVersion = "2025.3"

// DefaultCatalog returns the built-in article catalog. The criteria strings
// are informational pass descriptions, not machine-enforced predicates.
func DefaultCatalog() Catalog {
	return Catalog{
		Version: CatalogVersion,
		Rules: []Rule{
			{
				ID:     "ART-01",
				Title:  "Type integrity",
				Weight: 3.0,
				Criteria: []string{
					"go vet reports no diagnostics",
					"no unchecked type assertions",
				},
			},
			{
				ID:     "ART-02",
				Title:  "Lint cleanliness",
				Weight: 2.0,
				Criteria: []string{
					"staticcheck reports no issues",
				},
			},
			{
				ID:     "ART-03",
				Title:  "Security hygiene",
				Weight: 3.0,
				Criteria: []string{
					"gosec reports no findings",
					"no hardcoded credentials",
				},
			},
			{
				ID:     "ART-04",
				Title:  "No dead code",
				Weight: 1.0,
				Criteria: []string{
					"deadcode reports no unreachable functions",
				},
			},
			{
				ID:     "ART-05",
				Title:  "Bounded complexity",
				Weight: 1.5,
				Criteria: []string{
					"no function exceeds the cyclomatic threshold",
					"nesting depth stays within bounds",
				},
			},
			{
				ID:     "ART-06",
				Title:  "Documentation",
				Weight: 1.0,
				Criteria: []string{
					"exported declarations carry doc comments",
				},
			},
			{
				ID:     "ART-07",
				Title:  "Naming clarity",
				Weight: 1.0,
				Criteria: []string{
					"exported names are specific multi-word identifiers",
				},
			},
			{
				ID:     "ART-08",
				Title:  "Error discipline",
				Weight: 2.0,
				Criteria: []string{
					"no discarded error returns",
					"no panic in library paths",
				},
			},
			{
				ID:     "ART-09",
				Title:  "Canonical formatting",
				Weight: 0.5,
				Criteria: []string{
					"gofmt produces no diff",
				},
			},
			{
				ID:     "ART-10",
				Title:  "Reproducible build",
				Weight: 0.5,
				Criteria: []string{
					"artifact builds identically from a clean checkout",
				},
			},
		},
	}
}

// Weight returns the weight of the named article, 0 for unknown ids.
func (c Catalog) Weight(id string) float64 {
	for _, r := range c.Rules {
		if r.ID == id {
			return r.Weight
		}
	}
	return 0
}

// Select returns the rules matching the filter, preserving catalog order.
// Unknown ids in the filter are silently skipped. A nil or empty filter
// selects the whole catalog.
func (c Catalog) Select(filter []string) []Rule {
	if len(filter) == 0 {
		return c.Rules
	}

	wanted := make(map[string]bool, len(filter))
	for _, id := range filter {
		wanted[id] = true
	}

	var selected []Rule
	for _, r := range c.Rules {
		if wanted[r.ID] {
			selected = append(selected, r)
		}
	}
	return selected
}
