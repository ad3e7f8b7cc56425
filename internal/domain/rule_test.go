package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artcheck/artcheck/internal/domain"
)

func TestCatalog_SelectAllByDefault(t *testing.T) {
	catalog := domain.DefaultCatalog()

	assert.Equal(t, catalog.Rules, catalog.Select(nil))
	assert.Equal(t, catalog.Rules, catalog.Select([]string{}))
}

func TestCatalog_SelectPreservesCatalogOrder(t *testing.T) {
	catalog := domain.DefaultCatalog()

	selected := catalog.Select([]string{"ART-09", "ART-01", "ART-05"})

	require.Len(t, selected, 3)
	assert.Equal(t, "ART-01", selected[0].ID)
	assert.Equal(t, "ART-05", selected[1].ID)
	assert.Equal(t, "ART-09", selected[2].ID)
}

func TestCatalog_SelectSkipsUnknownIDs(t *testing.T) {
	catalog := domain.DefaultCatalog()

	selected := catalog.Select([]string{"ART-02", "ART-99", "nonsense"})

	require.Len(t, selected, 1)
	assert.Equal(t, "ART-02", selected[0].ID)
}

func TestCatalog_SelectOnlyUnknownIDs(t *testing.T) {
	catalog := domain.DefaultCatalog()

	assert.Empty(t, catalog.Select([]string{"ART-99"}))
}

func TestCatalog_WeightUnknownIsZero(t *testing.T) {
	catalog := domain.DefaultCatalog()

	assert.Equal(t, 3.0, catalog.Weight("ART-01"))
	assert.Equal(t, 0.0, catalog.Weight("ART-99"))
}

func TestDefaultCatalog_HasTenArticles(t *testing.T) {
	catalog := domain.DefaultCatalog()

	assert.Len(t, catalog.Rules, 10)
	assert.Equal(t, domain.CatalogVersion, catalog.Version)
	for _, r := range catalog.Rules {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Title)
		assert.Greater(t, r.Weight, 0.0)
	}
}
