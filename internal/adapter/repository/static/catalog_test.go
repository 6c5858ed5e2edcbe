package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaipal-12/villageconnect/internal/domain/catalog"
)

func TestAll(t *testing.T) {
	repo := NewCatalogRepository()

	all := repo.All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool)
	for _, s := range all {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.True(t, s.Category.Valid(), "service %s has category %q", s.ID, s.Category)
		assert.NotEqual(t, catalog.CategoryAll, s.Category, "service %s uses the filter wildcard as category", s.ID)
		assert.False(t, seen[s.ID], "duplicate service ID %s", s.ID)
		seen[s.ID] = true

		for _, v := range s.Videos {
			assert.NotEmpty(t, v.ID)
			assert.NotEmpty(t, v.VideoURL)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	repo := NewCatalogRepository()

	first := repo.All()
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", repo.All()[0].Title)
}

func TestEveryCategoryPopulated(t *testing.T) {
	repo := NewCatalogRepository()

	counts := make(map[catalog.Category]int)
	for _, s := range repo.All() {
		counts[s.Category]++
	}
	for _, c := range catalog.Categories {
		assert.Positive(t, counts[c], "category %s has no services", c)
	}
}

func TestByID(t *testing.T) {
	repo := NewCatalogRepository()

	s, ok := repo.ByID("edu-1")
	require.True(t, ok)
	assert.Equal(t, "edu-1", s.ID)
	assert.True(t, s.HasVideos())

	_, ok = repo.ByID("edu-99")
	assert.False(t, ok)
}
