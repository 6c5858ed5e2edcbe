package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"
)

func testVideos() []domain.Video {
	return []domain.Video{
		{ID: "v1", Title: "Getting Started", Category: "basics"},
		{ID: "v2", Title: "Advanced Techniques", Category: "advanced"},
		{ID: "v3", Title: "Common Mistakes", Category: "basics"},
	}
}

func currentID(t *testing.T, n *Navigator) string {
	t.Helper()
	v, ok := n.Current()
	require.True(t, ok)
	return v.ID
}

func TestNavigatorStartsAtFirst(t *testing.T) {
	n := NewNavigator(testVideos())

	assert.Equal(t, 3, n.Len())
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, "v1", currentID(t, n))
}

func TestNavigatorNextWrapsAround(t *testing.T) {
	n := NewNavigator(testVideos())

	n.Next()
	assert.Equal(t, "v2", currentID(t, n))
	n.Next()
	assert.Equal(t, "v3", currentID(t, n))
	n.Next()
	assert.Equal(t, "v1", currentID(t, n))
}

func TestNavigatorPrevWrapsAround(t *testing.T) {
	n := NewNavigator(testVideos())

	n.Prev()
	assert.Equal(t, "v3", currentID(t, n))
	n.Prev()
	assert.Equal(t, "v2", currentID(t, n))
}

func TestNavigatorSetCategoryResetsSelection(t *testing.T) {
	n := NewNavigator(testVideos())
	n.Next()
	require.Equal(t, 1, n.Index())

	n.SetCategory("basics")
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, 2, n.Len())
	assert.Equal(t, "v1", currentID(t, n))

	// Stepping wraps within the filtered subset only
	n.Next()
	assert.Equal(t, "v3", currentID(t, n))
	n.Next()
	assert.Equal(t, "v1", currentID(t, n))
}

func TestNavigatorEmptyCategoryMeansAll(t *testing.T) {
	n := NewNavigator(testVideos())
	n.SetCategory("")
	assert.Equal(t, 3, n.Len())
}

func TestNavigatorUnknownCategory(t *testing.T) {
	n := NewNavigator(testVideos())
	n.SetCategory("cooking")

	assert.Equal(t, 0, n.Len())
	_, ok := n.Current()
	assert.False(t, ok)

	// Stepping on an empty selection stays put
	n.Next()
	n.Prev()
	assert.Equal(t, 0, n.Index())
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator(nil)

	assert.Equal(t, 0, n.Len())
	_, ok := n.Current()
	assert.False(t, ok)
	n.Next()
	n.Prev()
	assert.Equal(t, 0, n.Index())
}

func TestNavigatorCategories(t *testing.T) {
	n := NewNavigator(testVideos())
	assert.Equal(t, []string{"all", "basics", "advanced"}, n.Categories())
}
