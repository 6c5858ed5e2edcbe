package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"
)

type stubRepo struct {
	services []domain.Service
}

func (r *stubRepo) All() []domain.Service {
	return r.services
}

func (r *stubRepo) ByID(id string) (*domain.Service, bool) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, true
		}
	}
	return nil, false
}

func newTestBrowser(t *testing.T) *Browser {
	t.Helper()
	return NewBrowser(&stubRepo{services: testCatalog()}, zaptest.NewLogger(t))
}

func TestBrowse(t *testing.T) {
	b := newTestBrowser(t)

	resp, err := b.Browse(BrowseRequest{Category: domain.CategoryAgriculture, Query: "loan"})
	require.NoError(t, err)

	assert.Equal(t, []string{"agri-1", "agri-2"}, ids(resp.Services))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 2, resp.Counts[domain.CategoryEducation])
}

func TestBrowseEmptyCategoryDefaultsToAll(t *testing.T) {
	b := newTestBrowser(t)

	resp, err := b.Browse(BrowseRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Services, 5)
}

func TestBrowseUnknownCategory(t *testing.T) {
	b := newTestBrowser(t)

	resp, err := b.Browse(BrowseRequest{Category: "banking"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestBrowseRejectsOversizedQuery(t *testing.T) {
	b := newTestBrowser(t)

	resp, err := b.Browse(BrowseRequest{Query: strings.Repeat("a", 200)})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "invalid search query")
}

func TestGet(t *testing.T) {
	b := newTestBrowser(t)

	s, ok := b.Get("edu-1")
	require.True(t, ok)
	assert.Equal(t, "Digital Literacy Program", s.Title)

	_, ok = b.Get("missing")
	assert.False(t, ok)
}
