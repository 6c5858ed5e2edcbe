package catalog

import (
	"fmt"

	"go.uber.org/zap"

	domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"
	pkgerrors "github.com/jaipal-12/villageconnect/pkg/errors"
	"github.com/jaipal-12/villageconnect/pkg/security"
)

// Repository defines read access to the service catalog. The catalog is
// static, so implementations are expected to be cheap and side-effect
// free.
type Repository interface {
	All() []domain.Service
	ByID(id string) (*domain.Service, bool)
}

// BrowseRequest carries the two filter inputs of the services view.
type BrowseRequest struct {
	Category domain.Category
	Query    string
}

// BrowseResponse is the filtered catalog view plus per-category counts for
// the filter chips.
type BrowseResponse struct {
	Services []domain.Service
	Counts   map[domain.Category]int
	Total    int
}

// Browser implements catalog browsing on top of the pure Filter function.
type Browser struct {
	repo Repository
	log  *zap.Logger
}

// NewBrowser creates a catalog browser.
func NewBrowser(repo Repository, log *zap.Logger) *Browser {
	return &Browser{repo: repo, log: log}
}

// Browse returns the catalog subset matching the request. An empty
// category is treated as "all"; unknown categories and oversized or
// malformed search terms are rejected.
func (b *Browser) Browse(in BrowseRequest) (*BrowseResponse, error) {
	if in.Category == "" {
		in.Category = domain.CategoryAll
	}
	if !in.Category.Valid() {
		b.log.Warn("unknown category", zap.String("category", string(in.Category)))
		return nil, pkgerrors.NewValidationError("category", fmt.Sprintf("unknown category: %s", in.Category))
	}

	query, err := security.ValidateSearchQuery(in.Query)
	if err != nil {
		b.log.Warn("invalid search query", zap.String("query", in.Query), zap.Error(err))
		return nil, pkgerrors.NewValidationError("query", fmt.Sprintf("invalid search query: %v", err))
	}

	all := b.repo.All()
	filtered := Filter(all, in.Category, query)

	b.log.Debug("catalog browsed",
		zap.String("category", string(in.Category)),
		zap.String("query", query),
		zap.Int("matched", len(filtered)),
	)

	return &BrowseResponse{
		Services: filtered,
		Counts:   CountByCategory(all),
		Total:    len(all),
	}, nil
}

// Get returns a single catalog entry by ID, or false when absent.
func (b *Browser) Get(id string) (*domain.Service, bool) {
	return b.repo.ByID(id)
}
