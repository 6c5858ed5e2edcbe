package static

import (
	"github.com/jaipal-12/villageconnect/internal/domain/catalog"
)

// CatalogRepository serves the fixed, build-time service catalog. It is
// read-only: All returns the entries in catalog order and callers receive
// copies of the backing slice header, never ownership of the data.
type CatalogRepository struct {
	services []catalog.Service
}

// NewCatalogRepository creates a repository over the built-in catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{services: services}
}

// All returns every catalog entry in its fixed order.
func (r *CatalogRepository) All() []catalog.Service {
	out := make([]catalog.Service, len(r.services))
	copy(out, r.services)
	return out
}

// ByID returns the service with the given ID, or false when no entry
// matches.
func (r *CatalogRepository) ByID(id string) (*catalog.Service, bool) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, true
		}
	}
	return nil, false
}
