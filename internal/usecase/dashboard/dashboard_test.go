package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"
	"github.com/jaipal-12/villageconnect/internal/domain/user"
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

func testServices() []domain.Service {
	return []domain.Service{
		{ID: "edu-1", Title: "Digital Literacy", Videos: []domain.Video{{ID: "v1"}}},
		{ID: "edu-2", Title: "Scholarship Guidance"},
		{ID: "agri-1", Title: "Crop Loans", Videos: []domain.Video{{ID: "v2"}}},
		{ID: "health-1", Title: "Health Camp"},
	}
}

func newTestUsecase(t *testing.T, services []domain.Service) *Usecase {
	t.Helper()
	return New(&stubRepo{services: services}, zaptest.NewLogger(t))
}

func serviceIDs(services []domain.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.ID
	}
	return out
}

func TestSummarize(t *testing.T) {
	uc := newTestUsecase(t, testServices())

	// Enrollment list order differs from catalog order on purpose
	u := &user.User{ID: "u1", EnrolledServices: []string{"agri-1", "edu-1", "edu-2"}}
	s := uc.Summarize(u)

	assert.Equal(t, []string{"edu-1", "edu-2", "agri-1"}, serviceIDs(s.EnrolledServices))
	assert.Equal(t, []string{"edu-1", "agri-1"}, serviceIDs(s.ServicesWithVideo))
	assert.Equal(t, 3, s.EnrolledCount)
	assert.Equal(t, 4, s.AvailableCount)
	assert.Equal(t, []string{"edu-1", "edu-2", "agri-1"}, serviceIDs(s.Recommended))
}

func TestSummarizeNilUser(t *testing.T) {
	uc := newTestUsecase(t, testServices())

	s := uc.Summarize(nil)

	assert.Empty(t, s.EnrolledServices)
	assert.Empty(t, s.ServicesWithVideo)
	assert.Equal(t, 0, s.EnrolledCount)
	assert.Equal(t, 4, s.AvailableCount)
	assert.Len(t, s.Recommended, 3)
}

func TestSummarizeSkipsUnknownEnrollments(t *testing.T) {
	uc := newTestUsecase(t, testServices())

	u := &user.User{ID: "u1", EnrolledServices: []string{"edu-1", "retired-service"}}
	s := uc.Summarize(u)

	assert.Equal(t, []string{"edu-1"}, serviceIDs(s.EnrolledServices))
	assert.Equal(t, 2, s.EnrolledCount)
}

func TestSummarizeSmallCatalog(t *testing.T) {
	uc := newTestUsecase(t, testServices()[:2])

	s := uc.Summarize(nil)
	assert.Len(t, s.Recommended, 2)
}
