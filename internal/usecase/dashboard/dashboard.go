package dashboard

import (
	"go.uber.org/zap"

	domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"
	"github.com/jaipal-12/villageconnect/internal/domain/user"
	"github.com/jaipal-12/villageconnect/internal/usecase/catalog"
)

// recommendedCount is how many catalog entries the dashboard suggests to
// users who have not enrolled yet.
const recommendedCount = 3

// Summary is the dashboard view model for one user: their enrollments
// resolved against the catalog, the subset with learning videos, and the
// counters shown at the top of the page.
type Summary struct {
	EnrolledServices  []domain.Service
	ServicesWithVideo []domain.Service
	Recommended       []domain.Service
	EnrolledCount     int
	AvailableCount    int
}

// Usecase builds dashboard summaries from the catalog.
type Usecase struct {
	repo catalog.Repository
	log  *zap.Logger
}

// New creates a dashboard usecase.
func New(repo catalog.Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, log: log}
}

// Summarize resolves u's enrollments against the catalog, preserving
// catalog order. Enrollment IDs that no longer resolve to a catalog entry
// are skipped. A nil user yields an empty summary.
func (uc *Usecase) Summarize(u *user.User) *Summary {
	all := uc.repo.All()

	s := &Summary{AvailableCount: len(all)}
	if len(all) >= recommendedCount {
		s.Recommended = all[:recommendedCount]
	} else {
		s.Recommended = all
	}

	if u == nil {
		return s
	}

	for _, svc := range all {
		if !u.IsEnrolled(svc.ID) {
			continue
		}
		s.EnrolledServices = append(s.EnrolledServices, svc)
		if svc.HasVideos() {
			s.ServicesWithVideo = append(s.ServicesWithVideo, svc)
		}
	}
	s.EnrolledCount = len(u.EnrolledServices)

	if s.EnrolledCount != len(s.EnrolledServices) {
		uc.log.Warn("enrollments reference unknown services",
			zap.String("user_id", u.ID),
			zap.Int("enrolled", s.EnrolledCount),
			zap.Int("resolved", len(s.EnrolledServices)),
		)
	}

	return s
}
