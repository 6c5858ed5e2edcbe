package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/jaipal-12/villageconnect/internal/adapter/gin/handler"
	"github.com/jaipal-12/villageconnect/internal/adapter/gin/middleware"
	"github.com/jaipal-12/villageconnect/internal/adapter/gin/router"
	"github.com/jaipal-12/villageconnect/internal/adapter/kv"
	"github.com/jaipal-12/villageconnect/internal/adapter/repository/static"
	"github.com/jaipal-12/villageconnect/internal/usecase/catalog"
	"github.com/jaipal-12/villageconnect/internal/usecase/dashboard"
	"github.com/jaipal-12/villageconnect/internal/usecase/session"
)

// APITestSuite exercises the full HTTP surface against real usecases over
// in-memory storage. Only the process boundary is faked.
type APITestSuite struct {
	suite.Suite
	router  *gin.Engine
	storage kv.Store
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := zaptest.NewLogger(s.T())

	s.storage = kv.NewMemoryStore()
	sessions := session.New(s.storage, log)
	sessions.Restore(context.Background())

	repo := static.NewCatalogRepository()
	browser := catalog.NewBrowser(repo, log)
	dash := dashboard.New(repo, log)

	rateLimiter := middleware.NewRateLimiter(nil, middleware.RateLimiterConfig{Enabled: false}, log)

	s.router = router.SetupRouter(
		handler.NewSessionHandler(sessions, log),
		handler.NewCatalogHandler(browser, dash, sessions, log),
		rateLimiter,
		log,
	)
}

func (s *APITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) decode(w *httptest.ResponseRecorder, out any) {
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), out))
}

func (s *APITestSuite) register() handler.UserResponse {
	w := s.do(http.MethodPost, "/v1/auth/register", gin.H{
		"name":    "Ramesh Kumar",
		"email":   "ramesh@example.com",
		"phone":   "+91 98765 43210",
		"village": "Rampur",
		"state":   "Uttar Pradesh",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var u handler.UserResponse
	s.decode(w, &u)
	return u
}

func (s *APITestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestRegistrationFlow() {
	u := s.register()
	s.NotEmpty(u.ID)
	s.Empty(u.EnrolledServices)

	// Session is live immediately after registering
	w := s.do(http.MethodGet, "/v1/session", nil)
	s.Equal(http.StatusOK, w.Code)

	var current handler.UserResponse
	s.decode(w, &current)
	s.Equal(u.ID, current.ID)
}

func (s *APITestSuite) TestLoginLogoutFlow() {
	u := s.register()

	w := s.do(http.MethodPost, "/v1/auth/logout", nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/v1/session", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/v1/auth/login", gin.H{
		"email":    "ramesh@example.com",
		"password": "anything goes",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var logged handler.UserResponse
	s.decode(w, &logged)
	s.Equal(u.ID, logged.ID)
}

func (s *APITestSuite) TestLoginUnknownEmail() {
	w := s.do(http.MethodPost, "/v1/auth/login", gin.H{
		"email": "nobody@example.com",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestEnrollmentFlow() {
	s.register()

	w := s.do(http.MethodPost, "/v1/enrollments", gin.H{"serviceId": "edu-1"})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/v1/enrollments", gin.H{"serviceId": "agri-1"})
	s.Require().Equal(http.StatusOK, w.Code)

	// Enrolling twice leaves the list unchanged
	w = s.do(http.MethodPost, "/v1/enrollments", gin.H{"serviceId": "edu-1"})
	s.Require().Equal(http.StatusOK, w.Code)

	var u handler.UserResponse
	s.decode(w, &u)
	s.Equal([]string{"edu-1", "agri-1"}, u.EnrolledServices)

	// Dashboard reflects the enrollments
	w = s.do(http.MethodGet, "/v1/dashboard", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var dash handler.DashboardResponse
	s.decode(w, &dash)
	s.Equal(2, dash.EnrolledCount)
	s.Len(dash.EnrolledServices, 2)
}

func (s *APITestSuite) TestEnrollmentRequiresSession() {
	w := s.do(http.MethodPost, "/v1/enrollments", gin.H{"serviceId": "edu-1"})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestProfileUpdateFlow() {
	s.register()

	w := s.do(http.MethodPut, "/v1/profile", gin.H{"village": "Sitapur"})
	s.Require().Equal(http.StatusOK, w.Code)

	var u handler.UserResponse
	s.decode(w, &u)
	s.Equal("Sitapur", u.Village)
	s.Equal("Ramesh Kumar", u.Name)
}

func (s *APITestSuite) TestSessionSurvivesRestart() {
	u := s.register()

	w := s.do(http.MethodPost, "/v1/enrollments", gin.H{"serviceId": "health-1"})
	s.Require().Equal(http.StatusOK, w.Code)

	// A new store over the same storage restores the session
	log := zaptest.NewLogger(s.T())
	restored := session.New(s.storage, log)
	restored.Restore(context.Background())

	current := restored.Current()
	s.Require().NotNil(current)
	s.Equal(u.ID, current.ID)
	s.Equal([]string{"health-1"}, current.EnrolledServices)
}

func (s *APITestSuite) TestCatalogBrowsing() {
	w := s.do(http.MethodGet, "/v1/services?category=agriculture", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var list handler.ListServicesResponse
	s.decode(w, &list)
	s.NotEmpty(list.Services)
	for _, svc := range list.Services {
		s.Equal("agriculture", string(svc.Category))
	}

	w = s.do(http.MethodGet, "/v1/services/edu-1/videos", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var videos handler.VideosResponse
	s.decode(w, &videos)
	s.NotEmpty(videos.Videos)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
