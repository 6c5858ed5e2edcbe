package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"
	"github.com/jaipal-12/villageconnect/internal/usecase/catalog"
	"github.com/jaipal-12/villageconnect/internal/usecase/dashboard"
	"github.com/jaipal-12/villageconnect/internal/usecase/session"
)

// CatalogHandler handles HTTP requests for the service catalog and the
// user dashboard.
type CatalogHandler struct {
	browser   *catalog.Browser
	dashboard *dashboard.Usecase
	sessions  session.Usecase
	log       *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(browser *catalog.Browser, dash *dashboard.Usecase, sessions session.Usecase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		browser:   browser,
		dashboard: dash,
		sessions:  sessions,
		log:       log,
	}
}

// ListServicesResponse represents the HTTP response for browsing services
type ListServicesResponse struct {
	Services []domain.Service        `json:"services"`
	Counts   map[domain.Category]int `json:"counts"`
	Total    int                     `json:"total"`
}

// VideosResponse represents the HTTP response for a service's video gallery
type VideosResponse struct {
	Videos     []domain.Video `json:"videos"`
	Categories []string       `json:"categories"`
}

// DashboardResponse represents the HTTP response for the user dashboard
type DashboardResponse struct {
	EnrolledServices  []domain.Service `json:"enrolledServices"`
	ServicesWithVideo []domain.Service `json:"servicesWithVideo"`
	Recommended       []domain.Service `json:"recommended"`
	EnrolledCount     int              `json:"enrolledCount"`
	AvailableCount    int              `json:"availableCount"`
}

// ListServices handles GET /v1/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	category := domain.Category(c.DefaultQuery("category", string(domain.CategoryAll)))
	query := c.DefaultQuery("query", "")

	resp, err := h.browser.Browse(catalog.BrowseRequest{
		Category: category,
		Query:    query,
	})
	if err != nil {
		h.log.Warn("browse failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ListServicesResponse{
		Services: resp.Services,
		Counts:   resp.Counts,
		Total:    resp.Total,
	})
}

// GetService handles GET /v1/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	svc, ok := h.browser.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Service not found",
		})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// GetServiceVideos handles GET /v1/services/:id/videos
func (h *CatalogHandler) GetServiceVideos(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	svc, ok := h.browser.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Service not found",
		})
		return
	}

	nav := catalog.NewNavigator(svc.Videos)
	if category := c.Query("category"); category != "" {
		nav.SetCategory(category)
	}

	videos := make([]domain.Video, 0, nav.Len())
	for i := 0; i < nav.Len(); i++ {
		if v, ok := nav.Current(); ok {
			videos = append(videos, *v)
		}
		nav.Next()
	}

	c.JSON(http.StatusOK, VideosResponse{
		Videos:     videos,
		Categories: nav.Categories(),
	})
}

// ListCategories handles GET /v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	resp, err := h.browser.Browse(catalog.BrowseRequest{Category: domain.CategoryAll})
	if err != nil {
		h.log.Error("category listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": domain.Categories,
		"counts":     resp.Counts,
		"total":      resp.Total,
	})
}

// Dashboard handles GET /v1/dashboard
func (h *CatalogHandler) Dashboard(c *gin.Context) {
	u := h.sessions.Current()
	if u == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "no_session",
			Message: "No active session",
		})
		return
	}

	s := h.dashboard.Summarize(u)

	c.JSON(http.StatusOK, DashboardResponse{
		EnrolledServices:  s.EnrolledServices,
		ServicesWithVideo: s.ServicesWithVideo,
		Recommended:       s.Recommended,
		EnrolledCount:     s.EnrolledCount,
		AvailableCount:    s.AvailableCount,
	})
}
