package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaipal-12/villageconnect/internal/usecase/session"
)

// SessionHandler handles HTTP requests for registration, login, profile,
// and enrollment.
type SessionHandler struct {
	sessions session.Usecase
	log      *zap.Logger
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions session.Usecase, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		log:      log,
	}
}

// RegisterRequest represents the HTTP request body for registering a user
type RegisterRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Village string `json:"village" binding:"required,max=100"`
	State   string `json:"state" binding:"required,max=100"`
}

// LoginRequest represents the HTTP request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents the HTTP request body for a profile patch
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=100"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Village string `json:"village" binding:"omitempty,max=100"`
	State   string `json:"state" binding:"omitempty,max=100"`
}

// EnrollRequest represents the HTTP request body for a service enrollment
type EnrollRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// UserResponse represents the HTTP response for session user data
type UserResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Village          string   `json:"village"`
	State            string   `json:"state"`
	EnrolledServices []string `json:"enrolledServices"`
	JoinedDate       string   `json:"joinedDate"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Register handles POST /v1/auth/register
func (h *SessionHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	u, err := h.sessions.Register(c.Request.Context(), session.RegisterRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Village: req.Village,
		State:   req.State,
	})
	if err != nil {
		h.log.Error("register failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(u))
}

// Login handles POST /v1/auth/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	u, err := h.sessions.Login(c.Request.Context(), session.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Error("login failed", zap.Error(err))
		h.handleError(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_credentials",
			Message: "No account found for this email",
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

// Logout handles POST /v1/auth/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		h.log.Error("logout failed", zap.Error(err))
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CurrentSession handles GET /v1/session
func (h *SessionHandler) CurrentSession(c *gin.Context) {
	u := h.sessions.Current()
	if u == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "no_session",
			Message: "No active session",
		})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PUT /v1/profile
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid profile update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	u, err := h.sessions.UpdateProfile(c.Request.Context(), session.UpdateProfileRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Village: req.Village,
		State:   req.State,
	})
	if err != nil {
		h.log.Error("profile update failed", zap.Error(err))
		h.handleError(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "no_session",
			Message: "No active session",
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

// Enroll handles POST /v1/enrollments
func (h *SessionHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid enrollment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	u, err := h.sessions.EnrollInService(c.Request.Context(), req.ServiceID)
	if err != nil {
		h.log.Error("enrollment failed", zap.Error(err))
		h.handleError(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "no_session",
			Message: "No active session",
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}
