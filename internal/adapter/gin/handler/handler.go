package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jaipal-12/villageconnect/internal/domain/user"
	pkgerrors "github.com/jaipal-12/villageconnect/pkg/errors"
)

// toUserResponse maps a domain user to its HTTP representation.
func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Village:          u.Village,
		State:            u.State,
		EnrolledServices: u.EnrolledServices,
		JoinedDate:       u.JoinedDate,
	}
}

// handleError converts usecase errors to HTTP responses. Typed errors from
// pkg/errors carry their own status; validation failures from the usecase
// layer surface as 400s; anything else is an opaque 500.
func (h *SessionHandler) handleError(c *gin.Context, err error) {
	if status := pkgerrors.StatusOf(err); status != http.StatusInternalServerError {
		c.JSON(status, ErrorResponse{
			Error:   http.StatusText(status),
			Message: err.Error(),
		})
		return
	}

	if strings.Contains(err.Error(), "validation failed") {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
