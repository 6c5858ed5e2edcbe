package session

import (
	"context"

	"github.com/jaipal-12/villageconnect/internal/domain/user"
)

// Usecase defines the session and enrollment operations exposed to the
// transport layer. Store is the canonical implementation.
type Usecase interface {
	Restore(ctx context.Context)
	Register(ctx context.Context, in RegisterRequest) (*user.User, error)
	Login(ctx context.Context, in LoginRequest) (*user.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, in UpdateProfileRequest) (*user.User, error)
	EnrollInService(ctx context.Context, serviceID string) (*user.User, error)
	Current() *user.User
}
