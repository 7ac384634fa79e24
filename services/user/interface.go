package user

import (
	"context"

	userRepo "github.com/kanishkk18/events/database/repository/user"
	"github.com/kanishkk18/events/models"
)

// UserService covers account registration, authentication and host lookups.
// Session mechanics are deliberately thin; the booking engine only needs
// GetByID / GetByUsername.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, string, error)
	Authenticate(ctx context.Context, req models.AuthUserRequest) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
