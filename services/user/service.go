package user

import (
	"context"
	"fmt"
	"time"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, string, error) {
	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, "", utils.NewValidationError("email already registered")
	}
	existing, err = s.Repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, "", utils.NewValidationError("username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, req models.AuthUserRequest) (*models.User, string, error) {
	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, "", utils.NewForbiddenError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", utils.NewForbiddenError("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError("user not found")
	}
	return user, nil
}

func (s *DefaultUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError("user not found")
	}
	return user, nil
}
