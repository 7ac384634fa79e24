package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func newTestService() *DefaultUserService {
	return &DefaultUserService{Repo: &fakeUserRepo{users: map[string]*models.User{}}}
}

func registerReq() models.RegisterUserRequest {
	return models.RegisterUserRequest{
		Name: "Alice", Email: "alice@example.com",
		Username: "alice", Password: "s3cret-pass",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, registerReq())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("registered user has no id")
	}
	if token == "" {
		t.Error("registration did not issue a token")
	}
	if user.Password == "s3cret-pass" {
		t.Error("password stored in plaintext")
	}

	authed, token, err := svc.Authenticate(ctx, models.AuthUserRequest{
		Email: "alice@example.com", Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if authed.ID != user.ID || token == "" {
		t.Error("authentication did not return the registered user with a token")
	}

	// The token must resolve back to the user.
	subject, err := utils.ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if subject != user.ID {
		t.Errorf("token subject = %q, want %q", subject, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	req := registerReq()
	req.Username = "alice2"
	_, _, err := svc.Register(ctx, req)
	if !utils.HasErrorCode(err, utils.CodeValidation) {
		t.Errorf("expected VALIDATION_ERROR for duplicate email, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	req := registerReq()
	req.Email = "alice2@example.com"
	_, _, err := svc.Register(ctx, req)
	if !utils.HasErrorCode(err, utils.CodeValidation) {
		t.Errorf("expected VALIDATION_ERROR for duplicate username, got %v", err)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []models.AuthUserRequest{
		{Email: "alice@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "s3cret-pass"},
	}
	for _, req := range tests {
		_, _, err := svc.Authenticate(ctx, req)
		if !utils.HasErrorCode(err, utils.CodeForbidden) {
			t.Errorf("Authenticate(%s): expected FORBIDDEN, got %v", req.Email, err)
		}
	}
}
