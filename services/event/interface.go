package event

import (
	"context"

	eventRepo "github.com/kanishkk18/events/database/repository/event"
	userRepo "github.com/kanishkk18/events/database/repository/user"
	"github.com/kanishkk18/events/models"
)

// EventService is thin CRUD over event templates plus the public profile
// lookups. The booking engine only ever reads templates.
type EventService interface {
	CreateEvent(ctx context.Context, userID string, req models.CreateEventRequest) (*models.Event, error)
	ListUserEvents(ctx context.Context, userID string) ([]models.Event, error)
	ListPublicEvents(ctx context.Context, username string) (*models.User, []models.Event, error)
	GetPublicEvent(ctx context.Context, username, slug string) (*models.Event, error)
	TogglePrivacy(ctx context.Context, userID, eventID string) (*models.Event, error)
	DeleteEvent(ctx context.Context, userID, eventID string) error
}

// DefaultEventService implements EventService.
type DefaultEventService struct {
	Repo     eventRepo.EventRepository
	UserRepo userRepo.UserRepository
}
