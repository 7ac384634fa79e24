package event

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns an event title into a URL-safe slug.
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *DefaultEventService) CreateEvent(ctx context.Context, userID string, req models.CreateEventRequest) (*models.Event, error) {
	if !req.LocationType.Valid() {
		return nil, utils.NewValidationError("invalid location type")
	}

	event := &models.Event{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Slug:         slugify(req.Title),
		Duration:     req.Duration,
		LocationType: req.LocationType,
	}
	if err := s.Repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *DefaultEventService) ListUserEvents(ctx context.Context, userID string) ([]models.Event, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultEventService) ListPublicEvents(ctx context.Context, username string) (*models.User, []models.Event, error) {
	user, err := s.UserRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, nil, utils.NewNotFoundError("user not found")
	}

	events, err := s.Repo.ListPublicByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list events: %w", err)
	}
	return user, events, nil
}

func (s *DefaultEventService) GetPublicEvent(ctx context.Context, username, slug string) (*models.Event, error) {
	user, err := s.UserRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError("event not found")
	}

	event, err := s.Repo.GetByUserAndSlug(ctx, user.ID, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil || event.IsPrivate {
		return nil, utils.NewNotFoundError("event not found")
	}
	return event, nil
}

func (s *DefaultEventService) TogglePrivacy(ctx context.Context, userID, eventID string) (*models.Event, error) {
	event, err := s.Repo.TogglePrivacy(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle privacy: %w", err)
	}
	if event == nil {
		return nil, utils.NewNotFoundError("event not found")
	}
	return event, nil
}

func (s *DefaultEventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	if err := s.Repo.Delete(ctx, eventID, userID); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFoundError("event not found")
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
