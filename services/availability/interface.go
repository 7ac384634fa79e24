package availability

import (
	"context"
	"time"

	availabilityRepo "github.com/kanishkk18/events/database/repository/availability"
	eventRepo "github.com/kanishkk18/events/database/repository/event"
	meetingRepo "github.com/kanishkk18/events/database/repository/meeting"
	"github.com/kanishkk18/events/models"
)

// AvailabilityService answers schedule queries: the host's own weekly rules
// and the guest-facing slot listings derived from them.
type AvailabilityService interface {
	GetUserAvailability(ctx context.Context, userID string) (*models.Availability, error)
	UpdateUserAvailability(ctx context.Context, userID string, req models.UpdateAvailabilityRequest) error
	// GetEventAvailability lists slots per weekday, each weekday anchored to
	// its nearest future date.
	GetEventAvailability(ctx context.Context, eventID string) ([]models.AvailableDay, error)
	// GetEventAvailabilityForDate lists slots for one concrete calendar date,
	// derived by matching the date's weekday against the host's rules.
	GetEventAvailabilityForDate(ctx context.Context, eventID string, date time.Time) (*models.AvailableDay, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	EventRepo        eventRepo.EventRepository
	MeetingRepo      meetingRepo.MeetingRepository

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
