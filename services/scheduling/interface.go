package scheduling

import (
	"context"
	"time"

	eventRepo "github.com/kanishkk18/events/database/repository/event"
	integrationRepo "github.com/kanishkk18/events/database/repository/integration"
	meetingRepo "github.com/kanishkk18/events/database/repository/meeting"
	userRepo "github.com/kanishkk18/events/database/repository/user"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/services/calendarsync"
)

// CreateMeetingInput is the validated booking request handed to the engine.
type CreateMeetingInput struct {
	EventID        string
	StartTime      time.Time
	EndTime        time.Time
	GuestName      string
	GuestEmail     string
	AdditionalInfo string
}

// SchedulingEngine drives the booking lifecycle: validation, commit-time
// conflict re-verification under the host lock, remote calendar sync, and
// persistence of the state transitions.
type SchedulingEngine interface {
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*models.Meeting, error)
	CancelMeeting(ctx context.Context, hostID, meetingID string) error
}

// DefaultSchedulingEngine implements SchedulingEngine.
type DefaultSchedulingEngine struct {
	EventRepo       eventRepo.EventRepository
	MeetingRepo     meetingRepo.MeetingRepository
	IntegrationRepo integrationRepo.IntegrationRepository
	UserRepo        userRepo.UserRepository
	Calendar        calendarsync.CalendarProvider
	Locks           HostLocker

	// ProviderTimeout bounds each remote calendar call. Zero means the
	// default of 30 seconds.
	ProviderTimeout time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultSchedulingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultSchedulingEngine) providerTimeout() time.Duration {
	if e.ProviderTimeout > 0 {
		return e.ProviderTimeout
	}
	return 30 * time.Second
}
