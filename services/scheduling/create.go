package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/services/calendarsync"
	"github.com/kanishkk18/events/utils"

	"go.uber.org/zap"
)

// CreateMeeting books a slot. The conflict check runs again here, at commit
// time under the per-host lock, because the slot list the guest saw may be
// stale by the time they confirm. The remote calendar call happens inside the
// critical section so a provider failure aborts before anything is persisted.
func (e *DefaultSchedulingEngine) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*models.Meeting, error) {
	logger := utils.GetLogger()
	now := e.now()

	if input.StartTime.Before(now) {
		return nil, utils.NewValidationError("start time is in the past")
	}

	// Re-resolve the template: it must still exist and be bookable at the
	// moment of booking, not merely when the guest viewed availability.
	event, err := e.EventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return nil, utils.NewNotFoundError("event not found")
	}
	if event.IsPrivate {
		return nil, utils.NewForbiddenError("event is not open for booking")
	}
	if !event.LocationType.Valid() {
		return nil, utils.NewValidationError("invalid location type")
	}
	if !event.LocationType.ProviderSupported() {
		return nil, utils.NewValidationError(fmt.Sprintf("unsupported calendar provider: %s", event.LocationType))
	}

	expectedEnd := input.StartTime.Add(time.Duration(event.Duration) * time.Minute)
	if !input.EndTime.IsZero() && !input.EndTime.Equal(expectedEnd) {
		return nil, utils.NewValidationError("end time does not match event duration")
	}

	host, err := e.UserRepo.GetByID(ctx, event.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch host: %w", err)
	}
	if host == nil {
		return nil, utils.NewNotFoundError("host not found")
	}

	var integration *models.Integration
	if event.LocationType.RequiresRemoteArtifact() {
		integration, err = e.IntegrationRepo.GetByUserAndType(ctx, event.UserID, models.IntegrationAppType(event.LocationType))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch integration: %w", err)
		}
		if integration == nil {
			return nil, utils.NewNotFoundError("no video conferencing integration found")
		}
	}

	// Lock acquisition is bounded so a stuck holder surfaces as a conflict
	// instead of queueing guests indefinitely.
	lockCtx, cancelLock := context.WithTimeout(ctx, 10*time.Second)
	defer cancelLock()
	release, err := e.Locks.Acquire(lockCtx, event.UserID)
	if err != nil {
		return nil, utils.NewConflictError("slot is currently being booked, please retry")
	}
	defer release()

	conflicts, err := e.MeetingRepo.ListScheduledOverlapping(ctx, event.UserID, input.StartTime, expectedEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, utils.NewConflictError("slot no longer available, please pick another")
	}

	meeting := &models.Meeting{
		EventID:        event.ID,
		UserID:         event.UserID,
		GuestName:      input.GuestName,
		GuestEmail:     input.GuestEmail,
		AdditionalInfo: input.AdditionalInfo,
		StartTime:      input.StartTime,
		EndTime:        expectedEnd,
		Status:         models.MeetingScheduled,
		CreatedAt:      now,
	}

	if integration != nil {
		providerCtx, cancel := context.WithTimeout(ctx, e.providerTimeout())
		defer cancel()

		accessToken, err := e.Calendar.EnsureValidToken(providerCtx, integration)
		if err != nil {
			return nil, err
		}

		remote, err := e.Calendar.CreateRemoteEvent(providerCtx, accessToken, calendarsync.EventDraft{
			EventID:        event.ID,
			Title:          event.Title,
			AdditionalInfo: input.AdditionalInfo,
			StartTime:      input.StartTime,
			EndTime:        expectedEnd,
			GuestName:      input.GuestName,
			GuestEmail:     input.GuestEmail,
			HostEmail:      host.Email,
		})
		if err != nil {
			// Nothing was persisted; the booking simply did not happen.
			return nil, err
		}

		meeting.MeetLink = remote.JoinLink
		meeting.CalendarEventID = remote.EventID
		meeting.CalendarAppType = string(integration.AppType)
	}

	if err := e.MeetingRepo.Insert(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to persist meeting: %w", err)
	}

	logger.Info("meeting scheduled",
		zap.String("meetingID", meeting.ID),
		zap.String("eventID", event.ID),
		zap.String("hostID", event.UserID),
		zap.Time("startTime", meeting.StartTime))
	return meeting, nil
}
