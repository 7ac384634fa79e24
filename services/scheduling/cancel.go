package scheduling

import (
	"context"
	"fmt"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.uber.org/zap"
)

// CancelMeeting transitions a booking to CANCELLED. The remote calendar entry
// is deleted first; a provider failure aborts the cancellation and the
// booking stays SCHEDULED rather than guessing at remote state. Cancelling an
// already-cancelled meeting is a no-op success.
func (e *DefaultSchedulingEngine) CancelMeeting(ctx context.Context, hostID, meetingID string) error {
	logger := utils.GetLogger()

	meeting, err := e.MeetingRepo.GetByIDForHost(ctx, meetingID, hostID)
	if err != nil {
		return fmt.Errorf("failed to fetch meeting: %w", err)
	}
	if meeting == nil {
		return utils.NewNotFoundError("meeting not found")
	}
	if meeting.Status == models.MeetingCancelled {
		return nil
	}

	if meeting.CalendarEventID != "" {
		integration, err := e.IntegrationRepo.GetByUserAndType(ctx, meeting.UserID, models.IntegrationAppType(meeting.CalendarAppType))
		if err != nil {
			return fmt.Errorf("failed to fetch integration: %w", err)
		}
		// A host may have disconnected the integration since booking; the
		// remote entry is then unreachable and local cancellation proceeds.
		if integration != nil {
			providerCtx, cancel := context.WithTimeout(ctx, e.providerTimeout())
			defer cancel()

			accessToken, err := e.Calendar.EnsureValidToken(providerCtx, integration)
			if err != nil {
				return err
			}
			if err := e.Calendar.DeleteRemoteEvent(providerCtx, accessToken, meeting.CalendarEventID); err != nil {
				return err
			}
		} else {
			logger.Warn("cancelling meeting without integration; remote event left in place",
				zap.String("meetingID", meeting.ID),
				zap.String("remoteEventID", meeting.CalendarEventID))
		}
	}

	transitioned, err := e.MeetingRepo.CancelIfScheduled(ctx, meeting.ID)
	if err != nil {
		return fmt.Errorf("failed to update meeting status: %w", err)
	}
	if !transitioned {
		// Lost a race with another cancel; the meeting is already CANCELLED,
		// which is the outcome the caller wanted.
		logger.Debug("meeting already cancelled", zap.String("meetingID", meeting.ID))
		return nil
	}

	logger.Info("meeting cancelled",
		zap.String("meetingID", meeting.ID),
		zap.String("hostID", hostID))
	return nil
}
