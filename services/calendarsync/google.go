package calendarsync

import (
	"context"
	"fmt"
	"time"

	integrationRepo "github.com/kanishkk18/events/database/repository/integration"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarProvider implements CalendarProvider against the Google
// Calendar v3 API. A calendar.Service is constructed per call from a static
// token source, so concurrent requests never share mutable credentials.
type GoogleCalendarProvider struct {
	IntegrationRepo integrationRepo.IntegrationRepository
	OAuth           *oauth2.Config

	// refresh is swappable in tests; defaults to an oauth2 token source
	// exchange against the real endpoint.
	refresh func(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// NewGoogleCalendarProvider constructs the production adapter.
func NewGoogleCalendarProvider(repo integrationRepo.IntegrationRepository, oauthCfg *oauth2.Config) *GoogleCalendarProvider {
	p := &GoogleCalendarProvider{
		IntegrationRepo: repo,
		OAuth:           oauthCfg,
	}
	p.refresh = func(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
		src := p.OAuth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
		return src.Token()
	}
	return p
}

func (p *GoogleCalendarProvider) EnsureValidToken(ctx context.Context, integration *models.Integration) (string, error) {
	if !integration.Expired(time.Now()) {
		return integration.AccessToken, nil
	}
	return p.RefreshAccessToken(ctx, integration)
}

// RefreshAccessToken exchanges the refresh token for a new access token and
// persists it before returning, so concurrent requests and other instances
// see the fresh token instead of repeating the exchange.
func (p *GoogleCalendarProvider) RefreshAccessToken(ctx context.Context, integration *models.Integration) (string, error) {
	logger := utils.GetLogger()

	if integration.RefreshToken == nil || *integration.RefreshToken == "" {
		return "", utils.NewProviderAuthError("no refresh token available")
	}

	token, err := p.refresh(ctx, *integration.RefreshToken)
	if err != nil {
		logger.Error("google token refresh rejected",
			zap.String("integrationID", integration.ID), zap.Error(err))
		return "", utils.NewProviderAuthError("token refresh rejected by provider")
	}

	if err := p.IntegrationRepo.UpdateTokens(ctx, integration.ID, token.AccessToken, token.Expiry); err != nil {
		return "", fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	integration.AccessToken = token.AccessToken
	expiry := token.Expiry.UnixMilli()
	integration.ExpiryDate = &expiry

	logger.Debug("google access token refreshed", zap.String("integrationID", integration.ID))
	return token.AccessToken, nil
}

// calendarService builds a stateless per-call API client.
func calendarService(ctx context.Context, accessToken string) (*calendar.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return calendar.NewService(ctx, option.WithTokenSource(src))
}

func (p *GoogleCalendarProvider) CreateRemoteEvent(ctx context.Context, accessToken string, draft EventDraft) (*RemoteEvent, error) {
	logger := utils.GetLogger()

	svc, err := calendarService(ctx, accessToken)
	if err != nil {
		return nil, utils.NewProviderSyncError("failed to build calendar client")
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("%s - %s", draft.GuestName, draft.Title),
		Description: draft.AdditionalInfo,
		Start:       &calendar.EventDateTime{DateTime: draft.StartTime.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: draft.EndTime.Format(time.RFC3339)},
		Attendees: []*calendar.EventAttendee{
			{Email: draft.GuestEmail},
			{Email: draft.HostEmail},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: fmt.Sprintf("%s-%d", draft.EventID, time.Now().UnixMilli()),
			},
		},
	}

	created, err := svc.Events.Insert("primary", event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		logger.Error("google calendar event insert failed",
			zap.String("eventID", draft.EventID), zap.Error(err))
		return nil, utils.NewProviderSyncError("calendar event creation rejected")
	}

	return &RemoteEvent{EventID: created.Id, JoinLink: created.HangoutLink}, nil
}

func (p *GoogleCalendarProvider) DeleteRemoteEvent(ctx context.Context, accessToken, remoteEventID string) error {
	logger := utils.GetLogger()

	svc, err := calendarService(ctx, accessToken)
	if err != nil {
		return utils.NewProviderSyncError("failed to build calendar client")
	}

	if err := svc.Events.Delete("primary", remoteEventID).Context(ctx).Do(); err != nil {
		logger.Error("google calendar event delete failed",
			zap.String("remoteEventID", remoteEventID), zap.Error(err))
		return utils.NewProviderSyncError("calendar event deletion rejected")
	}
	return nil
}
