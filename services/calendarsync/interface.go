package calendarsync

import (
	"context"
	"time"

	"github.com/kanishkk18/events/models"
)

// EventDraft carries everything the provider needs to create the remote
// calendar entry backing a booking.
type EventDraft struct {
	EventID        string
	Title          string
	AdditionalInfo string
	StartTime      time.Time
	EndTime        time.Time
	GuestName      string
	GuestEmail     string
	HostEmail      string
}

// RemoteEvent is the artifact created on the provider's calendar.
type RemoteEvent struct {
	EventID  string
	JoinLink string
}

// CalendarProvider is the sync adapter contract. Implementations must build a
// fresh, stateless API client per call; credentials travel as values, never
// through a shared mutable client.
type CalendarProvider interface {
	// EnsureValidToken returns a usable access token, refreshing and
	// persisting it first when the stored one is expired (or has no known
	// expiry). Returns a PROVIDER_AUTH_ERROR when no refresh token exists or
	// the provider rejects the refresh.
	EnsureValidToken(ctx context.Context, integration *models.Integration) (string, error)
	// CreateRemoteEvent creates a calendar entry spanning the draft's
	// interval with guest and host as attendees and a generated conferencing
	// link. Returns a PROVIDER_SYNC_ERROR on provider-side rejection.
	CreateRemoteEvent(ctx context.Context, accessToken string, draft EventDraft) (*RemoteEvent, error)
	// DeleteRemoteEvent removes a previously created calendar entry.
	DeleteRemoteEvent(ctx context.Context, accessToken, remoteEventID string) error
}
