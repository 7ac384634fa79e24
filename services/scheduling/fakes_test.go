package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/services/calendarsync"
)

type fakeEventRepo struct {
	events map[string]*models.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) GetByUserAndSlug(ctx context.Context, userID, slug string) (*models.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListByUser(ctx context.Context, userID string) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListPublicByUser(ctx context.Context, userID string) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) TogglePrivacy(ctx context.Context, id, userID string) (*models.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id, userID string) error {
	return nil
}

// fakeMeetingRepo is safe for concurrent use; the booking race test hits it
// from multiple goroutines.
type fakeMeetingRepo struct {
	mu       sync.Mutex
	meetings []models.Meeting
}

func (f *fakeMeetingRepo) Insert(ctx context.Context, meeting *models.Meeting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	f.meetings = append(f.meetings, *meeting)
	return nil
}

func (f *fakeMeetingRepo) GetByIDForHost(ctx context.Context, id, userID string) (*models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.meetings {
		if f.meetings[i].ID == id && f.meetings[i].UserID == userID {
			m := f.meetings[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMeetingRepo) ListScheduledInRange(ctx context.Context, userID string, from, to time.Time) ([]models.Meeting, error) {
	return f.ListScheduledOverlapping(ctx, userID, from, to)
}

func (f *fakeMeetingRepo) ListScheduledOverlapping(ctx context.Context, userID string, start, end time.Time) ([]models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Meeting
	for _, m := range f.meetings {
		if m.UserID == userID && m.Status == models.MeetingScheduled &&
			m.StartTime.Before(end) && m.EndTime.After(start) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) ListByHost(ctx context.Context, userID string) ([]models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Meeting, len(f.meetings))
	copy(out, f.meetings)
	return out, nil
}

func (f *fakeMeetingRepo) CancelIfScheduled(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.meetings {
		if f.meetings[i].ID == id && f.meetings[i].Status == models.MeetingScheduled {
			f.meetings[i].Status = models.MeetingCancelled
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMeetingRepo) scheduledCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.meetings {
		if m.Status == models.MeetingScheduled {
			n++
		}
	}
	return n
}

type fakeIntegrationRepo struct {
	integration *models.Integration
}

func (f *fakeIntegrationRepo) GetByUserAndType(ctx context.Context, userID string, appType models.IntegrationAppType) (*models.Integration, error) {
	if f.integration != nil && f.integration.UserID == userID && f.integration.AppType == appType {
		return f.integration, nil
	}
	return nil, nil
}

func (f *fakeIntegrationRepo) GetByID(ctx context.Context, id string) (*models.Integration, error) {
	if f.integration != nil && f.integration.ID == id {
		return f.integration, nil
	}
	return nil, nil
}

func (f *fakeIntegrationRepo) Upsert(ctx context.Context, integration *models.Integration) error {
	f.integration = integration
	return nil
}

func (f *fakeIntegrationRepo) UpdateTokens(ctx context.Context, id, accessToken string, expiry time.Time) error {
	if f.integration != nil && f.integration.ID == id {
		f.integration.AccessToken = accessToken
		ms := expiry.UnixMilli()
		f.integration.ExpiryDate = &ms
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
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

// fakeCalendar counts provider calls and can be told to fail.
type fakeCalendar struct {
	mu          sync.Mutex
	createCalls int
	deleteCalls int
	failCreate  bool
	failDelete  bool
	failToken   bool
}

var errProvider = errors.New("provider unavailable")

func (f *fakeCalendar) EnsureValidToken(ctx context.Context, integration *models.Integration) (string, error) {
	if f.failToken {
		return "", errProvider
	}
	return integration.AccessToken, nil
}

func (f *fakeCalendar) CreateRemoteEvent(ctx context.Context, accessToken string, draft calendarsync.EventDraft) (*calendarsync.RemoteEvent, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	if f.failCreate {
		return nil, errProvider
	}
	return &calendarsync.RemoteEvent{
		EventID:  "remote-" + draft.EventID,
		JoinLink: "https://meet.example.com/" + draft.EventID,
	}, nil
}

func (f *fakeCalendar) DeleteRemoteEvent(ctx context.Context, accessToken, remoteEventID string) error {
	f.mu.Lock()
	f.deleteCalls++
	f.mu.Unlock()
	if f.failDelete {
		return errProvider
	}
	return nil
}
