package event

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"
)

type fakeEventRepo struct {
	events map[string]*models.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) GetByUserAndSlug(ctx context.Context, userID, slug string) (*models.Event, error) {
	for _, e := range f.events {
		if e.UserID == userID && e.Slug == slug {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) ListByUser(ctx context.Context, userID string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListPublicByUser(ctx context.Context, userID string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if e.UserID == userID && !e.IsPrivate {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) TogglePrivacy(ctx context.Context, id, userID string) (*models.Event, error) {
	e := f.events[id]
	if e == nil || e.UserID != userID {
		return nil, nil
	}
	e.IsPrivate = !e.IsPrivate
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id, userID string) error {
	delete(f.events, id)
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

func newTestService() *DefaultEventService {
	return &DefaultEventService{
		Repo: &fakeEventRepo{events: map[string]*models.Event{}},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"host-1": {ID: "host-1", Username: "alice", Email: "alice@example.com"},
		}},
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Intro Call", "intro-call"},
		{"  30 Minute  Chat!  ", "30-minute-chat"},
		{"Déjà Vu Session", "d-j-vu-session"},
		{"---", ""},
	}
	for _, tc := range tests {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCreateEventValidatesLocationType(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateEvent(context.Background(), "host-1", models.CreateEventRequest{
		Title: "Intro", Duration: 30, LocationType: "CARRIER_PIGEON",
	})
	if !utils.HasErrorCode(err, utils.CodeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateEventSlugsTitle(t *testing.T) {
	svc := newTestService()

	event, err := svc.CreateEvent(context.Background(), "host-1", models.CreateEventRequest{
		Title: "Intro Call", Duration: 30, LocationType: models.LocationGoogleMeetAndCalendar,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.Slug != "intro-call" {
		t.Errorf("slug = %q, want intro-call", event.Slug)
	}
	if event.IsPrivate {
		t.Error("new events should be public by default")
	}
}

func TestGetPublicEventHidesPrivate(t *testing.T) {
	svc := newTestService()

	event, err := svc.CreateEvent(context.Background(), "host-1", models.CreateEventRequest{
		Title: "Intro Call", Duration: 30, LocationType: models.LocationGoogleMeetAndCalendar,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if _, err := svc.GetPublicEvent(context.Background(), "alice", "intro-call"); err != nil {
		t.Errorf("public event should be fetchable: %v", err)
	}

	if _, err := svc.TogglePrivacy(context.Background(), "host-1", event.ID); err != nil {
		t.Fatalf("TogglePrivacy: %v", err)
	}

	_, err = svc.GetPublicEvent(context.Background(), "alice", "intro-call")
	if !utils.HasErrorCode(err, utils.CodeNotFound) {
		t.Errorf("private event must surface as NOT_FOUND, got %v", err)
	}
}

func TestListPublicEventsExcludesPrivate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, "host-1", models.CreateEventRequest{
		Title: "Public One", Duration: 30, LocationType: models.LocationGoogleMeetAndCalendar,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	hidden, err := svc.CreateEvent(ctx, "host-1", models.CreateEventRequest{
		Title: "Hidden One", Duration: 30, LocationType: models.LocationGoogleMeetAndCalendar,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := svc.TogglePrivacy(ctx, "host-1", hidden.ID); err != nil {
		t.Fatalf("TogglePrivacy: %v", err)
	}

	host, events, err := svc.ListPublicEvents(ctx, "alice")
	if err != nil {
		t.Fatalf("ListPublicEvents: %v", err)
	}
	if host.Username != "alice" {
		t.Errorf("host = %q, want alice", host.Username)
	}
	if len(events) != 1 || events[0].Slug != "public-one" {
		t.Errorf("events = %v, want only public-one", events)
	}
}

func TestListPublicEventsUnknownUser(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ListPublicEvents(context.Background(), "nobody")
	if !utils.HasErrorCode(err, utils.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestTogglePrivacyWrongOwner(t *testing.T) {
	svc := newTestService()

	event, err := svc.CreateEvent(context.Background(), "host-1", models.CreateEventRequest{
		Title: "Intro", Duration: 30, LocationType: models.LocationGoogleMeetAndCalendar,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	_, err = svc.TogglePrivacy(context.Background(), "host-2", event.ID)
	if !utils.HasErrorCode(err, utils.CodeNotFound) {
		t.Errorf("expected NOT_FOUND for foreign owner, got %v", err)
	}
}
