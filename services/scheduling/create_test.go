package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"
)

func testNow() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func newTestEngine(withIntegration bool) (*DefaultSchedulingEngine, *fakeMeetingRepo, *fakeCalendar) {
	events := map[string]*models.Event{
		"ev-1": {
			ID: "ev-1", UserID: "host-1", Title: "Intro Call",
			Duration: 30, LocationType: models.LocationGoogleMeetAndCalendar,
		},
	}
	users := map[string]*models.User{
		"host-1": {ID: "host-1", Email: "host@example.com", Username: "host"},
	}

	integrations := &fakeIntegrationRepo{}
	if withIntegration {
		integrations.integration = &models.Integration{
			ID: "int-1", UserID: "host-1",
			AppType:     models.AppGoogleMeetAndCalendar,
			AccessToken: "token-1",
		}
	}

	meetings := &fakeMeetingRepo{}
	calendar := &fakeCalendar{}
	engine := &DefaultSchedulingEngine{
		EventRepo:       &fakeEventRepo{events: events},
		MeetingRepo:     meetings,
		IntegrationRepo: integrations,
		UserRepo:        &fakeUserRepo{users: users},
		Calendar:        calendar,
		Locks:           NewMemoryHostLocker(),
		Now:             testNow,
	}
	return engine, meetings, calendar
}

func validInput() CreateMeetingInput {
	start := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	return CreateMeetingInput{
		EventID:    "ev-1",
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		GuestName:  "Guest",
		GuestEmail: "guest@example.com",
	}
}

func TestCreateMeetingSuccess(t *testing.T) {
	engine, meetings, calendar := newTestEngine(true)

	meeting, err := engine.CreateMeeting(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	if meeting.Status != models.MeetingScheduled {
		t.Errorf("status = %s, want SCHEDULED", meeting.Status)
	}
	if meeting.MeetLink == "" || meeting.CalendarEventID == "" {
		t.Errorf("expected remote artifacts on the meeting, got link=%q remoteID=%q",
			meeting.MeetLink, meeting.CalendarEventID)
	}
	if meeting.CalendarAppType != string(models.AppGoogleMeetAndCalendar) {
		t.Errorf("calendarAppType = %q", meeting.CalendarAppType)
	}
	if calendar.createCalls != 1 {
		t.Errorf("provider create calls = %d, want 1", calendar.createCalls)
	}
	if got := meetings.scheduledCount(); got != 1 {
		t.Errorf("persisted meetings = %d, want 1", got)
	}
}

func TestCreateMeetingPastStart(t *testing.T) {
	engine, _, _ := newTestEngine(true)

	input := validInput()
	input.StartTime = testNow().Add(-time.Hour)
	input.EndTime = input.StartTime.Add(30 * time.Minute)

	_, err := engine.CreateMeeting(context.Background(), input)
	if !utils.HasErrorCode(err, utils.CodeValidation) {
		t.Errorf("expected VALIDATION_ERROR for past start, got %v", err)
	}
}

func TestCreateMeetingUnknownEvent(t *testing.T) {
	engine, _, _ := newTestEngine(true)

	input := validInput()
	input.EventID = "nope"

	_, err := engine.CreateMeeting(context.Background(), input)
	if !utils.HasErrorCode(err, utils.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateMeetingPrivateEvent(t *testing.T) {
	engine, _, _ := newTestEngine(true)
	engine.EventRepo.(*fakeEventRepo).events["ev-1"].IsPrivate = true

	_, err := engine.CreateMeeting(context.Background(), validInput())
	if !utils.HasErrorCode(err, utils.CodeForbidden) {
		t.Errorf("expected FORBIDDEN for private event, got %v", err)
	}
}

func TestCreateMeetingEndTimeMismatch(t *testing.T) {
	engine, _, _ := newTestEngine(true)

	input := validInput()
	input.EndTime = input.StartTime.Add(45 * time.Minute)

	_, err := engine.CreateMeeting(context.Background(), input)
	if !utils.HasErrorCode(err, utils.CodeValidation) {
		t.Errorf("expected VALIDATION_ERROR for mismatched end time, got %v", err)
	}
}

func TestCreateMeetingUnsupportedProvider(t *testing.T) {
	for _, loc := range []models.EventLocationType{
		models.LocationZoomMeeting,
		models.LocationOutlookCalendar,
	} {
		t.Run(string(loc), func(t *testing.T) {
			engine, meetings, calendar := newTestEngine(true)
			engine.EventRepo.(*fakeEventRepo).events["ev-1"].LocationType = loc

			_, err := engine.CreateMeeting(context.Background(), validInput())
			if !utils.HasErrorCode(err, utils.CodeValidation) {
				t.Errorf("expected VALIDATION_ERROR for %s, got %v", loc, err)
			}
			if got := meetings.scheduledCount(); got != 0 {
				t.Errorf("persisted meetings = %d, want 0", got)
			}
			if calendar.createCalls != 0 {
				t.Errorf("provider called for %s: %d calls", loc, calendar.createCalls)
			}
		})
	}
}

func TestCreateMeetingMissingIntegration(t *testing.T) {
	engine, meetings, _ := newTestEngine(false)

	_, err := engine.CreateMeeting(context.Background(), validInput())
	if !utils.HasErrorCode(err, utils.CodeNotFound) {
		t.Errorf("expected NOT_FOUND for missing integration, got %v", err)
	}
	if got := meetings.scheduledCount(); got != 0 {
		t.Errorf("persisted meetings = %d, want 0", got)
	}
}

func TestCreateMeetingConflictAtCommit(t *testing.T) {
	engine, meetings, calendar := newTestEngine(true)

	input := validInput()
	meetings.meetings = append(meetings.meetings, models.Meeting{
		ID: "m-existing", UserID: "host-1", Status: models.MeetingScheduled,
		StartTime: input.StartTime.Add(15 * time.Minute),
		EndTime:   input.StartTime.Add(45 * time.Minute),
	})

	_, err := engine.CreateMeeting(context.Background(), input)
	if !utils.HasErrorCode(err, utils.CodeConflict) {
		t.Errorf("expected CONFLICT, got %v", err)
	}
	if calendar.createCalls != 0 {
		t.Errorf("provider called despite conflict: %d calls", calendar.createCalls)
	}
}

func TestCreateMeetingBackToBackIsNotConflict(t *testing.T) {
	engine, meetings, _ := newTestEngine(true)

	input := validInput()
	meetings.meetings = append(meetings.meetings, models.Meeting{
		ID: "m-existing", UserID: "host-1", Status: models.MeetingScheduled,
		StartTime: input.StartTime.Add(-30 * time.Minute),
		EndTime:   input.StartTime,
	})

	if _, err := engine.CreateMeeting(context.Background(), input); err != nil {
		t.Errorf("back-to-back booking rejected: %v", err)
	}
}

func TestCreateMeetingCancelledDoesNotBlock(t *testing.T) {
	engine, meetings, _ := newTestEngine(true)

	input := validInput()
	meetings.meetings = append(meetings.meetings, models.Meeting{
		ID: "m-cancelled", UserID: "host-1", Status: models.MeetingCancelled,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})

	if _, err := engine.CreateMeeting(context.Background(), input); err != nil {
		t.Errorf("cancelled meeting blocked the slot: %v", err)
	}
}

func TestCreateMeetingProviderFailureLeavesNothingPersisted(t *testing.T) {
	engine, meetings, calendar := newTestEngine(true)
	calendar.failCreate = true

	_, err := engine.CreateMeeting(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected provider failure to abort booking")
	}
	if !errors.Is(err, errProvider) {
		t.Errorf("unexpected error: %v", err)
	}
	if got := meetings.scheduledCount(); got != 0 {
		t.Errorf("persisted meetings = %d, want 0 after provider failure", got)
	}
}

func TestCreateMeetingRaceAdmitsExactlyOne(t *testing.T) {
	engine, meetings, _ := newTestEngine(true)
	input := validInput()

	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = engine.CreateMeeting(context.Background(), input)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case utils.HasErrorCode(err, utils.CodeConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
	if conflicts != attempts-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, attempts-1)
	}
	if got := meetings.scheduledCount(); got != 1 {
		t.Errorf("persisted meetings = %d, want 1", got)
	}
}
