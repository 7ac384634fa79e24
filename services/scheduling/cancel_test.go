package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"
)

func seedMeeting(meetings *fakeMeetingRepo, status models.MeetingStatus, remoteID string) models.Meeting {
	m := models.Meeting{
		ID: "m-1", EventID: "ev-1", UserID: "host-1",
		StartTime:       time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 3, 3, 10, 30, 0, 0, time.UTC),
		Status:          status,
		CalendarEventID: remoteID,
		CalendarAppType: string(models.AppGoogleMeetAndCalendar),
	}
	meetings.meetings = append(meetings.meetings, m)
	return m
}

func TestCancelMeetingSuccess(t *testing.T) {
	engine, meetings, calendar := newTestEngine(true)
	seedMeeting(meetings, models.MeetingScheduled, "remote-1")

	if err := engine.CancelMeeting(context.Background(), "host-1", "m-1"); err != nil {
		t.Fatalf("CancelMeeting: %v", err)
	}
	if calendar.deleteCalls != 1 {
		t.Errorf("provider delete calls = %d, want 1", calendar.deleteCalls)
	}
	stored, _ := meetings.GetByIDForHost(context.Background(), "m-1", "host-1")
	if stored.Status != models.MeetingCancelled {
		t.Errorf("status = %s, want CANCELLED", stored.Status)
	}
}

func TestCancelMeetingNotFound(t *testing.T) {
	engine, _, _ := newTestEngine(true)

	err := engine.CancelMeeting(context.Background(), "host-1", "nope")
	if !utils.HasErrorCode(err, utils.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestCancelMeetingWrongHost(t *testing.T) {
	engine, meetings, _ := newTestEngine(true)
	seedMeeting(meetings, models.MeetingScheduled, "remote-1")

	// Another host's lookup must not see the meeting at all.
	err := engine.CancelMeeting(context.Background(), "host-2", "m-1")
	if !utils.HasErrorCode(err, utils.CodeNotFound) {
		t.Errorf("expected NOT_FOUND for foreign host, got %v", err)
	}
}

func TestCancelMeetingIdempotent(t *testing.T) {
	engine, meetings, calendar := newTestEngine(true)
	seedMeeting(meetings, models.MeetingCancelled, "remote-1")

	if err := engine.CancelMeeting(context.Background(), "host-1", "m-1"); err != nil {
		t.Errorf("cancelling an already-cancelled meeting should succeed, got %v", err)
	}
	if calendar.deleteCalls != 0 {
		t.Errorf("provider delete calls = %d, want 0", calendar.deleteCalls)
	}
}

func TestCancelMeetingRemoteDeleteFailureKeepsScheduled(t *testing.T) {
	engine, meetings, calendar := newTestEngine(true)
	calendar.failDelete = true
	seedMeeting(meetings, models.MeetingScheduled, "remote-1")

	err := engine.CancelMeeting(context.Background(), "host-1", "m-1")
	if err == nil {
		t.Fatal("expected remote delete failure to abort cancellation")
	}
	stored, _ := meetings.GetByIDForHost(context.Background(), "m-1", "host-1")
	if stored.Status != models.MeetingScheduled {
		t.Errorf("status = %s, want SCHEDULED after aborted cancel", stored.Status)
	}
}

func TestCancelMeetingWithoutIntegrationCancelsLocally(t *testing.T) {
	// Host disconnected the provider since booking; the remote entry is
	// unreachable and local cancellation proceeds anyway.
	engine, meetings, calendar := newTestEngine(false)
	seedMeeting(meetings, models.MeetingScheduled, "remote-1")

	if err := engine.CancelMeeting(context.Background(), "host-1", "m-1"); err != nil {
		t.Fatalf("CancelMeeting: %v", err)
	}
	if calendar.deleteCalls != 0 {
		t.Errorf("provider delete calls = %d, want 0 without integration", calendar.deleteCalls)
	}
	stored, _ := meetings.GetByIDForHost(context.Background(), "m-1", "host-1")
	if stored.Status != models.MeetingCancelled {
		t.Errorf("status = %s, want CANCELLED", stored.Status)
	}
}

func TestCancelMeetingWithoutRemoteArtifact(t *testing.T) {
	engine, meetings, calendar := newTestEngine(true)
	seedMeeting(meetings, models.MeetingScheduled, "")

	if err := engine.CancelMeeting(context.Background(), "host-1", "m-1"); err != nil {
		t.Fatalf("CancelMeeting: %v", err)
	}
	if calendar.deleteCalls != 0 {
		t.Errorf("provider delete calls = %d, want 0 for a meeting with no remote entry", calendar.deleteCalls)
	}
}
