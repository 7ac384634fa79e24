package models

import "time"

// MeetingStatus is the booking lifecycle state. CANCELLED is terminal.
type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "SCHEDULED"
	MeetingCancelled MeetingStatus = "CANCELLED"
)

// Meeting is a committed booking of an event template. Meetings are never
// physically deleted; cancellation flips the status and keeps the row.
type Meeting struct {
	ID              string        `bson:"id" json:"id"`
	EventID         string        `bson:"eventId" json:"eventId"`
	UserID          string        `bson:"userId" json:"userId"` // owning host
	GuestName       string        `bson:"guestName" json:"guestName"`
	GuestEmail      string        `bson:"guestEmail" json:"guestEmail"`
	AdditionalInfo  string        `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	StartTime       time.Time     `bson:"startTime" json:"startTime"`
	EndTime         time.Time     `bson:"endTime" json:"endTime"`
	Status          MeetingStatus `bson:"status" json:"status"`
	MeetLink        string        `bson:"meetLink,omitempty" json:"meetLink,omitempty"`
	CalendarEventID string        `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
	CalendarAppType string        `bson:"calendarAppType,omitempty" json:"calendarAppType,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}

// Interval returns the meeting's occupied time range.
func (m *Meeting) Interval() TimeRange {
	return TimeRange{Start: m.StartTime, End: m.EndTime}
}

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// CreateMeetingRequest is the guest-facing booking payload.
type CreateMeetingRequest struct {
	EventID        string `json:"eventId" binding:"required"`
	StartTime      string `json:"startTime" binding:"required"` // RFC 3339
	EndTime        string `json:"endTime" binding:"required"`   // RFC 3339
	GuestName      string `json:"guestName" binding:"required"`
	GuestEmail     string `json:"guestEmail" binding:"required,email"`
	AdditionalInfo string `json:"additionalInfo"`
}
