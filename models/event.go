package models

import "time"

// EventLocationType identifies which external provider, if any, must back a
// booking made against the template.
type EventLocationType string

const (
	LocationGoogleMeetAndCalendar EventLocationType = "GOOGLE_MEET_AND_CALENDAR"
	LocationZoomMeeting           EventLocationType = "ZOOM_MEETING"
	LocationOutlookCalendar       EventLocationType = "OUTLOOK_CALENDAR"
)

// Valid reports whether the location type is a known enum value.
func (t EventLocationType) Valid() bool {
	switch t {
	case LocationGoogleMeetAndCalendar, LocationZoomMeeting, LocationOutlookCalendar:
		return true
	}
	return false
}

// RequiresRemoteArtifact reports whether bookings against this location type
// must be backed by a remote calendar event and join link.
func (t EventLocationType) RequiresRemoteArtifact() bool {
	return t == LocationGoogleMeetAndCalendar
}

// ProviderSupported reports whether the system can fulfil bookings for this
// location type. Zoom and Outlook templates can be stored but no provider
// backs them yet, so bookings against them are rejected.
func (t EventLocationType) ProviderSupported() bool {
	return t == LocationGoogleMeetAndCalendar
}

// Event is a bookable event template owned by a host.
type Event struct {
	ID           string            `bson:"id" json:"id"`
	UserID       string            `bson:"userId" json:"userId"`
	Title        string            `bson:"title" json:"title"`
	Description  string            `bson:"description,omitempty" json:"description,omitempty"`
	Slug         string            `bson:"slug" json:"slug"`
	Duration     int               `bson:"duration" json:"duration"` // minutes
	LocationType EventLocationType `bson:"locationType" json:"locationType"`
	IsPrivate    bool              `bson:"isPrivate" json:"isPrivate"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
}

// CreateEventRequest is the payload for creating an event template.
type CreateEventRequest struct {
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description"`
	Duration     int               `json:"duration" binding:"required,min=1"`
	LocationType EventLocationType `json:"locationType" binding:"required"`
}
