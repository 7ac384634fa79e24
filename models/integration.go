package models

import "time"

// IntegrationAppType identifies an external calendar/conferencing provider.
type IntegrationAppType string

const (
	AppGoogleMeetAndCalendar IntegrationAppType = "GOOGLE_MEET_AND_CALENDAR"
	AppZoomMeeting           IntegrationAppType = "ZOOM_MEETING"
	AppOutlookCalendar       IntegrationAppType = "OUTLOOK_CALENDAR"
)

// Valid reports whether the app type is a known enum value.
func (t IntegrationAppType) Valid() bool {
	switch t {
	case AppGoogleMeetAndCalendar, AppZoomMeeting, AppOutlookCalendar:
		return true
	}
	return false
}

// Integration holds a host's OAuth token pair for one provider. There is at
// most one row per (host, provider). ExpiryDate is unix milliseconds; nil is
// treated as always expired, forcing a refresh before use.
type Integration struct {
	ID           string             `bson:"id" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	AppType      IntegrationAppType `bson:"appType" json:"appType"`
	AccessToken  string             `bson:"accessToken" json:"-"`
	RefreshToken *string            `bson:"refreshToken,omitempty" json:"-"`
	ExpiryDate   *int64             `bson:"expiryDate,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Expired reports whether the access token must be refreshed at the given
// instant. A nil expiry always counts as expired.
func (i *Integration) Expired(now time.Time) bool {
	if i.ExpiryDate == nil {
		return true
	}
	return now.UnixMilli() >= *i.ExpiryDate
}
