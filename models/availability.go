package models

import "time"

// DayOfWeek enumerates weekdays as stored in availability rows.
type DayOfWeek string

const (
	DaySunday    DayOfWeek = "SUNDAY"
	DayMonday    DayOfWeek = "MONDAY"
	DayTuesday   DayOfWeek = "TUESDAY"
	DayWednesday DayOfWeek = "WEDNESDAY"
	DayThursday  DayOfWeek = "THURSDAY"
	DayFriday    DayOfWeek = "FRIDAY"
	DaySaturday  DayOfWeek = "SATURDAY"
)

// AllDaysOfWeek lists the weekdays in calendar order, Sunday first.
var AllDaysOfWeek = []DayOfWeek{
	DaySunday, DayMonday, DayTuesday, DayWednesday,
	DayThursday, DayFriday, DaySaturday,
}

// Weekday converts a DayOfWeek to the stdlib time.Weekday.
func (d DayOfWeek) Weekday() (time.Weekday, bool) {
	switch d {
	case DaySunday:
		return time.Sunday, true
	case DayMonday:
		return time.Monday, true
	case DayTuesday:
		return time.Tuesday, true
	case DayWednesday:
		return time.Wednesday, true
	case DayThursday:
		return time.Thursday, true
	case DayFriday:
		return time.Friday, true
	case DaySaturday:
		return time.Saturday, true
	}
	return 0, false
}

// DayOfWeekFromWeekday converts a stdlib weekday to the stored enum.
func DayOfWeekFromWeekday(w time.Weekday) DayOfWeek {
	return AllDaysOfWeek[int(w)%7]
}

// DayAvailability is one weekday rule of a host's recurring schedule.
// Start and end are times of day in "HH:MM" form, detached from any date.
// A host with no rows at all has never configured availability; a row with
// IsAvailable=false means the weekday is configured but closed.
type DayAvailability struct {
	ID          string    `bson:"id" json:"-"`
	UserID      string    `bson:"userId" json:"-"`
	Day         DayOfWeek `bson:"day" json:"day"`
	StartTime   string    `bson:"startTime" json:"startTime"`
	EndTime     string    `bson:"endTime" json:"endTime"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
}

// Availability is a host's full weekly schedule: the slot spacing plus one
// rule per configured weekday.
type Availability struct {
	UserID  string            `bson:"userId" json:"-"`
	TimeGap int               `bson:"timeGap" json:"timeGap"`
	Days    []DayAvailability `bson:"-" json:"days"`
}

// DayFor returns the rule for the given weekday, or nil when not configured.
func (a *Availability) DayFor(day DayOfWeek) *DayAvailability {
	for i := range a.Days {
		if a.Days[i].Day == day {
			return &a.Days[i]
		}
	}
	return nil
}

// UpdateAvailabilityRequest replaces the host's weekly schedule.
type UpdateAvailabilityRequest struct {
	TimeGap int                    `json:"timeGap" binding:"required,min=1"`
	Days    []DayAvailabilityInput `json:"days" binding:"required,dive"`
}

// DayAvailabilityInput is one weekday rule in an update request.
type DayAvailabilityInput struct {
	Day         DayOfWeek `json:"day" binding:"required"`
	StartTime   string    `json:"startTime" binding:"required"`
	EndTime     string    `json:"endTime" binding:"required"`
	IsAvailable bool      `json:"isAvailable"`
}

// AvailableDay is one weekday of a public availability listing: the weekday,
// the concrete date the slots were generated for, and the offered start times
// as "HH:MM" strings.
type AvailableDay struct {
	Day         DayOfWeek `json:"day"`
	Date        string    `json:"date"`
	Slots       []string  `json:"slots"`
	IsAvailable bool      `json:"isAvailable"`
}
