package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kanishkk18/events/models"
)

// DefaultTimeGap is the slot spacing applied when a host's schedule carries
// no usable gap value.
const DefaultTimeGap = 30

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count as overlap, so a
// meeting ending exactly when a candidate starts never excludes it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// conflictsWithAny reports whether [start, end) overlaps any busy interval.
func conflictsWithAny(start, end time.Time, busy []models.TimeRange) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// ParseClock parses an "HH:MM" time of day into hour and minute.
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time of day %q", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}

// anchorOnDate projects an "HH:MM" time of day onto a concrete calendar date.
func anchorOnDate(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// NextDateForDay returns the nearest future occurrence of the weekday,
// counting today itself as the nearest occurrence of today's weekday.
func NextDateForDay(now time.Time, day models.DayOfWeek) (time.Time, error) {
	target, ok := day.Weekday()
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday %q", day)
	}
	daysUntil := (int(target) - int(now.Weekday()) + 7) % 7
	next := now.AddDate(0, 0, daysUntil)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, now.Location()), nil
}

// GenerateSlots projects a weekday rule onto targetDate and returns the
// bookable start instants in ascending order. The cursor steps from the
// window start in gapMinutes increments while it stays strictly inside the
// window: the window bounds the start time, not the slot end, so a slot whose
// end spills past the window close is still offered. Candidates on today's
// date that lie strictly before now are skipped, as are candidates whose
// [start, start+duration) interval overlaps any busy range.
//
// The function is pure: the same inputs always yield the same sequence.
func GenerateSlots(
	rule models.DayAvailability,
	targetDate time.Time,
	durationMinutes int,
	gapMinutes int,
	busy []models.TimeRange,
	now time.Time,
) ([]time.Time, error) {
	if !rule.IsAvailable {
		return nil, nil
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("invalid duration %d", durationMinutes)
	}
	if gapMinutes <= 0 {
		gapMinutes = DefaultTimeGap
	}

	cursor, err := anchorOnDate(targetDate, rule.StartTime)
	if err != nil {
		return nil, err
	}
	windowEnd, err := anchorOnDate(targetDate, rule.EndTime)
	if err != nil {
		return nil, err
	}

	isToday := now.Year() == targetDate.Year() && now.YearDay() == targetDate.YearDay()

	var slots []time.Time
	for cursor.Before(windowEnd) {
		if !isToday || !cursor.Before(now) {
			candidateEnd := cursor.Add(time.Duration(durationMinutes) * time.Minute)
			if !conflictsWithAny(cursor, candidateEnd, busy) {
				slots = append(slots, cursor)
			}
		}
		cursor = cursor.Add(time.Duration(gapMinutes) * time.Minute)
	}
	return slots, nil
}

// FormatSlots renders slot instants as "HH:MM" strings.
func FormatSlots(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}

// busyRanges extracts occupied intervals from scheduled meetings.
func busyRanges(meetings []models.Meeting) []models.TimeRange {
	ranges := make([]models.TimeRange, 0, len(meetings))
	for i := range meetings {
		ranges = append(ranges, meetings[i].Interval())
	}
	return ranges
}
