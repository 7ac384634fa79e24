package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.uber.org/zap"
)

func (s *DefaultAvailabilityService) GetUserAvailability(ctx context.Context, userID string) (*models.Availability, error) {
	schedule, err := s.AvailabilityRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	if schedule == nil {
		return nil, utils.NewNotFoundError("availability not configured")
	}
	return schedule, nil
}

func (s *DefaultAvailabilityService) UpdateUserAvailability(ctx context.Context, userID string, req models.UpdateAvailabilityRequest) error {
	days := make([]models.DayAvailability, 0, len(req.Days))
	seen := make(map[models.DayOfWeek]bool, len(req.Days))
	for _, d := range req.Days {
		if _, ok := d.Day.Weekday(); !ok {
			return utils.NewValidationError(fmt.Sprintf("unknown weekday %q", d.Day))
		}
		if seen[d.Day] {
			return utils.NewValidationError(fmt.Sprintf("duplicate weekday %q", d.Day))
		}
		seen[d.Day] = true

		startH, startM, err := ParseClock(d.StartTime)
		if err != nil {
			return utils.NewValidationError(err.Error())
		}
		endH, endM, err := ParseClock(d.EndTime)
		if err != nil {
			return utils.NewValidationError(err.Error())
		}
		if d.IsAvailable && startH*60+startM >= endH*60+endM {
			return utils.NewValidationError(fmt.Sprintf("window start must precede window end on %s", d.Day))
		}

		days = append(days, models.DayAvailability{
			Day:         d.Day,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			IsAvailable: d.IsAvailable,
		})
	}

	if err := s.AvailabilityRepo.Replace(ctx, userID, req.TimeGap, days); err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}
	return nil
}

func (s *DefaultAvailabilityService) GetEventAvailability(ctx context.Context, eventID string) ([]models.AvailableDay, error) {
	logger := utils.GetLogger()

	event, err := s.EventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil || event.IsPrivate {
		return nil, utils.NewNotFoundError("event not found")
	}

	schedule, err := s.AvailabilityRepo.GetByUserID(ctx, event.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	if schedule == nil {
		// Host never configured a schedule; nothing is bookable.
		return []models.AvailableDay{}, nil
	}

	now := s.now()

	// One fetch covers every nearest-future weekday occurrence.
	rangeStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	meetings, err := s.MeetingRepo.ListScheduledInRange(ctx, event.UserID, rangeStart, rangeStart.AddDate(0, 0, 8))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled meetings: %w", err)
	}
	busy := busyRanges(meetings)

	days := make([]models.AvailableDay, 0, len(models.AllDaysOfWeek))
	for _, dow := range models.AllDaysOfWeek {
		rule := schedule.DayFor(dow)
		if rule == nil {
			continue
		}

		nextDate, err := NextDateForDay(now, dow)
		if err != nil {
			return nil, err
		}

		slots, err := GenerateSlots(*rule, nextDate, event.Duration, schedule.TimeGap, busy, now)
		if err != nil {
			logger.Warn("skipping malformed day rule",
				zap.String("userID", event.UserID), zap.String("day", string(dow)), zap.Error(err))
			continue
		}

		days = append(days, models.AvailableDay{
			Day:         dow,
			Date:        nextDate.Format("2006-01-02"),
			Slots:       FormatSlots(slots),
			IsAvailable: rule.IsAvailable,
		})
	}
	return days, nil
}

func (s *DefaultAvailabilityService) GetEventAvailabilityForDate(ctx context.Context, eventID string, date time.Time) (*models.AvailableDay, error) {
	event, err := s.EventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil || event.IsPrivate {
		return nil, utils.NewNotFoundError("event not found")
	}

	now := s.now()

	// The handler parses the date without a zone; anchor it in the clock's
	// location so the past-start filter agrees on what "today" is.
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dayStart.Before(today) {
		return nil, utils.NewValidationError("date is in the past")
	}

	dow := models.DayOfWeekFromWeekday(dayStart.Weekday())

	rule, err := s.AvailabilityRepo.GetDayRule(ctx, event.UserID, dow)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day rule: %w", err)
	}
	if rule == nil {
		return &models.AvailableDay{Day: dow, Date: dayStart.Format("2006-01-02"), Slots: []string{}}, nil
	}

	schedule, err := s.AvailabilityRepo.GetByUserID(ctx, event.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	gap := DefaultTimeGap
	if schedule != nil {
		gap = schedule.TimeGap
	}

	meetings, err := s.MeetingRepo.ListScheduledInRange(ctx, event.UserID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled meetings: %w", err)
	}

	slots, err := GenerateSlots(*rule, dayStart, event.Duration, gap, busyRanges(meetings), now)
	if err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	return &models.AvailableDay{
		Day:         dow,
		Date:        dayStart.Format("2006-01-02"),
		Slots:       FormatSlots(slots),
		IsAvailable: rule.IsAvailable,
	}, nil
}
