// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"github.com/kanishkk18/events/database"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AvailabilityRepository stores a host's recurring weekly schedule. Day rules
// are normalized as one document per weekday per host; a host with no rows has
// never configured availability, which is distinct from a row with
// isAvailable=false.
type AvailabilityRepository interface {
	// GetByUserID returns the host's schedule or nil when never configured.
	GetByUserID(ctx context.Context, userID string) (*models.Availability, error)
	// GetDayRule returns the rule for one weekday, or nil when not configured.
	GetDayRule(ctx context.Context, userID string, day models.DayOfWeek) (*models.DayAvailability, error)
	// Replace swaps the host's entire weekly schedule in one shot.
	Replace(ctx context.Context, userID string, timeGap int, days []models.DayAvailability) error
}

type mongoAvailabilityRepo struct {
	scheduleColl *mongo.Collection // one doc per host: userId + timeGap
	dayColl      *mongo.Collection // one doc per (host, weekday)
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoAvailabilityRepo{
		scheduleColl: db.Collection("availability"),
		dayColl:      db.Collection("day_availability"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("availability repo: index setup failed", zap.Error(err))
	}
	return repo
}
