// File: database/repository/meeting/interface.go
package meetingRepo

import (
	"context"
	"time"

	"github.com/kanishkk18/events/database"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MeetingRepository is the booking store. Meetings are inserted once,
// transitioned SCHEDULED -> CANCELLED by a compare-and-swap, and never
// physically deleted.
type MeetingRepository interface {
	Insert(ctx context.Context, meeting *models.Meeting) error
	GetByIDForHost(ctx context.Context, id, userID string) (*models.Meeting, error)
	// ListScheduledInRange returns the host's SCHEDULED meetings whose
	// interval intersects [from, to).
	ListScheduledInRange(ctx context.Context, userID string, from, to time.Time) ([]models.Meeting, error)
	// ListScheduledOverlapping returns SCHEDULED meetings overlapping the
	// half-open candidate interval [start, end). Used for the commit-time
	// conflict re-check.
	ListScheduledOverlapping(ctx context.Context, userID string, start, end time.Time) ([]models.Meeting, error)
	ListByHost(ctx context.Context, userID string) ([]models.Meeting, error)
	// CancelIfScheduled flips status to CANCELLED only when it is currently
	// SCHEDULED, and reports whether a row was transitioned.
	CancelIfScheduled(ctx context.Context, id string) (bool, error)
}

type mongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo constructs a new MongoDB MeetingRepository.
func NewMongoMeetingRepo() MeetingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoMeetingRepo{
		coll: db.Collection("meetings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("meeting repo: index setup failed", zap.Error(err))
	}
	return repo
}
