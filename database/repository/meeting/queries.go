// File: database/repository/meeting/queries.go
package meetingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kanishkk18/events/models"
)

func (r *mongoMeetingRepo) ListScheduledInRange(ctx context.Context, userID string, from, to time.Time) ([]models.Meeting, error) {
	filter := bson.M{
		"userId":    userID,
		"status":    models.MeetingScheduled,
		"startTime": bson.M{"$lt": to},
		"endTime":   bson.M{"$gt": from},
	}
	return r.findMany(ctx, filter)
}

// ListScheduledOverlapping is the half-open interval overlap query:
// a SCHEDULED meeting conflicts with [start, end) iff its startTime < end
// and its endTime > start. Touching endpoints do not match.
func (r *mongoMeetingRepo) ListScheduledOverlapping(ctx context.Context, userID string, start, end time.Time) ([]models.Meeting, error) {
	filter := bson.M{
		"userId":    userID,
		"status":    models.MeetingScheduled,
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}
	return r.findMany(ctx, filter)
}

func (r *mongoMeetingRepo) ListByHost(ctx context.Context, userID string) ([]models.Meeting, error) {
	return r.findMany(ctx, bson.M{"userId": userID})
}

func (r *mongoMeetingRepo) findMany(ctx context.Context, filter bson.M) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}
