// File: database/repository/meeting/crud.go
package meetingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kanishkk18/events/models"
)

func (r *mongoMeetingRepo) Insert(ctx context.Context, meeting *models.Meeting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, meeting)
	return err
}

func (r *mongoMeetingRepo) GetByIDForHost(ctx context.Context, id, userID string) (*models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var meeting models.Meeting
	err := r.coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *mongoMeetingRepo) CancelIfScheduled(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.MeetingScheduled},
		bson.M{"$set": bson.M{"status": models.MeetingCancelled}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
