// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kanishkk18/events/models"
)

func (r *mongoAvailabilityRepo) GetByUserID(ctx context.Context, userID string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.Availability
	err := r.scheduleColl.FindOne(ctx, bson.M{"userId": userID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	cursor, err := r.dayColl.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &schedule.Days); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *mongoAvailabilityRepo) GetDayRule(ctx context.Context, userID string, day models.DayOfWeek) (*models.DayAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.DayAvailability
	err := r.dayColl.FindOne(ctx, bson.M{"userId": userID, "day": day}).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *mongoAvailabilityRepo) Replace(ctx context.Context, userID string, timeGap int, days []models.DayAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{"userId": userID, "timeGap": timeGap}}
	if _, err := r.scheduleColl.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return err
	}

	// Replace the normalized weekday rows wholesale, mirroring the weekly
	// update semantics: the request carries the full seven-day picture.
	if _, err := r.dayColl.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return err
	}
	if len(days) == 0 {
		return nil
	}

	docs := make([]interface{}, len(days))
	for i := range days {
		if days[i].ID == "" {
			days[i].ID = uuid.New().String()
		}
		days[i].UserID = userID
		docs[i] = days[i]
	}
	_, err := r.dayColl.InsertMany(ctx, docs)
	return err
}
