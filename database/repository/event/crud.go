// File: database/repository/event/crud.go
package eventRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kanishkk18/events/models"
)

func (r *mongoEventRepo) Create(ctx context.Context, event *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *mongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoEventRepo) GetByUserAndSlug(ctx context.Context, userID, slug string) (*models.Event, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "slug": slug})
}

func (r *mongoEventRepo) ListByUser(ctx context.Context, userID string) ([]models.Event, error) {
	return r.findMany(ctx, bson.M{"userId": userID})
}

func (r *mongoEventRepo) ListPublicByUser(ctx context.Context, userID string) ([]models.Event, error) {
	return r.findMany(ctx, bson.M{"userId": userID, "isPrivate": false})
}

func (r *mongoEventRepo) TogglePrivacy(ctx context.Context, id, userID string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "userId": userID}
	update := bson.A{bson.M{"$set": bson.M{"isPrivate": bson.M{"$not": "$isPrivate"}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event models.Event
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *mongoEventRepo) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepo) findOne(ctx context.Context, filter bson.M) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, filter).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *mongoEventRepo) findMany(ctx context.Context, filter bson.M) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
