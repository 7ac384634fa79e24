// File: database/repository/integration/crud.go
package integrationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kanishkk18/events/models"
)

func (r *mongoIntegrationRepo) GetByUserAndType(ctx context.Context, userID string, appType models.IntegrationAppType) (*models.Integration, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "appType": appType})
}

func (r *mongoIntegrationRepo) GetByID(ctx context.Context, id string) (*models.Integration, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoIntegrationRepo) Upsert(ctx context.Context, integration *models.Integration) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if integration.ID == "" {
		integration.ID = uuid.New().String()
	}
	if integration.CreatedAt.IsZero() {
		integration.CreatedAt = time.Now()
	}

	filter := bson.M{"userId": integration.UserID, "appType": integration.AppType}
	update := bson.M{
		"$set": bson.M{
			"accessToken":  integration.AccessToken,
			"refreshToken": integration.RefreshToken,
			"expiryDate":   integration.ExpiryDate,
		},
		"$setOnInsert": bson.M{
			"id":        integration.ID,
			"userId":    integration.UserID,
			"appType":   integration.AppType,
			"createdAt": integration.CreatedAt,
		},
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoIntegrationRepo) UpdateTokens(ctx context.Context, id, accessToken string, expiry time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	expiryMillis := expiry.UnixMilli()
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"accessToken": accessToken, "expiryDate": expiryMillis}},
	)
	return err
}

func (r *mongoIntegrationRepo) findOne(ctx context.Context, filter bson.M) (*models.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var integration models.Integration
	if err := r.coll.FindOne(ctx, filter).Decode(&integration); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &integration, nil
}
