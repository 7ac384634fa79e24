// File: database/repository/integration/interface.go
package integrationRepo

import (
	"context"
	"time"

	"github.com/kanishkk18/events/database"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// IntegrationRepository stores one OAuth token pair per (host, provider).
// Token fields are mutated only by Upsert (connection callback) and
// UpdateTokens (the sync adapter's refresh).
type IntegrationRepository interface {
	GetByUserAndType(ctx context.Context, userID string, appType models.IntegrationAppType) (*models.Integration, error)
	GetByID(ctx context.Context, id string) (*models.Integration, error)
	Upsert(ctx context.Context, integration *models.Integration) error
	// UpdateTokens persists a refreshed access token and its expiry.
	UpdateTokens(ctx context.Context, id, accessToken string, expiry time.Time) error
}

type mongoIntegrationRepo struct {
	coll *mongo.Collection
}

// NewMongoIntegrationRepo constructs a new MongoDB IntegrationRepository.
func NewMongoIntegrationRepo() IntegrationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoIntegrationRepo{
		coll: db.Collection("integrations"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("integration repo: index setup failed", zap.Error(err))
	}
	return repo
}
