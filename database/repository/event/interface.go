// File: database/repository/event/interface.go
package eventRepo

import (
	"context"

	"github.com/kanishkk18/events/database"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EventRepository manages event templates. The booking engine only reads from
// it; mutation is thin CRUD for the host-facing endpoints.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetByUserAndSlug(ctx context.Context, userID, slug string) (*models.Event, error)
	ListByUser(ctx context.Context, userID string) ([]models.Event, error)
	ListPublicByUser(ctx context.Context, userID string) ([]models.Event, error)
	TogglePrivacy(ctx context.Context, id, userID string) (*models.Event, error)
	Delete(ctx context.Context, id, userID string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoEventRepo{
		coll: db.Collection("events"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("event repo: index setup failed", zap.Error(err))
	}
	return repo
}
