// File: database/repository/user/user_interface.go
package userRepo

import (
	"context"

	"github.com/kanishkk18/events/database"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserRepository provides host account lookups for the rest of the system.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoUserRepo{
		coll: db.Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("user repo: index setup failed", zap.Error(err))
	}
	return repo
}
