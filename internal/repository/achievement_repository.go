package repository

import (
	"context"
	"fmt"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AchievementRepository reads the achievement catalog.
type AchievementRepository struct {
	collection *mongo.Collection
}

// NewAchievementRepository creates a new AchievementRepository.
func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{
		collection: db.Collection("achievements"),
	}
}

// GetAchievementByID fetches one achievement, or nil when it does not exist.
func (r *AchievementRepository) GetAchievementByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&achievement)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find achievement: %v", err)
	}
	return &achievement, nil
}
