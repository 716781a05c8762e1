package services

import (
	"context"
	"fmt"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementService exposes the achievement catalog read surface.
type AchievementService struct {
	store AchievementStore
}

// NewAchievementService creates a new AchievementService.
func NewAchievementService(store AchievementStore) *AchievementService {
	return &AchievementService{store: store}
}

// GetAchievement fetches one achievement by its hex id.
func (s *AchievementService) GetAchievement(ctx context.Context, id string) (*models.Achievement, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid achievement ID: %v", err)
	}

	achievement, err := s.store.GetAchievementByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching achievement: %v", ErrStoreUnavailable, err)
	}
	if achievement == nil {
		return nil, fmt.Errorf("achievement not found")
	}
	return achievement, nil
}
