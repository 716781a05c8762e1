package repository

import (
	"context"
	"fmt"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FollowRepository answers follow-graph queries for the feed.
type FollowRepository struct {
	collection *mongo.Collection
}

// NewFollowRepository creates a new FollowRepository.
func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{
		collection: db.Collection("follows"),
	}
}

// GetFollowedUserIDs returns the ids of every user the given user follows.
// A user following no one gets an empty slice, not an error.
func (r *FollowRepository) GetFollowedUserIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"follower_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followed users: %v", err)
	}
	defer cursor.Close(ctx)

	var followed []primitive.ObjectID
	for cursor.Next(ctx) {
		var follow models.Follow
		if err := cursor.Decode(&follow); err != nil {
			return nil, fmt.Errorf("failed to decode follow: %v", err)
		}
		followed = append(followed, follow.FolloweeID)
	}

	return followed, nil
}
