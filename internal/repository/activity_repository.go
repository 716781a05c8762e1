package repository

import (
	"context"
	"fmt"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"github.com/Adilzhan707/Recipe_Social/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ActivityRepository reads the activity log. The feed engine never writes
// activities; they are recorded by the action endpoints elsewhere.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new instance of ActivityRepository.
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activities"),
	}
}

// FindActivities returns activities matching the filter, newest first, with
// actor/recipe/target-user/like/comment projections hydrated in one
// aggregation so callers never fan out per record. A limit of 0 means no
// page limit (the caller bounds the window some other way).
func (r *ActivityRepository) FindActivities(ctx context.Context, filter models.ActivityFilter, offset, limit int64) ([]models.Activity, error) {
	match := bson.M{
		"actor_id": bson.M{"$in": filter.AuthorIDs},
	}
	if filter.Type != nil {
		match["type"] = *filter.Type
	}
	if !filter.CreatedAfter.IsZero() {
		match["created_at"] = bson.M{"$gte": filter.CreatedAfter}
	}

	// _id is the secondary sort key so equal timestamps still produce a
	// stable order across pages.
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
	}
	if offset > 0 {
		pipeline = append(pipeline, bson.M{"$skip": offset})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}

	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         "users",
			"localField":   "actor_id",
			"foreignField": "_id",
			"as":           "actor",
		}},
		bson.M{"$unwind": bson.M{"path": "$actor", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{
			"from":         "recipes",
			"localField":   "recipe_id",
			"foreignField": "_id",
			"as":           "recipe",
		}},
		bson.M{"$unwind": bson.M{"path": "$recipe", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{
			"from":         "users",
			"localField":   "target_user_id",
			"foreignField": "_id",
			"as":           "target_user",
		}},
		bson.M{"$unwind": bson.M{"path": "$target_user", "preserveNullAndEmptyArrays": true}},
		bson.M{"$lookup": bson.M{
			"from":         "likes",
			"localField":   "recipe_id",
			"foreignField": "recipe_id",
			"as":           "likes",
		}},
		bson.M{"$lookup": bson.M{
			"from":         "comments",
			"localField":   "recipe_id",
			"foreignField": "recipe_id",
			"as":           "comments",
		}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to query activities")
		return nil, fmt.Errorf("failed to fetch activities: %v", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %v", err)
	}
	return activities, nil
}
