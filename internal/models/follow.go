package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Follow records that one user follows another.
type Follow struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FollowerID primitive.ObjectID `bson:"follower_id" json:"follower_id"`
	FolloweeID primitive.ObjectID `bson:"followee_id" json:"followee_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
