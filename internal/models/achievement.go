package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Achievement describes a badge a user can earn.
type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
}
