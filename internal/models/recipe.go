package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeSummary is the display projection of a recipe referenced by a feed
// activity. Full recipe documents live outside the feed engine.
type RecipeSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Title    string             `bson:"title" json:"title"`
	ImageURL string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	AuthorID primitive.ObjectID `bson:"author_id" json:"author_id"`
}

// Like is one user's like on a recipe.
type Like struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	RecipeID  primitive.ObjectID `bson:"recipe_id" json:"recipe_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Comment is one user's comment on a recipe, projected down to what the
// feed's interaction counting needs.
type Comment struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	RecipeID  primitive.ObjectID `bson:"recipe_id" json:"recipe_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
