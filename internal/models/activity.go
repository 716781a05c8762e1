package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType is the closed set of actions that can appear in a feed.
type ActivityType string

const (
	ActivityCreated           ActivityType = "created"
	ActivityLiked             ActivityType = "liked"
	ActivityCommented         ActivityType = "commented"
	ActivityShared            ActivityType = "shared"
	ActivityStartedFollowing  ActivityType = "started_following"
	ActivityAchievementEarned ActivityType = "achievement_earned"
	ActivityRecipeMilestone   ActivityType = "recipe_milestone"
	ActivityPublished         ActivityType = "published"
	ActivityDraft             ActivityType = "draft"
)

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCreated, ActivityLiked, ActivityCommented, ActivityShared,
		ActivityStartedFollowing, ActivityAchievementEarned,
		ActivityRecipeMilestone, ActivityPublished, ActivityDraft:
		return true
	}
	return false
}

// IsRecipeType reports whether the type carries a recipe reference.
func (t ActivityType) IsRecipeType() bool {
	switch t {
	case ActivityCreated, ActivityLiked, ActivityCommented, ActivityShared,
		ActivityRecipeMilestone, ActivityPublished, ActivityDraft:
		return true
	}
	return false
}

// Activity is one immutable recorded user action. CreatedAt is assigned when
// the action happens and is the sole chronological ordering key.
type Activity struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type          ActivityType        `bson:"type" json:"type"`
	ActorID       primitive.ObjectID  `bson:"actor_id" json:"actor_id"`
	TargetUserID  *primitive.ObjectID `bson:"target_user_id,omitempty" json:"target_user_id,omitempty"`
	RecipeID      *primitive.ObjectID `bson:"recipe_id,omitempty" json:"recipe_id,omitempty"`
	AchievementID *primitive.ObjectID `bson:"achievement_id,omitempty" json:"achievement_id,omitempty"`
	Milestone     int                 `bson:"milestone,omitempty" json:"milestone,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`

	// Hydrated by the store's aggregation for enrichment; never written back.
	Actor      *PublicUser    `bson:"actor,omitempty" json:"-"`
	Recipe     *RecipeSummary `bson:"recipe,omitempty" json:"-"`
	TargetUser *PublicUser    `bson:"target_user,omitempty" json:"-"`
	Likes      []Like         `bson:"likes,omitempty" json:"-"`
	Comments   []Comment      `bson:"comments,omitempty" json:"-"`
}

// Validate enforces the per-type payload rule: exactly one of
// {TargetUserID, RecipeID, AchievementID} is populated depending on Type.
func (a *Activity) Validate() error {
	if !a.Type.Valid() {
		return fmt.Errorf("unknown activity type %q", a.Type)
	}
	if a.ActorID.IsZero() {
		return fmt.Errorf("activity of type %q has no actor", a.Type)
	}

	switch {
	case a.Type.IsRecipeType():
		if a.RecipeID == nil {
			return fmt.Errorf("activity of type %q requires a recipe", a.Type)
		}
		if a.TargetUserID != nil || a.AchievementID != nil {
			return fmt.Errorf("activity of type %q carries a non-recipe reference", a.Type)
		}
		if a.Type == ActivityRecipeMilestone && a.Milestone <= 0 {
			return fmt.Errorf("milestone activity requires a positive milestone value")
		}
	case a.Type == ActivityStartedFollowing:
		if a.TargetUserID == nil {
			return fmt.Errorf("follow activity requires a target user")
		}
		if a.RecipeID != nil || a.AchievementID != nil {
			return fmt.Errorf("follow activity carries a non-user reference")
		}
	case a.Type == ActivityAchievementEarned:
		if a.AchievementID == nil {
			return fmt.Errorf("achievement activity requires an achievement")
		}
		if a.RecipeID != nil || a.TargetUserID != nil {
			return fmt.Errorf("achievement activity carries a non-achievement reference")
		}
	}

	return nil
}
