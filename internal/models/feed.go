package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SortMode selects the feed ordering.
type SortMode string

const (
	SortTrending SortMode = "trending"
	SortLatest   SortMode = "latest"
)

// Valid reports whether m is a known sort mode.
func (m SortMode) Valid() bool {
	return m == SortTrending || m == SortLatest
}

// TimeFrame is an optional lower bound on activity age.
type TimeFrame string

const (
	TimeFrameToday TimeFrame = "today"
	TimeFrameWeek  TimeFrame = "week"
	TimeFrameMonth TimeFrame = "month"
)

// Valid reports whether f is a known time frame. The empty frame means unrestricted.
func (f TimeFrame) Valid() bool {
	return f == "" || f == TimeFrameToday || f == TimeFrameWeek || f == TimeFrameMonth
}

// CutoffFrom resolves the frame to an absolute lower bound relative to now.
// The zero time means no bound.
func (f TimeFrame) CutoffFrom(now time.Time) time.Time {
	switch f {
	case TimeFrameToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case TimeFrameWeek:
		return now.AddDate(0, 0, -7)
	case TimeFrameMonth:
		return now.AddDate(0, 0, -30)
	}
	return time.Time{}
}

// FeedFilters narrows which activities a viewer's feed shows.
// Category is either "all" or a single ActivityType.
type FeedFilters struct {
	Category  string
	Sort      SortMode
	TimeFrame TimeFrame
}

// ActivityFilter is the store-level query the feed assembler builds from a
// viewer's filters and visible-author set.
type ActivityFilter struct {
	AuthorIDs    []primitive.ObjectID
	Type         *ActivityType
	CreatedAfter time.Time // zero means unbounded
}

// InteractionState is the viewer-relative engagement snapshot for one
// activity. It is derived fresh per request and never cached across viewers.
type InteractionState struct {
	LikeCount          int  `json:"like_count"`
	CommentCount       int  `json:"comment_count"`
	ViewerHasLiked     bool `json:"viewer_has_liked"`
	ViewerHasCommented bool `json:"viewer_has_commented"`
}

// EnrichedActivity is the display unit returned to callers: the raw record
// plus denormalized display fields and the viewer's interaction state.
// EngagementScore is set only under trending sort.
type EnrichedActivity struct {
	ID           primitive.ObjectID `json:"id"`
	Type         ActivityType       `json:"type"`
	CreatedAt    time.Time          `json:"created_at"`
	Actor        PublicUser         `json:"actor"`
	Recipe       *RecipeSummary     `json:"recipe,omitempty"`
	TargetUser   *PublicUser        `json:"target_user,omitempty"`
	Achievement  *Achievement       `json:"achievement,omitempty"`
	Milestone    int                `json:"milestone,omitempty"`
	Interactions InteractionState   `json:"interactions"`

	EngagementScore *int `json:"engagement_score,omitempty"`

	// AchievementID is carried for the enrichment pass and never serialized.
	AchievementID *primitive.ObjectID `json:"-"`
}

// ActivityGroup is a contiguous run of activities sharing a date label.
type ActivityGroup struct {
	DateLabel  string             `json:"date_label"`
	Activities []EnrichedActivity `json:"activities"`
}

// Feed is one page of a viewer's grouped activity feed.
type Feed struct {
	Groups  []ActivityGroup `json:"groups"`
	HasMore bool            `json:"has_more"`
}
