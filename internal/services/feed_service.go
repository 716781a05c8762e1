package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"github.com/Adilzhan707/Recipe_Social/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// DefaultPageSize is used when the caller passes a non-positive page size.
const DefaultPageSize = 10

// trendingCandidateCap bounds how many records get scored for one trending
// request. Trending scores the whole time-frame window before paginating,
// so the window needs a ceiling.
const trendingCandidateCap = 500

// achievementLookupLimit caps concurrent achievement fetches during enrichment.
const achievementLookupLimit = 8

// ActivityStore answers windowed activity queries with the directly-owned
// projections (actor, recipe, target user, likes, comments) hydrated.
type ActivityStore interface {
	FindActivities(ctx context.Context, filter models.ActivityFilter, offset, limit int64) ([]models.Activity, error)
}

// SocialGraphStore answers "who does this viewer follow".
type SocialGraphStore interface {
	GetFollowedUserIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// AchievementStore fetches achievement display details.
type AchievementStore interface {
	GetAchievementByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error)
}

// FeedService assembles a viewer's activity feed: it resolves the visible
// author set, queries candidates, attaches viewer-relative interaction
// state, sorts, paginates, enriches and groups. It is stateless across
// requests; all stores are injected.
type FeedService struct {
	activities   ActivityStore
	graph        SocialGraphStore
	achievements AchievementStore
	now          func() time.Time
}

// NewFeedService creates a new FeedService reading from the given stores.
func NewFeedService(activities ActivityStore, graph SocialGraphStore, achievements AchievementStore) *FeedService {
	return &FeedService{
		activities:   activities,
		graph:        graph,
		achievements: achievements,
		now:          time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (s *FeedService) WithClock(now func() time.Time) *FeedService {
	s.now = now
	return s
}

// GetFeed returns one page of the viewer's grouped feed. A zero viewer id is
// rejected before any store is touched.
func (s *FeedService) GetFeed(ctx context.Context, viewerID primitive.ObjectID, filters models.FeedFilters, page, pageSize int) (*models.Feed, error) {
	if viewerID.IsZero() {
		return nil, ErrUnauthorized
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidFilter, page)
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if !filters.Sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort mode %q", ErrInvalidFilter, filters.Sort)
	}
	if !filters.TimeFrame.Valid() {
		return nil, fmt.Errorf("%w: unknown time frame %q", ErrInvalidFilter, filters.TimeFrame)
	}

	var typeFilter *models.ActivityType
	if filters.Category != "" && filters.Category != "all" {
		t := models.ActivityType(filters.Category)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidFilter, filters.Category)
		}
		typeFilter = &t
	}

	// One snapshot drives the time-frame cutoff and every date label in the
	// response, so items near a midnight boundary stay consistent.
	now := s.now()

	followed, err := s.graph.GetFollowedUserIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving follow graph: %v", ErrStoreUnavailable, err)
	}

	// The viewer always sees their own activities, follows or not.
	authorIDs := append([]primitive.ObjectID{viewerID}, followed...)

	storeFilter := models.ActivityFilter{
		AuthorIDs:    authorIDs,
		Type:         typeFilter,
		CreatedAfter: filters.TimeFrame.CutoffFrom(now),
	}

	var (
		pageItems []models.EnrichedActivity
		hasMore   bool
	)
	if filters.Sort == models.SortTrending {
		pageItems, hasMore, err = s.trendingPage(ctx, viewerID, storeFilter, page, pageSize)
	} else {
		pageItems, hasMore, err = s.latestPage(ctx, viewerID, storeFilter, page, pageSize)
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachAchievements(ctx, pageItems); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"viewer":   viewerID.Hex(),
		"sort":     filters.Sort,
		"page":     page,
		"returned": len(pageItems),
		"has_more": hasMore,
	}).Debug("Feed page assembled")

	return &models.Feed{
		Groups:  GroupByDate(pageItems, now),
		HasMore: hasMore,
	}, nil
}

// latestPage serves chronological sort: the store already orders newest
// first, so one page plus one extra record decides hasMore.
func (s *FeedService) latestPage(ctx context.Context, viewerID primitive.ObjectID, filter models.ActivityFilter, page, pageSize int) ([]models.EnrichedActivity, bool, error) {
	offset := int64(page-1) * int64(pageSize)

	records, err := s.activities.FindActivities(ctx, filter, offset, int64(pageSize)+1)
	if err != nil {
		return nil, false, fmt.Errorf("%w: querying activities: %v", ErrStoreUnavailable, err)
	}

	hasMore := len(records) > pageSize
	if hasMore {
		records = records[:pageSize]
	}

	items := make([]models.EnrichedActivity, 0, len(records))
	for i := range records {
		items = append(items, s.enrich(&records[i], viewerID, false))
	}
	return items, hasMore, nil
}

// trendingPage scores the full time-frame-filtered candidate window before
// paginating. Scoring only the requested page would hide a high-engagement
// activity that sits outside that page's chronological slice.
func (s *FeedService) trendingPage(ctx context.Context, viewerID primitive.ObjectID, filter models.ActivityFilter, page, pageSize int) ([]models.EnrichedActivity, bool, error) {
	// One extra record past the cap tells a full window apart from an
	// exactly-full one, so the last page still reports more beyond the cap.
	candidates, err := s.activities.FindActivities(ctx, filter, 0, trendingCandidateCap+1)
	if err != nil {
		return nil, false, fmt.Errorf("%w: querying activities: %v", ErrStoreUnavailable, err)
	}

	capExceeded := len(candidates) > trendingCandidateCap
	if capExceeded {
		candidates = candidates[:trendingCandidateCap]
	}

	items := make([]models.EnrichedActivity, 0, len(candidates))
	for i := range candidates {
		items = append(items, s.enrich(&candidates[i], viewerID, true))
	}
	sortByEngagement(items)

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []models.EnrichedActivity{}, capExceeded, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], len(items) > end || capExceeded, nil
}

// enrich converts a raw record into its display form and derives the
// viewer-relative interaction state from the hydrated like/comment rows.
// The state is computed fresh per request and never shared across viewers.
func (s *FeedService) enrich(record *models.Activity, viewerID primitive.ObjectID, scored bool) models.EnrichedActivity {
	state := models.InteractionState{
		LikeCount:    len(record.Likes),
		CommentCount: len(record.Comments),
	}
	for _, like := range record.Likes {
		if like.UserID == viewerID {
			state.ViewerHasLiked = true
			break
		}
	}
	for _, comment := range record.Comments {
		if comment.UserID == viewerID {
			state.ViewerHasCommented = true
			break
		}
	}

	item := models.EnrichedActivity{
		ID:            record.ID,
		Type:          record.Type,
		CreatedAt:     record.CreatedAt,
		Actor:         models.PublicUser{ID: record.ActorID},
		Recipe:        record.Recipe,
		TargetUser:    record.TargetUser,
		Milestone:     record.Milestone,
		Interactions:  state,
		AchievementID: record.AchievementID,
	}
	if record.Actor != nil {
		item.Actor = *record.Actor
	}
	if scored {
		score := EngagementScore(state)
		item.EngagementScore = &score
	}
	return item
}

// attachAchievements resolves achievement display details for the page with
// a bounded fan-out. One failed lookup drops that activity's achievement
// field and logs a warning; it never fails the page.
func (s *FeedService) attachAchievements(ctx context.Context, items []models.EnrichedActivity) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(achievementLookupLimit)

	for i := range items {
		if items[i].Type != models.ActivityAchievementEarned || items[i].AchievementID == nil {
			continue
		}
		i := i
		g.Go(func() error {
			achievement, err := s.achievements.GetAchievementByID(ctx, *items[i].AchievementID)
			if err != nil {
				logger.Log.WithError(err).WithField("activity", items[i].ID.Hex()).
					Warn("Achievement enrichment failed, dropping field")
				return nil
			}
			items[i].Achievement = achievement
			return nil
		})
	}

	return g.Wait()
}
