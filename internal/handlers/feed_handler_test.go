package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"github.com/Adilzhan707/Recipe_Social/internal/services"
	"github.com/Adilzhan707/Recipe_Social/pkg/logger"
	"github.com/Adilzhan707/Recipe_Social/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	logger.InitLogger()
}

type stubActivityStore struct {
	activities []models.Activity
	err        error
}

func (s *stubActivityStore) FindActivities(context.Context, models.ActivityFilter, int64, int64) ([]models.Activity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.activities, nil
}

type stubGraphStore struct{}

func (stubGraphStore) GetFollowedUserIDs(context.Context, primitive.ObjectID) ([]primitive.ObjectID, error) {
	return nil, nil
}

type stubAchievementStore struct{}

func (stubAchievementStore) GetAchievementByID(context.Context, primitive.ObjectID) (*models.Achievement, error) {
	return nil, nil
}

func newFeedRequest(t *testing.T, target string, viewer *middleware.Claims) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if viewer != nil {
		req = req.WithContext(middleware.ContextWithUser(req.Context(), viewer))
	}
	return req
}

func feedHandlerWith(store *stubActivityStore) *FeedHandler {
	svc := services.NewFeedService(store, stubGraphStore{}, stubAchievementStore{})
	return NewFeedHandler(svc)
}

func TestGetFeedHandlerRejectsAnonymous(t *testing.T) {
	handler := feedHandlerWith(&stubActivityStore{})
	rec := httptest.NewRecorder()

	handler.GetFeedHandler(rec, newFeedRequest(t, "/feed", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetFeedHandlerRejectsMalformedPage(t *testing.T) {
	handler := feedHandlerWith(&stubActivityStore{})
	viewer := &middleware.Claims{UserID: primitive.NewObjectID().Hex()}
	rec := httptest.NewRecorder()

	handler.GetFeedHandler(rec, newFeedRequest(t, "/feed?page=banana", viewer))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFeedHandlerRejectsUnknownCategory(t *testing.T) {
	handler := feedHandlerWith(&stubActivityStore{})
	viewer := &middleware.Claims{UserID: primitive.NewObjectID().Hex()}
	rec := httptest.NewRecorder()

	handler.GetFeedHandler(rec, newFeedRequest(t, "/feed?category=unicorns", viewer))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFeedHandlerMapsStoreFailure(t *testing.T) {
	handler := feedHandlerWith(&stubActivityStore{err: errors.New("down")})
	viewer := &middleware.Claims{UserID: primitive.NewObjectID().Hex()}
	rec := httptest.NewRecorder()

	handler.GetFeedHandler(rec, newFeedRequest(t, "/feed", viewer))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetFeedHandlerReturnsGroupedFeed(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	viewerID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()
	store := &stubActivityStore{activities: []models.Activity{{
		ID:        primitive.NewObjectID(),
		Type:      models.ActivityCreated,
		ActorID:   viewerID,
		RecipeID:  &recipeID,
		CreatedAt: now.Add(-time.Hour),
		Recipe:    &models.RecipeSummary{ID: recipeID, Title: "Plov", AuthorID: viewerID},
	}}}
	svc := services.NewFeedService(store, stubGraphStore{}, stubAchievementStore{}).
		WithClock(func() time.Time { return now })
	handler := NewFeedHandler(svc)
	viewer := &middleware.Claims{UserID: viewerID.Hex()}
	rec := httptest.NewRecorder()

	handler.GetFeedHandler(rec, newFeedRequest(t, "/feed?sort=latest&pageSize=5", viewer))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var feed models.Feed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Groups, 1)
	assert.Equal(t, "Today", feed.Groups[0].DateLabel)
	require.Len(t, feed.Groups[0].Activities, 1)
	assert.Equal(t, "Plov", feed.Groups[0].Activities[0].Recipe.Title)
	assert.False(t, feed.HasMore)
}
