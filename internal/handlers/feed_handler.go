package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"github.com/Adilzhan707/Recipe_Social/internal/services"
	"github.com/Adilzhan707/Recipe_Social/pkg/logger"
	"github.com/Adilzhan707/Recipe_Social/pkg/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedHandler exposes the activity feed over HTTP.
type FeedHandler struct {
	Service *services.FeedService
}

// NewFeedHandler initializes a new FeedHandler.
func NewFeedHandler(service *services.FeedService) *FeedHandler {
	return &FeedHandler{Service: service}
}

// GetFeedHandler serves GET /feed with category, sort, timeFrame, page and
// pageSize query parameters.
func (h *FeedHandler) GetFeedHandler(w http.ResponseWriter, r *http.Request) {
	var viewerID primitive.ObjectID
	if claims := middleware.GetUserFromContext(r.Context()); claims != nil {
		id, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			http.Error(w, "Invalid viewer ID", http.StatusUnauthorized)
			logger.Log.Warnf("Token carried a malformed user ID: %v", err)
			return
		}
		viewerID = id
	}

	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid page parameter", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	pageSize := 0
	if raw := query.Get("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid pageSize parameter", http.StatusBadRequest)
			return
		}
		pageSize = parsed
	}

	sort := models.SortMode(query.Get("sort"))
	if sort == "" {
		sort = models.SortLatest
	}

	category := query.Get("category")
	if category == "" {
		category = "all"
	}

	filters := models.FeedFilters{
		Category:  category,
		Sort:      sort,
		TimeFrame: models.TimeFrame(query.Get("timeFrame")),
	}

	feed, err := h.Service.GetFeed(r.Context(), viewerID, filters, page, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		case errors.Is(err, services.ErrInvalidFilter):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrStoreUnavailable):
			http.Error(w, "Feed temporarily unavailable", http.StatusServiceUnavailable)
			logger.Log.Errorf("Feed store failure: %v", err)
		default:
			http.Error(w, "Failed to load feed", http.StatusInternalServerError)
			logger.Log.Errorf("Failed to load feed: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feed)
}
