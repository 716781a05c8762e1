package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Adilzhan707/Recipe_Social/internal/services"
	"github.com/Adilzhan707/Recipe_Social/pkg/logger"
	"github.com/Adilzhan707/Recipe_Social/pkg/middleware"
	"github.com/gorilla/mux"
)

// AchievementHandler serves the achievement catalog read surface.
type AchievementHandler struct {
	Service *services.AchievementService
}

// NewAchievementHandler initializes a new AchievementHandler.
func NewAchievementHandler(service *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{Service: service}
}

// GetAchievementHandler returns one achievement by id.
func (h *AchievementHandler) GetAchievementHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	achievement, err := h.Service.GetAchievement(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			http.Error(w, "Achievements temporarily unavailable", http.StatusServiceUnavailable)
			logger.Log.Errorf("Achievement store failure: %v", err)
			return
		}
		http.Error(w, "Achievement not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(achievement)
}
