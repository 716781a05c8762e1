package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Adilzhan707/Recipe_Social/internal/config"
	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"github.com/Adilzhan707/Recipe_Social/internal/services"
	"github.com/Adilzhan707/Recipe_Social/pkg/logger"
	"github.com/Adilzhan707/Recipe_Social/pkg/middleware"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"
)

// UserHandler manages HTTP endpoints for user accounts and the follow graph.
type UserHandler struct {
	Service *services.UserService
	Config  *config.Config
}

// NewUserHandler initializes a new UserHandler.
func NewUserHandler(service *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: service, Config: cfg}
}

// RegisterUserHandler creates a new account.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		logger.Log.Warnf("Failed to decode registration body: %v", err)
		return
	}
	defer r.Body.Close()

	user := &models.User{
		Username: body.Username,
		Email:    body.Email,
	}

	created, err := h.Service.RegisterUser(r.Context(), user, body.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		logger.Log.Warnf("Registration failed: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created.Public())
}

// LoginUserHandler verifies credentials and issues a JWT.
func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.Service.AuthenticateUser(r.Context(), body.Email, body.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	claims := &middleware.Claims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.Config.JWTSecret))
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		logger.Log.Errorf("Failed to sign token: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": signed})
}

// GetUserHandler returns a user's public profile.
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Service.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		logger.Log.Warnf("Failed to fetch user: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.Public())
}

// GetFollowingHandler lists the ids of users the given user follows.
func (h *UserHandler) GetFollowingHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	following, err := h.Service.GetFollowing(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			http.Error(w, "Following temporarily unavailable", http.StatusServiceUnavailable)
			logger.Log.Errorf("Follow graph store failure: %v", err)
			return
		}
		http.Error(w, "Failed to get following", http.StatusInternalServerError)
		logger.Log.Errorf("Failed to get following: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"following": following})
}
