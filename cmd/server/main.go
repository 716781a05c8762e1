package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Adilzhan707/Recipe_Social/internal/config"
	"github.com/Adilzhan707/Recipe_Social/internal/database"
	"github.com/Adilzhan707/Recipe_Social/internal/handlers"
	"github.com/Adilzhan707/Recipe_Social/internal/repository"
	"github.com/Adilzhan707/Recipe_Social/internal/services"
	"github.com/Adilzhan707/Recipe_Social/pkg/logger"
	"github.com/Adilzhan707/Recipe_Social/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Load configuration from .env file
	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	followRepo := repository.NewFollowRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo, followRepo)
	feedService := services.NewFeedService(activityRepo, followRepo, achievementRepo)
	achievementService := services.NewAchievementService(achievementRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	feedHandler := handlers.NewFeedHandler(feedService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/{id}/following", userHandler.GetFollowingHandler).Methods("GET")

	// Feed routes
	protectedFeedRoutes := router.PathPrefix("/feed").Subrouter()
	protectedFeedRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedFeedRoutes.HandleFunc("", feedHandler.GetFeedHandler).Methods("GET")

	// Achievement routes
	protectedAchievementRoutes := router.PathPrefix("/achievements").Subrouter()
	protectedAchievementRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedAchievementRoutes.HandleFunc("/{id}", achievementHandler.GetAchievementHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
