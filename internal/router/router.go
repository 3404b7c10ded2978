package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/tawann/tawann-space/backend/internal/handlers"
	"github.com/tawann/tawann-space/backend/internal/middleware"
	"github.com/tawann/tawann-space/backend/internal/models"
	"github.com/tawann/tawann-space/backend/internal/repositories"
	"github.com/tawann/tawann-space/backend/pkg/storage"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client, uploader storage.Uploader) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Status{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.NotificationRead{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	seedStatuses(db)
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	authenticated := []echo.MiddlewareFunc{middleware.JWTAuth()}
	admin := []echo.MiddlewareFunc{middleware.JWTAuth(), middleware.RequireAdmin()}

	// --- Post routes (listing and reads are public) ---
	posts := e.Group("/posts")
	postHandler := handlers.NewPostHandler(postRepo, uploader)
	postHandler.RegisterPostRoutes(posts, admin...)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(posts, authenticated...)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(posts, authenticated...)
	log.Println("Like routes configured.")

	// --- Auth routes (registration, sessions, profile) ---
	authGroup := e.Group("/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup, authenticated...)
	log.Println("Auth routes configured.")

	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	categoryHandler.RegisterCategoryRoutes(authGroup, admin...)
	log.Println("Category routes configured.")

	notificationHandler := handlers.NewNotificationHandler(commentRepo, likeRepo, notificationRepo)
	notificationHandler.RegisterNotificationRoutes(authGroup, admin...)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}

// seedStatuses makes sure the publish-state lookup rows exist
func seedStatuses(db *gorm.DB) {
	for _, label := range []string{models.StatusPublish, models.StatusDraft} {
		status := models.Status{Status: label}
		if err := db.Where("status = ?", label).FirstOrCreate(&status).Error; err != nil {
			log.Fatalf("Failed to seed status %q: %v", label, err)
		}
	}
}
