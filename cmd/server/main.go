package main

import (
	"context"
	"log"

	gcs "cloud.google.com/go/storage"
	"github.com/labstack/echo/v4"
	"github.com/tawann/tawann-space/backend/internal/router"
	"github.com/tawann/tawann-space/backend/pkg/config"
	"github.com/tawann/tawann-space/backend/pkg/firebase"
	"github.com/tawann/tawann-space/backend/pkg/storage"
	"github.com/tawann/tawann-space/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	ctx := context.Background()

	// Initialize Firebase
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Initialize the storage bucket for post images
	gcsClient, err := gcs.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}
	uploader := storage.NewBucketUploader(gcsClient, cfg.StorageBucket)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, firebaseApp.AuthClient, uploader)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
