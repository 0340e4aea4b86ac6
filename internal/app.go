// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"

	router "tweetline/internal/api"
	"tweetline/internal/api/handler"
	"tweetline/internal/config"
	"tweetline/internal/metrics"
	"tweetline/internal/repository"
	"tweetline/internal/repository/mongodb"
	"tweetline/internal/service"
	"tweetline/internal/util"
	"tweetline/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config   *config.AppConfig
	Logger   *slog.Logger
	Client   *mongo.Client
	Database *mongo.Database

	// Repositories
	UserRepository  repository.UserRepository
	TweetRepository repository.TweetRepository

	// Services
	SocialService service.SocialService

	// Observability
	Metrics *metrics.Collector

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database. The connection is attempted exactly once;
	// failure here is fatal to the process.
	client, err := db.NewMongoDB(ctx, app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Client = client
	app.Database = client.Database(app.Config.DB.Database)
	app.Logger.Info("Database connection established.", "database", app.Config.DB.Database)

	if err := db.EnsureIndexes(ctx, app.Database); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// 4. Initialize Repositories
	app.UserRepository = mongodb.NewUserRepository(app.Database)
	app.TweetRepository = mongodb.NewTweetRepository(app.Database)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.SocialService = service.NewSocialService(app.UserRepository, app.TweetRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize Metrics
	registry := prometheus.NewRegistry()
	app.Metrics = metrics.NewCollector(registry)

	// 7. Initialize HTTP Handlers and Router
	socialHandler := handler.NewSocialHandler(app.SocialService, app.Logger)
	app.HTTPHandler = router.NewRouter(socialHandler, app.Metrics, registry, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.Client != nil {
		if err := app.Client.Disconnect(ctx); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
