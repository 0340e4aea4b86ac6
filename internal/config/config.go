// internal/config/config.go
package config

import (
	"os"

	// Side-effect import: loads a .env file into the process environment
	// before the variables below are read, when such a file exists.
	_ "github.com/joho/godotenv/autoload"

	"tweetline/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config
}

// LoadConfig loads configuration from environment variables.
// Every variable has a local-development default.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017" // Default for local development
	}

	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "tweetline" // Default database name
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			URI:      mongoURI,
			Database: mongoDB,
		},
	}, nil
}
