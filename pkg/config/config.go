package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string
	MongoURI        string
	MongoDatabase   string

	// Service account credentials: inline JSON wins over the file path.
	ServiceAccountJSON string
	ServiceAccountPath string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:     getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:      getEnv("FIREBASE_STORAGE_BUCKET", ""),
		MongoURI:           getEnv("MONGO_URI", ""),
		MongoDatabase:      getEnv("MONGO_DATABASE", "autohost"),
		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
	}

	for name, value := range map[string]string{
		"FIREBASE_PROJECT_ID":     config.FirebaseProject,
		"FIREBASE_STORAGE_BUCKET": config.StorageBucket,
		"MONGO_URI":               config.MongoURI,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required env %s", name)
		}
	}

	if config.ServiceAccountJSON == "" && config.ServiceAccountPath == "" {
		return nil, fmt.Errorf("missing required env FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
