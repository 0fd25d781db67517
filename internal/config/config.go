package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Render   RenderConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// StorageConfig selects the persistence backend. "local" keeps JSON
// collections under DataDir; "postgres" uses Database.Connection.
type StorageConfig struct {
	Backend   string
	DataDir   string
	ExportDir string
}

type DatabaseConfig struct {
	Connection string
}

type RenderConfig struct {
	TopicName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "local"),
			DataDir:   getEnv("DATA_DIR", "./data"),
			ExportDir: getEnv("EXPORT_DIR", "./exports"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Render: RenderConfig{
			TopicName: getEnv("RENDER_NOTE_TOPIC_NAME", "RENDER_NOTE_PREVIEW"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
