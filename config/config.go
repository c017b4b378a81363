package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the whole service configuration, loaded from the environment
// with optional .env overrides.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Logger LoggerConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	ServiceName string
	Environment string
	HTTPPort    string
}

type StoreConfig struct {
	// Path of the embedded database file.
	Path string
}

type LoggerConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			ServiceName: getEnv("SERVICE_NAME", "stock-ledger"),
			Environment: getEnv("ENVIRONMENT", "development"),
			HTTPPort:    getEnv("HTTP_PORT", "8080"),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "lagerbestand.db"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
