package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	GRPC     GRPCConfig
	Auth     AuthConfig
	Images   ImagesConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path string // SQLite database file path
}

// GRPCConfig contains gRPC server settings.
type GRPCConfig struct {
	Address string // gRPC server listen address (e.g., ":50051")
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret string // JWT signing secret
}

// ImagesConfig contains the image storage boundary settings.
type ImagesConfig struct {
	Dir string // root directory for stored report images
}

// Load loads configuration from a developer .env file (if present) and
// environment variables with sensible defaults.
func Load() (*Config, error) {
	// A missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "lostfound.db"),
		},
		GRPC: GRPCConfig{
			Address: getEnv("GRPC_ADDRESS", ":50051"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Images: ImagesConfig{
			Dir: getEnv("IMAGES_DIR", "images"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but uses a safe default for JWT_SECRET in
// development. WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	return &Config{
		Database: DatabaseConfig{Path: getEnv("DB_PATH", "lostfound.db")},
		GRPC:     GRPCConfig{Address: getEnv("GRPC_ADDRESS", ":50051")},
		Auth:     AuthConfig{JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me")},
		Images:   ImagesConfig{Dir: getEnv("IMAGES_DIR", "images")},
	}, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s, gRPC: %s, Images: %s, Auth: *** (masked) ***}",
		c.Database.Path, c.GRPC.Address, c.Images.Dir)
}
