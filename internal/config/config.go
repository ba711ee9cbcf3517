package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_ssl_mode"`
	DBPath     string `json:"db_path"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	// JWTSecret and AdminPasswordHash have no defaults: the server must
	// refuse to start rather than run with a guessable secret.
	JWTSecret         string        `json:"jwt_secret"`
	AdminPasswordHash string        `json:"admin_password_hash"`
	AdminTokenTTL     time.Duration `json:"admin_token_ttl"`
	UserTokenTTL      time.Duration `json:"user_token_ttl"`

	// Content configuration
	UploadDir string `json:"upload_dir"`
	PagesDir  string `json:"pages_dir"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, JWTSecret: [REDACTED], AdminPasswordHash: [REDACTED], AdminTokenTTL: %s, UserTokenTTL: %s, UploadDir: %s, PagesDir: %s}",
		c.Port, c.Host, c.DBDriver, c.DBHost, c.DBName, c.DBUser, c.LogLevel, c.AdminTokenTTL, c.UserTokenTTL, c.UploadDir, c.PagesDir)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminHash == "" {
		return nil, errors.New("ADMIN_PASSWORD_HASH environment variable is required")
	}

	adminTTL, err := time.ParseDuration(GetEnvWithDefault("ADMIN_TOKEN_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_TOKEN_TTL: %w", err)
	}
	userTTL, err := time.ParseDuration(GetEnvWithDefault("USER_TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid USER_TOKEN_TTL: %w", err)
	}

	config := &Config{
		Port:              port,
		Host:              GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:          GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBHost:            GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:            GetEnvWithDefault("DB_PORT", "5432"),
		DBName:            GetEnvWithDefault("DB_NAME", "festival"),
		DBUser:            GetEnvWithDefault("DB_USER", "festival"),
		DBPassword:        GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:         GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:            GetEnvWithDefault("DB_PATH", "festival.sqlite"),
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:         jwtSecret,
		AdminPasswordHash: adminHash,
		AdminTokenTTL:     adminTTL,
		UserTokenTTL:      userTTL,
		UploadDir:         GetEnvWithDefault("UPLOAD_DIR", "uploads"),
		PagesDir:          GetEnvWithDefault("PAGES_DIR", "public"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
