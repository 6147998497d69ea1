package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"hitbadge-backend/models"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")

	setDefaults(v)

	// Enable environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Config file not found, continue with defaults and env vars
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "HitBadge Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8081")

	// AWS defaults
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("dynamodb_table_prefix", "dev")
	v.SetDefault("dynamodb_max_retries", 3)

	// Same ceiling as the host's default concurrent request limit
	v.SetDefault("counter_guard_capacity", 100)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Base Path default
	v.SetDefault("basePath", "/")

	// Infrastructure worker defaults
	v.SetDefault("worker_cron_schedule", "@every 10m")
	v.SetDefault("worker_lock_file_path", "./tmp/infra.lock")
	v.SetDefault("worker_status_file_path", "./tmp/infra-status.json")

	v.SetDefault("tables", []string{"hitcounterstore", "userstore"})
}

// validateConfig checks required configuration values
func validateConfig(config *models.Config) error {
	if config.AppPort == "" {
		return fmt.Errorf("app_port is required")
	}
	if config.AWSRegion == "" {
		return fmt.Errorf("aws_region is required")
	}
	if config.DynamoDBTablePrefix == "" {
		return fmt.Errorf("dynamodb_table_prefix is required")
	}
	if config.CounterGuardCapacity <= 0 {
		return fmt.Errorf("counter_guard_capacity must be positive")
	}
	return nil
}

// GenerateUUID returns a random UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// PrintPrettyJSON returns the indented JSON rendering of v for logs
func PrintPrettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
