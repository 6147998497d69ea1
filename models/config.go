package models

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// AWS
	AWSRegion           string `mapstructure:"aws_region"`
	AWSAccessKeyID      string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey  string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint    string `mapstructure:"dynamodb_endpoint"`
	DynamoDBTablePrefix string `mapstructure:"dynamodb_table_prefix"`
	DynamoDBMaxRetries  int    `mapstructure:"dynamodb_max_retries"`

	// Counter guard admission: one holder at a time, queue bounded to
	// the host's expected concurrent request ceiling.
	CounterGuardCapacity int `mapstructure:"counter_guard_capacity"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	// Infrastructure worker
	WorkerCronSchedule   string `mapstructure:"worker_cron_schedule"`
	WorkerLockFilePath   string `mapstructure:"worker_lock_file_path"`
	WorkerStatusFilePath string `mapstructure:"worker_status_file_path"`

	Tables []string `mapstructure:"tables"`
}
