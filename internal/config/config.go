package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Blob       BlobConfig       `yaml:"blob"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Sweeper    SweeperConfig    `yaml:"sweeper"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"4000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// BlobConfig selects and configures the image blob store.
// Backend "fs" writes under Dir; backend "s3" uses the S3 settings and
// works with any S3-compatible service (MinIO, R2, Spaces).
type BlobConfig struct {
	Backend string `yaml:"backend" env:"BLOB_BACKEND" env-default:"fs"`
	Dir     string `yaml:"dir"     env:"BLOB_DIR"     env-default:"storage"`

	S3Region    string `yaml:"s3_region"     env:"BLOB_S3_REGION"     env-default:"us-east-1"`
	S3Bucket    string `yaml:"s3_bucket"     env:"BLOB_S3_BUCKET"`
	S3AccessKey string `yaml:"s3_access_key" env:"BLOB_S3_ACCESS_KEY"`
	S3SecretKey string `yaml:"s3_secret_key" env:"BLOB_S3_SECRET_KEY"`
	S3Endpoint  string `yaml:"s3_endpoint"   env:"BLOB_S3_ENDPOINT"`
}

// ClassifierConfig holds settings for the image classification provider.
type ClassifierConfig struct {
	APIKey       string        `yaml:"api_key"       env:"ANTHROPIC_API_KEY" env-required:"true"`
	Model        string        `yaml:"model"         env:"ANTHROPIC_MODEL"   env-default:"claude-opus-4-5"`
	MaxTokens    int64         `yaml:"max_tokens"    env:"CLASSIFIER_MAX_TOKENS"    env-default:"512"`
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"CLASSIFIER_RETRY_BACKOFF" env-default:"500ms"`
}

// SweeperConfig controls the background purge of soft-deleted entries.
type SweeperConfig struct {
	Interval   time.Duration `yaml:"interval"    env:"SWEEPER_INTERVAL"    env-default:"5m"`
	RestoreTTL time.Duration `yaml:"restore_ttl" env:"SWEEPER_RESTORE_TTL" env-default:"1h"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
