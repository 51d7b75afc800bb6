// Package config provides centralized configuration for the loader.
// Everything comes from environment variables (deployment secrets),
// never from end-user input, and is validated on startup so an
// incomplete deployment fails before any file is accepted.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Sink     SinkConfig
	Export   ExportConfig
	Postgres PostgresConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request body
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response.
	// Zero keeps slow object-store deliveries from being cut off.
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"0s"`

	// IdleTimeout is the keep-alive timeout
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// UploadConfig holds CSV upload settings.
type UploadConfig struct {
	// MaxFileSize is the maximum allowed upload in bytes (default: 100MB)
	MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" default:"104857600"`

	// DownloadRetention is how long processed local copies stay
	// downloadable (default: 1h)
	DownloadRetention time.Duration `env:"DOWNLOAD_RETENTION" default:"1h"`
}

// SinkConfig holds the object-store destination settings. Bucket and
// credentials are required: without them the run halts at startup.
type SinkConfig struct {
	// Bucket is the destination bucket (required)
	Bucket string `env:"S3_PROCESSED_BUCKET" required:"true"`

	// Prefix is the destination key prefix; a trailing slash is added
	// when missing (default: ofertas_limpias/)
	Prefix string `env:"S3_OBJECT_PREFIX" default:"ofertas_limpias/"`

	// Format is the destination encoding: csv or parquet (default: csv)
	Format string `env:"S3_FILE_FORMAT" default:"csv"`

	// Region is the bucket region (default: us-east-1)
	Region string `env:"S3_REGION" default:"us-east-1"`

	// Endpoint overrides the S3 endpoint for compatible stores
	Endpoint string `env:"S3_ENDPOINT"`

	// AccessKeyID and SecretAccessKey are the store credentials (required)
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" required:"true"`
}

// ExportConfig holds encoding settings shared by the sink and download
// paths.
type ExportConfig struct {
	// NAToken is the text written for unknown values in CSV exports:
	// the literal \N escape the bulk loader understands, or "empty"
	// for an empty field. One deployment-wide choice, applied
	// identically to both export paths.
	NAToken string `env:"EXPORT_NA_TOKEN" default:"\\N"`
}

// PostgresConfig holds the optional supplemental destination.
type PostgresConfig struct {
	// URL enables the Postgres destination when set
	URL string `env:"POSTGRES_URL"`

	// Table is the destination table name (default: ofertas_limpias)
	Table string `env:"POSTGRES_TABLE" default:"ofertas_limpias"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Token resolves the configured NA token to the literal text written
// for unknown cells.
func (c *ExportConfig) Token() string {
	if c.NAToken == "empty" {
		return ""
	}
	return c.NAToken
}
