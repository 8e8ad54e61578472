// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package config

import (
	"time"
)

// Supported file storage backends.
const (
	FilesBackendLocal = "local"
	FilesBackendS3    = "s3"
)

// Supported session store backends.
const (
	SessionsBackendMemory = "memory"
	SessionsBackendBadger = "badger"
)

// StructuredConfig is the top-level configuration container of the document
// manager. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and upload settings and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database, the file
	// storage backend and the session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and request guard settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds intervals of the background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionTTL is how long a session stays valid after login.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SessionCookieName is the name of the cookie carrying the session token.
	// Env: APP_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`

	// CookieSecure marks the session cookie as HTTPS only.
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// MaxUploadSize caps the size of an upload request body in bytes.
	// Env: APP_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// BcryptCost is the work factor used for password hashing.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB       DB       `envPrefix:"DB_"`
	Files    Files    `envPrefix:"FILES_"`
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN selects the driver by scheme:
	// "postgres://..." / "postgresql://..." or "sqlite://path/to/file.db".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings of the uploaded file storage.
type Files struct {
	// Backend is either "local" or "s3".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// UploadDir is the root directory of the per user folders of the
	// local backend.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	S3 S3 `envPrefix:"S3_"`
}

// S3 holds settings of an S3 compatible object storage.
type S3 struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE"`
}

// Sessions holds settings of the session store.
type Sessions struct {
	// Backend is either "memory" or "badger".
	// Env: STORAGE_SESSIONS_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the badger data directory.
	// Env: STORAGE_SESSIONS_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins enables CORS for the listed origins.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// AuthRateLimit is the number of login and signup requests allowed per
	// client IP per minute.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit int `env:"AUTH_RATE_LIMIT"`

	// MetricsDisabled turns off the /metrics endpoint.
	// Env: SERVER_METRICS_DISABLED
	MetricsDisabled bool `env:"METRICS_DISABLED"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// FolderRepairInterval repeats the user folder repair sweep.
	// Zero runs the sweep once at startup only.
	// Env: WORKERS_FOLDER_REPAIR_INTERVAL
	FolderRepairInterval time.Duration `env:"FOLDER_REPAIR_INTERVAL"`

	// SessionCleanupInterval is how often expired sessions are purged.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field left unset.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
