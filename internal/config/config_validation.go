// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to fields left unset by every configuration source.
const (
	DefaultHTTPAddress            = ":5000"
	DefaultDSN                    = "sqlite://database.db"
	DefaultUploadDir              = "uploads"
	DefaultSessionsDir            = "sessions"
	DefaultSessionCookieName      = "session"
	DefaultSessionTTL             = 24 * time.Hour
	DefaultMaxUploadSize          = 50 << 20
	DefaultRequestTimeout         = 60 * time.Second
	DefaultAuthRateLimit          = 20
	DefaultSessionCleanupInterval = 10 * time.Minute
)

// DSN schemes understood by the storage layer.
const (
	SchemePostgres   = "postgres://"
	SchemePostgreSQL = "postgresql://"
	SchemeSQLite     = "sqlite://"
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.App.SessionCookieName == "" {
		cfg.App.SessionCookieName = DefaultSessionCookieName
	}
	if cfg.App.MaxUploadSize == 0 {
		cfg.App.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.Files.Backend == "" {
		cfg.Storage.Files.Backend = FilesBackendLocal
	}
	if cfg.Storage.Files.UploadDir == "" {
		cfg.Storage.Files.UploadDir = DefaultUploadDir
	}
	if cfg.Storage.Sessions.Backend == "" {
		cfg.Storage.Sessions.Backend = SessionsBackendMemory
	}
	if cfg.Storage.Sessions.Dir == "" {
		cfg.Storage.Sessions.Dir = DefaultSessionsDir
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.AuthRateLimit == 0 {
		cfg.Server.AuthRateLimit = DefaultAuthRateLimit
	}

	if cfg.Workers.SessionCleanupInterval == 0 {
		cfg.Workers.SessionCleanupInterval = DefaultSessionCleanupInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	dsn := cfg.Storage.DB.DSN
	if !strings.HasPrefix(dsn, SchemePostgres) &&
		!strings.HasPrefix(dsn, SchemePostgreSQL) &&
		!strings.HasPrefix(dsn, SchemeSQLite) {
		return fmt.Errorf("%w: unsupported database DSN scheme", ErrInvalidStorageConfigs)
	}
	if strings.HasPrefix(dsn, SchemeSQLite) && strings.TrimPrefix(dsn, SchemeSQLite) == "" {
		return fmt.Errorf("%w: empty sqlite database path", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Files.Backend {
	case FilesBackendLocal:
	case FilesBackendS3:
		if cfg.Storage.Files.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 bucket is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported files backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend)
	}

	switch cfg.Storage.Sessions.Backend {
	case SessionsBackendMemory, SessionsBackendBadger:
	default:
		return fmt.Errorf("%w: unsupported sessions backend %q", ErrInvalidStorageConfigs, cfg.Storage.Sessions.Backend)
	}

	if cfg.App.MaxUploadSize < 0 || cfg.App.SessionTTL < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost out of range", ErrInvalidAppConfigs)
	}

	if cfg.Server.AuthRateLimit < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.FolderRepairInterval < 0 || cfg.Workers.SessionCleanupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
