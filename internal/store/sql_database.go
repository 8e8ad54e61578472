package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/migrations"
)

// DB wraps a *sql.DB together with its dialect, a squirrel statement
// builder using the dialect's placeholder format and the classifier of the
// dialect's constraint errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// NewConnectDB opens the database selected by the DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite:// uses go-sqlite3.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, config.SchemePostgres), strings.HasPrefix(cfg.DSN, config.SchemePostgreSQL):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, config.SchemeSQLite):
		return NewConnectSQLite(ctx, strings.TrimPrefix(cfg.DSN, config.SchemeSQLite), log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}
