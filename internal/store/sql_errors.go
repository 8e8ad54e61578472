package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Unique constraint names of the users table, as declared in the
// migrations. SQLite reports the column instead of the constraint name.
const (
	constraintUsersUsername = "users_username_key"
	constraintUsersEmail    = "users_email_key"

	columnUsersUsername = "users.username"
	columnUsersEmail    = "users.email"
)

// ErrorClassificator maps driver specific constraint errors to the sentinel
// errors of this package.
type ErrorClassificator interface {
	// Classify returns the sentinel matching err, or nil when err is not a
	// known constraint violation.
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the *pgconn.PgError returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case constraintUsersUsername:
		return ErrUsernameAlreadyExists
	case constraintUsersEmail:
		return ErrEmailAlreadyExists
	default:
		return nil
	}
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3,
// which reports unique violations as
// "UNIQUE constraint failed: users.username".
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return nil
	}

	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, columnUsersUsername):
		return ErrUsernameAlreadyExists
	case strings.Contains(msg, columnUsersEmail):
		return ErrEmailAlreadyExists
	default:
		return nil
	}
}
