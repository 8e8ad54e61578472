package store

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vijaycharanme-code/doc-manager/models"
)

const (
	usersTable     = "users"
	documentsTable = "documents"
)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

var documentColumns = []string{
	"id",
	"user_id",
	"name",
	"original_filename",
	"google_doc_link",
	"file_path",
	"file_type",
	"file_size",
	"category",
	"tags",
	"description",
	"created_at",
}

// Columns the stats histograms may group by.
const (
	groupByFileType = "file_type"
	groupByCategory = "category"
)

func buildCreateUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserQuery(b squirrel.StatementBuilderType, where squirrel.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildListUserIDsQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	return b.Select("id").
		From(usersTable).
		OrderBy("id").
		ToSql()
}

func buildSaveDocumentQuery(b squirrel.StatementBuilderType, doc models.Document) (string, []any, error) {
	return b.Insert(documentsTable).
		Columns(documentColumns[1:]...).
		Values(
			doc.UserID,
			doc.Name,
			nullString(doc.OriginalFilename),
			nullString(doc.Link),
			nullString(doc.FilePath),
			nullString(doc.FileType),
			doc.FileSize,
			doc.Category,
			nullString(doc.Tags),
			nullString(doc.Description),
			doc.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

// buildListDocumentsQuery orders newest first; id breaks created_at ties.
func buildListDocumentsQuery(b squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(documentColumns...).
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetDocumentQuery(b squirrel.StatementBuilderType, userID, documentID int64) (string, []any, error) {
	return b.Select(documentColumns...).
		From(documentsTable).
		Where(squirrel.Eq{"id": documentID, "user_id": userID}).
		ToSql()
}

func buildDeleteDocumentQuery(b squirrel.StatementBuilderType, userID, documentID int64) (string, []any, error) {
	return b.Delete(documentsTable).
		Where(squirrel.Eq{"id": documentID, "user_id": userID}).
		ToSql()
}

func buildStatsTotalsQuery(b squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("COUNT(*)", "CAST(COALESCE(SUM(file_size), 0) AS BIGINT)").
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
}

// buildStatsHistogramQuery counts the documents of userID per distinct
// value of column, which must be groupByFileType or groupByCategory.
func buildStatsHistogramQuery(b squirrel.StatementBuilderType, userID int64, column string) (string, []any, error) {
	if column != groupByFileType && column != groupByCategory {
		return "", nil, fmt.Errorf("%w: cannot group by %q", ErrBuildingSQLQuery, column)
	}

	label := fmt.Sprintf("COALESCE(%s, '')", column)
	return b.Select(label, "COUNT(*)").
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy(label).
		ToSql()
}

func buildRecentDocumentsQuery(b squirrel.StatementBuilderType, userID int64, limit uint64) (string, []any, error) {
	return b.Select("name", "category").
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	return user, err
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc              models.Document
		originalFilename sql.NullString
		link             sql.NullString
		filePath         sql.NullString
		fileType         sql.NullString
		fileSize         sql.NullInt64
		tags             sql.NullString
		description      sql.NullString
	)

	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Name,
		&originalFilename,
		&link,
		&filePath,
		&fileType,
		&fileSize,
		&doc.Category,
		&tags,
		&description,
		&doc.CreatedAt,
	)
	if err != nil {
		return models.Document{}, err
	}

	doc.OriginalFilename = originalFilename.String
	doc.Link = link.String
	doc.FilePath = filePath.String
	doc.FileType = fileType.String
	doc.Tags = tags.String
	doc.Description = description.String
	if fileSize.Valid {
		size := fileSize.Int64
		doc.FileSize = &size
	}

	return doc, nil
}
