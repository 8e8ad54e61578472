package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// UserFolder returns the folder (or key prefix) holding the files of userID.
func UserFolder(userID int64) string {
	return fmt.Sprintf("user_%d", userID)
}

// localFileStorage is the filesystem implementation of [FileStorage].
// Files live in root/user_<id>/<name>.
type localFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalFileStorage creates root if it does not exist and returns a
// [FileStorage] writing below it.
func NewLocalFileStorage(root string, logger *logger.Logger) (FileStorage, error) {
	logger.Debug().Str("root", root).Msg("creating local file storage")

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("error resolving upload dir: %w", err)
	}

	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload dir: %w", err)
	}

	return &localFileStorage{
		root:   abs,
		logger: logger,
	}, nil
}

func (l *localFileStorage) EnsureUserDirectory(ctx context.Context, userID int64) (string, error) {
	folder := UserFolder(userID)
	if err := os.MkdirAll(filepath.Join(l.root, folder), 0o755); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localFileStorage.EnsureUserDirectory").
			Int64("user_id", userID).
			Msg("failed to create user folder")
		return "", fmt.Errorf("error creating user folder: %w", err)
	}

	return folder, nil
}

// Save writes r into a temporary file next to the target and renames it
// into place, so a failed upload never leaves a truncated file behind and
// an existing file of the same name is replaced as a whole.
func (l *localFileStorage) Save(ctx context.Context, userID int64, fileName string, r io.Reader) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if !isPlainFileName(fileName) {
		return models.StoredFile{}, fmt.Errorf("%w: %q", ErrInvalidFilePath, fileName)
	}

	folder, err := l.EnsureUserDirectory(ctx, userID)
	if err != nil {
		return models.StoredFile{}, err
	}

	key := path.Join(folder, fileName)
	target, err := l.resolve(key)
	if err != nil {
		return models.StoredFile{}, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Msg("failed to create temp file")
		return models.StoredFile{}, fmt.Errorf("error creating file: %w", err)
	}
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmp.Name())
	}()

	size, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("key", key).Msg("failed to write file")
		return models.StoredFile{}, fmt.Errorf("error writing file: %w", err)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("key", key).Msg("failed to move file into place")
		return models.StoredFile{}, fmt.Errorf("error writing file: %w", err)
	}

	return models.StoredFile{
		Path: key,
		Name: fileName,
		Size: size,
	}, nil
}

func (l *localFileStorage) Open(ctx context.Context, key string) (*StoredObject, error) {
	full, err := l.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localFileStorage.Open").Str("key", key).Msg("failed to open file")
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, ErrFileNotFound
	}

	return &StoredObject{ReadCloser: f, Size: info.Size()}, nil
}

func (l *localFileStorage) Delete(ctx context.Context, key string) error {
	full, err := l.resolve(key)
	if err != nil {
		return err
	}

	err = os.Remove(full)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*localFileStorage.Delete").Str("key", key).Msg("failed to delete file")
		return fmt.Errorf("error deleting file: %w", err)
	}

	return nil
}

// resolve maps a slash separated storage key to a path below root and
// rejects keys that are absolute or climb out of root.
func (l *localFileStorage) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == "." || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilePath, key)
	}

	return filepath.Join(l.root, clean), nil
}

// isPlainFileName reports whether name is a single path element.
func isPlainFileName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
