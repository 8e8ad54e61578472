package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// S3API is the subset of *s3.Client used by the S3 file storage.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3FileStorage is the object storage implementation of [FileStorage].
// Storage keys double as object keys in the bucket.
type s3FileStorage struct {
	client S3API
	bucket string
	logger *logger.Logger
}

// NewS3Client builds an S3 client from cfg. Static credentials are used
// when an access key is configured, otherwise the default AWS credential
// chain applies. A custom endpoint targets S3 compatible servers such as
// MinIO.
func NewS3Client(ctx context.Context, cfg config.S3) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// NewS3FileStorage returns a [FileStorage] storing objects in bucket.
func NewS3FileStorage(client S3API, bucket string, logger *logger.Logger) FileStorage {
	logger.Debug().Str("bucket", bucket).Msg("creating s3 file storage")
	return &s3FileStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// EnsureUserDirectory only computes the key prefix; object stores have no
// directories to create.
func (s *s3FileStorage) EnsureUserDirectory(ctx context.Context, userID int64) (string, error) {
	return UserFolder(userID), nil
}

// Save spools r to a temporary file first so the SDK gets a seekable body
// with a known length.
func (s *s3FileStorage) Save(ctx context.Context, userID int64, fileName string, r io.Reader) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if !isPlainFileName(fileName) {
		return models.StoredFile{}, fmt.Errorf("%w: %q", ErrInvalidFilePath, fileName)
	}

	tmp, err := os.CreateTemp("", "doc-manager-upload-*")
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("error creating temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	size, err := io.Copy(tmp, r)
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("error buffering upload: %w", err)
	}
	if _, err = tmp.Seek(0, io.SeekStart); err != nil {
		return models.StoredFile{}, fmt.Errorf("error buffering upload: %w", err)
	}

	key := path.Join(UserFolder(userID), fileName)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          tmp,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3FileStorage.Save").Str("key", key).Msg("failed to put object")
		return models.StoredFile{}, fmt.Errorf("error uploading object: %w", err)
	}

	return models.StoredFile{
		Path: key,
		Name: fileName,
		Size: size,
	}, nil
}

func (s *s3FileStorage) Open(ctx context.Context, key string) (*StoredObject, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrFileNotFound
		}

		logger.FromContext(ctx).Err(err).Str("func", "*s3FileStorage.Open").Str("key", key).Msg("failed to get object")
		return nil, fmt.Errorf("error downloading object: %w", err)
	}

	return &StoredObject{
		ReadCloser: out.Body,
		Size:       aws.ToInt64(out.ContentLength),
	}, nil
}

// Delete relies on DeleteObject succeeding for missing keys.
func (s *s3FileStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3FileStorage.Delete").Str("key", key).Msg("failed to delete object")
		return fmt.Errorf("error deleting object: %w", err)
	}

	return nil
}
