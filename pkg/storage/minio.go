// Package storage provides the MinIO-backed image store used for garment
// photos. The wardrobe service treats it as a black box: Store returns an
// opaque object key persisted on the garment record, Release best-effort
// deletes it when the garment is destroyed.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ghuser/wardrobe/pkg/config"
)

const objectPrefix = "garments"

// ImageStore is the collaborator boundary the wardrobe service depends on.
type ImageStore interface {
	// Store uploads the image and returns its object key.
	Store(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
	// Release deletes a stored image. Best-effort: callers log failures
	// and continue.
	Release(ctx context.Context, key string) error
}

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Wrapper to adapt *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (w minioClientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return w.c.RemoveObject(ctx, bucketName, objectName, opts)
}

var _ ImageStore = (*MinioStore)(nil)

// MinioStore implements ImageStore against a MinIO (or S3-compatible) bucket.
type MinioStore struct {
	api    minioAPI
	bucket string
}

// NewMinioStore connects to MinIO using cfg and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return NewMinioStoreWithAPI(ctx, minioClientWrapper{c: client}, cfg.MinioBucket)
}

// NewMinioStoreWithAPI allows injecting a mockable API (used in tests).
func NewMinioStoreWithAPI(ctx context.Context, api minioAPI, bucket string) (*MinioStore, error) {
	s := &MinioStore{api: api, bucket: bucket}
	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket exists: %w", err)
	}
	return s, nil
}

func (s *MinioStore) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

// Store uploads the image under a generated key "garments/<uuid>".
func (s *MinioStore) Store(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	key := path.Join(objectPrefix, uuid.NewString())
	_, err := s.api.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return key, nil
}

// Ping reports whether the bucket is reachable. Satisfies httpx.HealthChecker.
func (s *MinioStore) Ping(ctx context.Context) error {
	if _, err := s.api.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("ping image store: %w", err)
	}
	return nil
}

// Release deletes a stored image by key.
func (s *MinioStore) Release(ctx context.Context, key string) error {
	if err := s.api.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
