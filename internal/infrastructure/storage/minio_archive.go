package storage

import (
	"bytes"
	"context"
	"fmt"

	"plumbing_estimator/internal/infrastructure/config"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOArchive stores rendered quote documents in an S3-compatible bucket.
type MinIOArchive struct {
	client     *minio.Client
	bucketName string
}

var _ interfaces.IQuoteArchive = (*MinIOArchive)(nil)

// NewMinIOArchive connects to cfg.Endpoint and creates the bucket when it does
// not exist yet.
func NewMinIOArchive(ctx context.Context, cfg config.MinIOConfig) (*MinIOArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.WithField("bucket", cfg.Bucket).Info("[storage] bucket created")
	}

	return &MinIOArchive{client: client, bucketName: cfg.Bucket}, nil
}

// Put uploads data under objectName and returns "<bucket>/<objectName>".
func (m *MinIOArchive) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return m.bucketName + "/" + objectName, nil
}
