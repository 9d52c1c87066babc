// Package object implements blob storage for uploaded files on any
// S3-compatible backend via the minio client.
package object

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
)

type minioStorage struct {
	client *minio.Client
	bucket string
	// base URL for public object links, e.g. "https://cdn.example.com"
	baseURL string
}

var _ core.ObjectStorage = (*minioStorage)(nil) // interface compliance check

func NewMinioStorage(conf core.StorageConfig) (*minioStorage, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating storage client")
	}

	scheme := "http"
	if conf.UseSSL {
		scheme = "https"
	}
	return &minioStorage{
		client:  client,
		bucket:  conf.Bucket,
		baseURL: fmt.Sprintf("%s://%s", scheme, conf.Endpoint),
	}, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func (s *minioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "checking bucket")
	}
	if exists {
		return nil
	}
	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	return errors.Wrap(err, "creating bucket")
}

func (s *minioStorage) Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return errors.Wrap(err, "putting object")
}

func (s *minioStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, path)
}

func (s *minioStorage) Delete(ctx context.Context, path string) error {
	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	return errors.Wrap(err, "removing object")
}
