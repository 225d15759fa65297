// Package s3 implements object storage on AWS S3 with presigned GET URLs.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"resume-builder/pkg/storage/object"
)

const presignTTL = 15 * time.Minute

type Store struct {
	client  *awss3.Client
	presign *awss3.PresignClient
	bucket  string
	prefix  string
}

// New creates an S3-backed object store.
func New(client *awss3.Client, bucket, prefix string) object.ObjectStore {
	return &Store{
		client:  client,
		presign: awss3.NewPresignClient(client),
		bucket:  bucket,
		prefix:  prefix,
	}
}

// Save uploads the reader under the configured prefix.
func (s *Store) Save(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}

	_, err = s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return 0, fmt.Errorf("put object: %w", err)
	}
	return int64(len(body)), nil
}

// URL returns a time-limited presigned GET URL for the key.
func (s *Store) URL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	}, awss3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}

func (s *Store) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}
