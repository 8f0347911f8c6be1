// Package objectstore stores product images in an S3 compatible bucket.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrNotConfigured = errors.New("object storage is not configured")

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Store interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type S3Store struct {
	client  s3API
	bucket  string
	baseURL string
}

// New loads the AWS configuration with the default credential chain unless
// static keys are set. A custom endpoint switches to path style addressing.
func New(ctx context.Context, cfg config.Storage) (*S3Store, error) {

	if cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		credProvider := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(credProvider))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	slog.Info("🪣 Object storage initialized", slog.String("bucket", cfg.Bucket), slog.String("region", cfg.Region))

	return newS3Store(client, cfg), nil
}

func newS3Store(client s3API, cfg config.Storage) *S3Store {

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		switch {
		case cfg.Endpoint != "":
			baseURL = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
		default:
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return s.URL(key), nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	return nil
}

func (s *S3Store) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}
