package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ThriveAssessments/case-manager/internal/config"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
)

// S3DocumentStore keeps rendered contract documents and signature images in an
// S3-compatible bucket. A custom endpoint (MinIO in dev) switches the client
// to path-style addressing.
type S3DocumentStore struct {
	client *s3.Client
	bucket string
}

func NewS3DocumentStore(cfg *config.Config) *S3DocumentStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3DocumentStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

var _ domain.DocumentStore = (*S3DocumentStore)(nil)

func (s *S3DocumentStore) Put(
	ctx context.Context,
	key string,
	contentType string,
	body []byte,
) error {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(body),
	})

	return err
}

func (s *S3DocumentStore) Get(
	ctx context.Context,
	key string,
) ([]byte, error) {

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
