package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"portfolio-blog/internal/resilience/retry"
)

// S3Provider stores uploads in an S3-compatible bucket. It works against
// AWS S3 as well as MinIO or R2 by setting a custom endpoint.
type S3Provider struct {
	client    *s3.Client
	bucket    string
	publicURL string
	prefix    string
}

// S3Config holds the settings needed to reach the bucket.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3-compatible services
	AccessKey string
	SecretKey string
	PublicURL string // base URL objects are served from
	Prefix    string // optional key prefix inside the bucket
}

// NewS3Provider builds an S3 provider from explicit configuration.
func NewS3Provider(ctx context.Context, cfg S3Config) (*S3Provider, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage: bucket is required")
	}
	if cfg.PublicURL == "" {
		return nil, fmt.Errorf("s3 storage: public URL is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// S3-compatible services usually require path-style addressing.
			o.UsePathStyle = true
		}
	})

	return &S3Provider{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		prefix:    strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// NewS3ProviderFromEnv reads the STORAGE_S3_* environment variables.
func NewS3ProviderFromEnv(ctx context.Context) (*S3Provider, error) {
	return NewS3Provider(ctx, S3Config{
		Bucket:    os.Getenv("STORAGE_S3_BUCKET"),
		Region:    os.Getenv("STORAGE_S3_REGION"),
		Endpoint:  os.Getenv("STORAGE_S3_ENDPOINT"),
		AccessKey: os.Getenv("STORAGE_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("STORAGE_S3_SECRET_KEY"),
		PublicURL: os.Getenv("STORAGE_S3_PUBLIC_URL"),
		Prefix:    os.Getenv("STORAGE_S3_PREFIX"),
	})
}

func (p *S3Provider) key(filename string) string {
	if p.prefix == "" {
		return filename
	}
	return p.prefix + "/" + filename
}

func (p *S3Provider) Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(p.key(filename)),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", filename, err)
	}
	return p.publicURL + "/" + p.key(filename), nil
}

// Delete removes the object, retrying transient failures. Put is not
// retried: its body is a one-shot stream.
func (p *S3Provider) Delete(ctx context.Context, filename string) error {
	err := retry.WithBackoff(ctx, retry.StorageConfig(), func() error {
		_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(p.key(filename)),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", filename, err)
	}
	return nil
}

func (p *S3Provider) OwnsURL(url string) bool {
	return strings.HasPrefix(url, p.publicURL+"/")
}
