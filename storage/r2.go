package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

type r2Store struct {
	client        *s3.Client
	bucketName    string
	publicBaseURL *url.URL
}

// NewR2Store returns an ObjectStore backed by a Cloudflare R2 bucket,
// reached through its S3-compatible API.
func NewR2Store(ctx context.Context, cfg R2Config) (ObjectStore, error) {
	if cfg.AccountID == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.BucketName == "" || cfg.PublicBaseURL == "" {
		return nil, errors.New("invalid Cloudflare R2 configuration: all fields are required")
	}

	base, err := url.Parse(cfg.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid R2 public base URL %q: %w", cfg.PublicBaseURL, err)
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsconfig.WithRegion("auto"), // R2 signs with the "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for R2: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &r2Store{
		client:        client,
		bucketName:    cfg.BucketName,
		publicBaseURL: base,
	}, nil
}

func (s *r2Store) Put(ctx context.Context, key string, contentType string, body io.Reader) (*PutResult, error) {
	result, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object to R2 (key: %s): %w", key, err)
	}

	etag := ""
	if result.ETag != nil {
		// S3-compatible APIs quote the ETag.
		etag = strings.Trim(*result.ETag, "\"")
	}

	return &PutResult{
		Key:      key,
		Location: s.PublicURL(key),
		ETag:     etag,
	}, nil
}

func (s *r2Store) PublicURL(key string) string {
	return joinPublicURL(s.publicBaseURL, key)
}

func joinPublicURL(base *url.URL, key string) string {
	if base == nil || key == "" {
		return ""
	}
	u := *base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(key, "/")
	return u.String()
}
