// Package storage issues presigned URLs against S3-compatible object
// storage. File bytes never transit this service: clients upload and
// download directly against the signed URLs.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/config"
)

type Presigner struct {
	cfg *config.Config
}

func NewPresigner(cfg *config.Config) *Presigner {
	return &Presigner{cfg: cfg}
}

// ObjectKey builds a date-partitioned random key under prefix
// ("videos", "thumbnails", "avatars", ...).
func ObjectKey(prefix string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%02d/%s", prefix, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (p *Presigner) client(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(p.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.cfg.S3AccessKey,
			p.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if p.cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(p.cfg.S3Endpoint)
		}
		o.UsePathStyle = p.cfg.S3Endpoint != "" // MinIO
	})

	return s3.NewPresignClient(client), nil
}

// UploadURL mints a fresh object key under prefix and a presigned PUT URL
// for it.
func (p *Presigner) UploadURL(ctx context.Context, prefix string) (string, string, error) {
	pc, err := p.client(ctx)
	if err != nil {
		return "", "", err
	}

	key := ObjectKey(prefix)
	req, err := pc.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.cfg.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.cfg.S3PresignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return key, req.URL, nil
}

// DownloadURL presigns a GET for an existing object key.
func (p *Presigner) DownloadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	pc, err := p.client(ctx)
	if err != nil {
		return "", err
	}

	req, err := pc.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.cfg.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.cfg.S3PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return req.URL, nil
}
