// Package archive exports stats snapshots to an S3 compatible bucket
// (AWS S3, Cloudflare R2, MinIO).
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"green-hash-api/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gosimple/slug"
)

// ObjectPutter is the part of the S3 client the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config describes the bucket and how to reach it. Endpoint is only set
// for non-AWS providers; empty keys fall back to the default AWS chain.
type Config struct {
	Bucket    string
	Name      string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Client builds a client for cfg.
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading s3 config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Archiver writes JSON documents of stats snapshots under a key prefix
// derived from the archive name.
type Archiver struct {
	client ObjectPutter
	bucket string
	prefix string
}

// New constructs an Archiver. The name is turned into a URL safe prefix,
// e.g. "Green Hash Mining Stats" becomes "green-hash-mining-stats".
func New(client ObjectPutter, bucket, name string) *Archiver {
	prefix := slug.Make(name)
	if prefix == "" {
		prefix = "mining-stats"
	}
	return &Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Document is the archived object body.
type Document struct {
	ExportedAt time.Time            `json:"exported_at"`
	Count      int                  `json:"count"`
	Stats      []models.MiningStats `json:"stats"`
}

// Key returns the object key for an export taken at t.
func (a *Archiver) Key(t time.Time) string {
	return fmt.Sprintf("%s/%s.json", a.prefix, t.UTC().Format("20060102-150405"))
}

// ExportStats uploads stats as one JSON object and returns its key.
func (a *Archiver) ExportStats(ctx context.Context, stats []models.MiningStats, at time.Time) (string, error) {
	if len(stats) == 0 {
		return "", errors.New("nothing to export")
	}

	body, err := json.Marshal(Document{
		ExportedAt: at.UTC(),
		Count:      len(stats),
		Stats:      stats,
	})
	if err != nil {
		return "", fmt.Errorf("encoding stats: %w", err)
	}

	key := a.Key(at)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	return key, nil
}
