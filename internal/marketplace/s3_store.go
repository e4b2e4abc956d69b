package marketplace

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/GTDGit/seller_hub/internal/config"
	"github.com/GTDGit/seller_hub/internal/models"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3InvoiceStore uploads invoices to S3 and hands out presigned GET URLs.
type S3InvoiceStore struct {
	put     objectPutter
	presign func(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
	bucket  string
	prefix  string
	ttl     time.Duration
}

// NewS3InvoiceStore builds a store from the default AWS credential chain.
// A non-empty Endpoint targets an S3-compatible service with path-style addressing.
func NewS3InvoiceStore(ctx context.Context, cfg *config.InvoiceConfig) (*S3InvoiceStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	presigner := s3.NewPresignClient(client)

	return &S3InvoiceStore{
		put: client,
		presign: func(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
			req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
			}, s3.WithPresignExpires(ttl))
			if err != nil {
				return "", err
			}
			return req.URL, nil
		},
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		ttl:    cfg.PresignTTL,
	}, nil
}

// Put uploads body under <prefix>/<orderId>.txt and returns a presigned URL.
func (s *S3InvoiceStore) Put(ctx context.Context, order *models.OrderWithItems, body []byte) (string, error) {
	key := invoiceKey(s.prefix, order.OrderID)

	if _, err := s.put.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/plain; charset=utf-8"),
	}); err != nil {
		return "", fmt.Errorf("failed to upload invoice: %w", err)
	}

	url, err := s.presign(ctx, s.bucket, key, s.ttl)
	if err != nil {
		return "", fmt.Errorf("failed to presign invoice: %w", err)
	}
	return url, nil
}

// invoiceKey maps an external order id to an object key under prefix. Characters
// outside [A-Za-z0-9._-] become '_', so the id cannot leave the prefix.
func invoiceKey(prefix, orderID string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, orderID)
	return path.Join(prefix, name+".txt")
}
