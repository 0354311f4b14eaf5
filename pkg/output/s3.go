package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 10 * time.Second

// S3Config holds the settings for uploading renders
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// S3Uploader puts rendered images into a bucket
type S3Uploader struct {
	client s3iface.S3API
	bucket string
}

// NewS3Uploader creates an uploader backed by a new AWS session
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return newS3Uploader(s3.New(sess), cfg.Bucket), nil
}

func newS3Uploader(client s3iface.S3API, bucket string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket}
}

// Upload stores data under key
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
