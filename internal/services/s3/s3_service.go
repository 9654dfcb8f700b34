package s3

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Client is the subset of the S3 API the publisher needs.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Service struct {
	client Client
	region string
}

func NewS3Service(client Client, region string) *S3Service {
	return &S3Service{client: client, region: region}
}

// PublishedTemplate describes one uploaded (or already present) template.
type PublishedTemplate struct {
	Bucket   string `json:"bucket"`
	Key      string `json:"key"`
	URL      string `json:"url"`
	Uploaded bool   `json:"uploaded"`
}

func (s *S3Service) ParseS3URI(s3Uri string) (string, string, error) {
	if !strings.HasPrefix(s3Uri, "s3://") {
		return "", "", fmt.Errorf("invalid S3 URI: must start with 's3://'")
	}

	uriPath := strings.TrimPrefix(s3Uri, "s3://")

	parts := strings.SplitN(uriPath, "/", 2)
	if parts[0] == "" {
		return "", "", fmt.Errorf("invalid S3 URI: missing bucket name")
	}

	bucket := parts[0]
	prefix := ""
	if len(parts) > 1 {
		prefix = strings.Trim(parts[1], "/")
	}

	return bucket, prefix, nil
}

// TemplateKey is content addressed: identical templates share a key.
func TemplateKey(prefix string, body []byte) string {
	sum := sha256.Sum256(body)
	name := hex.EncodeToString(sum[:]) + ".json"
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func (s *S3Service) TemplateURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, key)
}

// PublishTemplate uploads a rendered template unless an object with the same
// content hash already exists.
func (s *S3Service) PublishTemplate(ctx context.Context, bucket, prefix string, body []byte) (PublishedTemplate, error) {
	key := TemplateKey(prefix, body)
	published := PublishedTemplate{
		Bucket: bucket,
		Key:    key,
		URL:    s.TemplateURL(bucket, key),
	}

	exists, err := s.objectExists(ctx, bucket, key)
	if err != nil {
		return PublishedTemplate{}, err
	}
	if exists {
		slog.Debug("⏭️ template already published", "bucket", bucket, "key", key)
		return published, nil
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return PublishedTemplate{}, fmt.Errorf("failed to upload template %s: %w", key, err)
	}

	slog.Info("☁️ published template", "bucket", bucket, "key", key)
	published.Uploaded = true
	return published, nil
}

func (s *S3Service) objectExists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var notFound *s3types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchKey") {
		return false, nil
	}
	return false, fmt.Errorf("failed to check template %s: %w", key, err)
}
