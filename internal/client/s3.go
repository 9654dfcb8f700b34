package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/time/rate"
)

type RateLimitedS3Client struct {
	*s3.Client
	limiter *rate.Limiter
	region  string
}

func NewS3Client(region string, requestsPerSecond float64, burstSize int) (*RateLimitedS3Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRetryer(func() aws.Retryer {
			return retry.NewStandard(func(opts *retry.StandardOptions) {
				opts.MaxAttempts = 3
				opts.MaxBackoff = 20 * time.Second
			})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if region != "" {
		cfg.Region = region
	}

	return &RateLimitedS3Client{
		Client:  s3.NewFromConfig(cfg),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
		region:  cfg.Region,
	}, nil
}

// Region is the region the client resolved, either the one given or the one
// from the shared AWS config.
func (c *RateLimitedS3Client) Region() string {
	return c.region
}

func (c *RateLimitedS3Client) Wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

func (c *RateLimitedS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if err := c.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter cancelled: %w", err)
	}
	return c.Client.HeadObject(ctx, params, optFns...)
}

// PutObject retries SlowDown responses on top of the SDK retryer, waiting for
// a fresh limiter token between attempts. The body must be seekable for a
// retry to resend it.
func (c *RateLimitedS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	const maxExtraRetries = 5
	var lastErr error

	for i := 0; i <= maxExtraRetries; i++ {
		if err := c.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter cancelled: %w", err)
		}

		output, err := c.Client.PutObject(ctx, params, optFns...)
		if err == nil {
			return output, nil
		}

		lastErr = err
		if !strings.Contains(err.Error(), "SlowDown") && !strings.Contains(err.Error(), "retry quota exceeded") {
			return nil, err
		}
	}

	return nil, lastErr
}
