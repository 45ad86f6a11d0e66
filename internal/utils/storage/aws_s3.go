package storage

import (
	"Recipeat/internal/utils"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

const defaultImageURLTTL = 15 * time.Minute

type (
	// ImageResolver turns a recipe image reference into a URL a client can load.
	ImageResolver interface {
		ImageURL(ctx context.Context, ref string) (string, error)
	}

	awsS3 struct {
		bucket    string
		ttl       time.Duration
		presigner *s3.PresignClient
	}

	passthrough struct{}
)

// NewAwsS3 builds a resolver that presigns object keys in the configured
// bucket. Without a bucket it falls back to NewPassthrough.
func NewAwsS3() ImageResolver {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	if bucket == "" {
		log.Info("AWS_S3_BUCKET not set, image references are served as-is")
		return NewPassthrough()
	}

	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Errorf("failed to load AWS config, image references are served as-is: %v", err)
		return NewPassthrough()
	}

	return &awsS3{
		bucket:    bucket,
		ttl:       imageURLTTL(),
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
	}
}

func imageURLTTL() time.Duration {
	minutes, err := strconv.Atoi(utils.GetConfig("IMAGE_URL_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return defaultImageURLTTL
	}
	return time.Duration(minutes) * time.Minute
}

func (a *awsS3) ImageURL(ctx context.Context, ref string) (string, error) {
	if ref == "" || IsAbsoluteURL(ref) {
		return ref, nil
	}

	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}, s3.WithPresignExpires(a.ttl))
	if err != nil {
		return "", fmt.Errorf("presign image %q: %w", ref, err)
	}
	return req.URL, nil
}

// NewPassthrough returns a resolver that leaves every reference unchanged.
func NewPassthrough() ImageResolver {
	return passthrough{}
}

func (passthrough) ImageURL(_ context.Context, ref string) (string, error) {
	return ref, nil
}

func IsAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
