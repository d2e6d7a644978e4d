package template

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

//go:embed index.html
var defaultPage string

// Default returns the page bundled with the binary.
func Default() string {
	return defaultPage
}

type fileSource struct {
	path     string
	fallback bool
}

// NewFileSource reads the template from path. With fallback set, a missing
// file yields the bundled page instead of an error.
func NewFileSource(path string, fallback bool) ports.TemplateSource {
	return &fileSource{path: path, fallback: fallback}
}

func (s *fileSource) Load(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if s.fallback {
				return defaultPage, nil
			}
			return "", fmt.Errorf("%w: %s", domain.ErrTemplateMissing, s.path)
		}
		return "", fmt.Errorf("failed to read template %s: %w", s.path, err)
	}
	return string(b), nil
}

type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client S3GetObjectAPI
	bucket string
	key    string
}

func NewS3Source(client S3GetObjectAPI, bucket, key string) ports.TemplateSource {
	return &s3Source{client: client, bucket: bucket, key: key}
}

func (s *s3Source) Load(ctx context.Context) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get template s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read template s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return string(b), nil
}
