package images

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

const DefaultUploadExpiry = time.Hour

type ObjectAPI interface {
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type store struct {
	client    ObjectAPI
	presigner PresignAPI
	bucket    string
	expiry    time.Duration
	newName   func() string
}

// NewStore handles uploads into bucket. Rename works on whatever bucket the
// event names.
func NewStore(client ObjectAPI, presigner PresignAPI, bucket string, expiry time.Duration) ports.ImageStore {
	if expiry <= 0 {
		expiry = DefaultUploadExpiry
	}
	return &store{
		client:    client,
		presigner: presigner,
		bucket:    bucket,
		expiry:    expiry,
		newName:   domain.NewImageName,
	}
}

func (s *store) PresignUpload(ctx context.Context, objectName string) (string, error) {
	if objectName == "" {
		return "", domain.ErrMissingObjectName
	}
	if s.bucket == "" {
		return "", domain.ErrMissingBucket
	}

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectName),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload of %q: %w", objectName, err)
	}
	return req.URL, nil
}

// Rename copies the object to a fresh unique name and removes the original.
func (s *store) Rename(ctx context.Context, bucket, key string) (string, error) {
	newKey := s.newName()

	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(bucket),
		Key:        aws.String(newKey),
		CopySource: aws.String(bucket + "/" + url.PathEscape(key)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to copy %s/%s: %w", bucket, key, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}

	return newKey, nil
}
