package ports

import "context"

type ImageStore interface {
	PresignUpload(ctx context.Context, objectName string) (string, error)
	Rename(ctx context.Context, bucket, key string) (string, error)
}
