package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "*",
	"Access-Control-Allow-Methods": "OPTIONS,POST",
	"Content-Type":                 "application/json",
}

type UploadHandler struct {
	store ports.ImageStore
}

func NewUploadHandler(store ports.ImageStore) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

type presignRequest struct {
	ObjectName string `json:"objectName"`
}

// HandlePresign answers {"objectName": ...} with a presigned PUT URL. Every
// failure, bad input included, is reported as a 500 with an error body.
func (h *UploadHandler) HandlePresign(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	url, err := h.presign(ctx, event)
	if err != nil {
		slog.Error("failed to presign upload", "error", err)
		return jsonResponse(500, map[string]string{"error": err.Error()})
	}
	return jsonResponse(200, map[string]string{"url": url})
}

func (h *UploadHandler) presign(ctx context.Context, event events.APIGatewayV2HTTPRequest) (string, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return "", fmt.Errorf("invalid request body: %w", err)
		}
		body = decoded
	}

	var req presignRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", fmt.Errorf("invalid request body: %w", err)
	}
	return h.store.PresignUpload(ctx, req.ObjectName)
}

// HandleS3 gives every uploaded object a unique name.
func (h *UploadHandler) HandleS3(ctx context.Context, event events.S3Event) (string, error) {
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key := record.S3.Object.URLDecodedKey
		if key == "" {
			key = record.S3.Object.Key
		}

		newKey, err := h.store.Rename(ctx, bucket, key)
		if err != nil {
			return "", err
		}
		slog.Info("Renamed image", "bucket", bucket, "from", key, "to", newKey)
	}
	return "Image successfully renamed", nil
}

func jsonResponse(status int, body map[string]string) (events.APIGatewayV2HTTPResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(b),
	}, nil
}
