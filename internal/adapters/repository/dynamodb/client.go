package dynamodb

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	sharedOnce   sync.Once
	sharedClient *dynamodb.Client
	sharedErr    error
)

// SharedClient creates the process-wide client on first use and hands the
// same one out afterwards. endpoint overrides the service URL, e.g. for
// DynamoDB Local; it only matters on the first call.
func SharedClient(ctx context.Context, endpoint string) (*dynamodb.Client, error) {
	sharedOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			sharedErr = fmt.Errorf("failed to load aws config: %w", err)
			return
		}
		sharedClient = NewClient(cfg, endpoint)
	})
	return sharedClient, sharedErr
}

func NewClient(cfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
