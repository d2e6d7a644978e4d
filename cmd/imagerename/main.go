package main

import (
	"context"
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/vncsmyrnk/votepage/internal/adapters/handler/lambda"
	"github.com/vncsmyrnk/votepage/internal/app"
	"github.com/vncsmyrnk/votepage/internal/config"
)

// Triggered by S3 object-created notifications on the upload bucket.
func main() {
	store, err := app.NewImageStore(context.Background(), config.Read())
	if err != nil {
		log.Fatal(err)
	}

	awslambda.Start(lambda.NewUploadHandler(store).HandleS3)
}
