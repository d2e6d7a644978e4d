package main

import (
	"context"
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/vncsmyrnk/votepage/internal/adapters/handler/lambda"
	"github.com/vncsmyrnk/votepage/internal/app"
	"github.com/vncsmyrnk/votepage/internal/config"
	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

func main() {
	cfg := config.Read()
	if cfg.ImageBucket == "" {
		log.Fatal(domain.ErrMissingBucket)
	}

	store, err := app.NewImageStore(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	awslambda.Start(lambda.NewUploadHandler(store).HandlePresign)
}
