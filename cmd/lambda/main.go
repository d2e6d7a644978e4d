package main

import (
	"context"
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/vncsmyrnk/votepage/internal/adapters/handler/lambda"
	"github.com/vncsmyrnk/votepage/internal/app"
	"github.com/vncsmyrnk/votepage/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// The template and store client live for the whole execution environment.
	pageService, _, err := app.NewPageService(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	handler := lambda.NewHandler(pageService)
	if cfg.LambdaPayload == config.PayloadRESTAPI {
		awslambda.Start(handler.HandleREST)
		return
	}
	awslambda.Start(handler.Handle)
}
