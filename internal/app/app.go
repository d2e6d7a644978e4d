// Package app wires configuration to the store and template adapters shared by the binaries.
package app

import (
	"context"
	"database/sql"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/votepage/internal/adapters/images"
	"github.com/vncsmyrnk/votepage/internal/adapters/repository/dynamodb"
	"github.com/vncsmyrnk/votepage/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votepage/internal/adapters/template"
	"github.com/vncsmyrnk/votepage/internal/config"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
	"github.com/vncsmyrnk/votepage/internal/core/services"
)

// NewVoteRepository returns the configured store and a function releasing it.
func NewVoteRepository(ctx context.Context, cfg config.Config) (ports.VoteRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresConnString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to reach postgres: %w", err)
		}
		return postgres.NewVoteRepository(db), func() { db.Close() }, nil
	default:
		client, err := dynamodb.SharedClient(ctx, cfg.DynamoDBEndpoint)
		if err != nil {
			return nil, nil, err
		}
		return dynamodb.NewVoteRepository(client, cfg.TableName), func() {}, nil
	}
}

// NewTemplateSource prefers S3 when a bucket is configured.
func NewTemplateSource(ctx context.Context, cfg config.Config) (ports.TemplateSource, error) {
	if cfg.TemplateBucket == "" {
		return template.NewFileSource(cfg.TemplatePath, true), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return template.NewS3Source(s3.NewFromConfig(awsCfg), cfg.TemplateBucket, cfg.TemplateKey), nil
}

// NewPageService loads the template once and builds the page service around it.
func NewPageService(ctx context.Context, cfg config.Config) (ports.PageService, func(), error) {
	source, err := NewTemplateSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	page, err := source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := NewVoteRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return services.NewPageService(repo, page, cfg.ImageHash), closeRepo, nil
}

func NewImageStore(ctx context.Context, cfg config.Config) (ports.ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	return images.NewStore(client, s3.NewPresignClient(client), cfg.ImageBucket, images.DefaultUploadExpiry), nil
}
