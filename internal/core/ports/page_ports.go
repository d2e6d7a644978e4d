package ports

import (
	"context"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

type TemplateSource interface {
	Load(ctx context.Context) (string, error)
}

type PageService interface {
	Render(ctx context.Context, params domain.Params) (string, error)
}
