package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

type pageService struct {
	repo      ports.VoteRepository
	template  string
	imageHash string
}

// NewPageService keeps template as-is; every Render works on a copy.
func NewPageService(repo ports.VoteRepository, template string, imageHash string) ports.PageService {
	if imageHash == "" {
		imageHash = domain.DefaultImageHash
	}
	return &pageService{
		repo:      repo,
		template:  template,
		imageHash: imageHash,
	}
}

func (s *pageService) Render(ctx context.Context, params domain.Params) (string, error) {
	if !params.Empty() {
		vote := domain.VoteFromParams(params, s.imageHash)
		if err := s.repo.RecordVote(ctx, vote); err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
		}
	}

	form := renderForm(params)

	records, err := s.repo.QueryByImageHash(ctx, s.imageHash)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStoreRead, err)
	}

	table, err := renderTable(records)
	if err != nil {
		return "", err
	}

	return fill(s.template, form, table), nil
}
