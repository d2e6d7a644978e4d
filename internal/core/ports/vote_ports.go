package ports

import (
	"context"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

type VoteRepository interface {
	Put(ctx context.Context, record *domain.VoteRecord) error
	RecordVote(ctx context.Context, vote domain.Vote) error
	QueryByImageHash(ctx context.Context, imageHash string) ([]domain.VoteRecord, error)
}
