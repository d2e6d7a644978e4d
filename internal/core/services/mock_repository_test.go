package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) Put(ctx context.Context, record *domain.VoteRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockVoteRepository) RecordVote(ctx context.Context, vote domain.Vote) error {
	return m.Called(ctx, vote).Error(0)
}

func (m *mockVoteRepository) QueryByImageHash(ctx context.Context, imageHash string) ([]domain.VoteRecord, error) {
	args := m.Called(ctx, imageHash)
	records, _ := args.Get(0).([]domain.VoteRecord)
	return records, args.Error(1)
}
