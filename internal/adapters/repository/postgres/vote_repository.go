package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) Put(ctx context.Context, record *domain.VoteRecord) error {
	query := `
		INSERT INTO votes (image_hash, category1, category2, category1_votes, category2_votes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (image_hash) DO UPDATE
		SET category1 = EXCLUDED.category1,
		    category2 = EXCLUDED.category2,
		    category1_votes = EXCLUDED.category1_votes,
		    category2_votes = EXCLUDED.category2_votes;
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ImageHash, record.Category1, record.Category2, record.Category1Votes, record.Category2Votes)
	if err != nil {
		return fmt.Errorf("failed to put vote record: %w", err)
	}
	return nil
}

func (r *voteRepository) RecordVote(ctx context.Context, vote domain.Vote) error {
	category1, category2 := vote.Increments()

	query := `
		INSERT INTO votes (image_hash, category1, category2, category1_votes, category2_votes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (image_hash) DO UPDATE
		SET category1 = COALESCE(NULLIF(votes.category1, ''), EXCLUDED.category1),
		    category2 = COALESCE(NULLIF(votes.category2, ''), EXCLUDED.category2),
		    category1_votes = votes.category1_votes + EXCLUDED.category1_votes,
		    category2_votes = votes.category2_votes + EXCLUDED.category2_votes;
	`
	_, err := r.db.ExecContext(ctx, query, vote.ImageHash, vote.Category1, vote.Category2, category1, category2)
	if err != nil {
		return fmt.Errorf("failed to record vote for %q: %w", vote.ImageHash, err)
	}
	return nil
}

func (r *voteRepository) QueryByImageHash(ctx context.Context, imageHash string) ([]domain.VoteRecord, error) {
	query := `
		SELECT image_hash, category1, category2, category1_votes, category2_votes
		FROM votes
		WHERE image_hash = $1
	`

	rows, err := r.db.QueryContext(ctx, query, imageHash)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes for %q: %w", imageHash, err)
	}
	defer rows.Close()

	records := []domain.VoteRecord{}
	for rows.Next() {
		var rec domain.VoteRecord
		if err := rows.Scan(&rec.ImageHash, &rec.Category1, &rec.Category2, &rec.Category1Votes, &rec.Category2Votes); err != nil {
			return nil, fmt.Errorf("failed to scan vote record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}

	return records, nil
}
