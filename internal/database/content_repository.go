package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/polithane/polithane/internal/domain"
)

// contentColumns must match the Scan order in scanContent.
const contentColumns = `id, author_id, content_type, topic_category, sentiment, tension_level, is_repost, views, likes, comments, shares, published_score, created_at, updated_at`

// ContentRepo implements domain.ContentRepository backed by PostgreSQL.
type ContentRepo struct {
	pool *pgxpool.Pool
}

// NewContentRepo creates a ContentRepo from the shared connection pool.
func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

func scanContent(row pgx.Row) (*domain.ContentItem, error) {
	var c domain.ContentItem
	err := row.Scan(
		&c.ID, &c.AuthorID, &c.ContentType, &c.TopicCategory, &c.Sentiment,
		&c.TensionLevel, &c.IsRepost,
		&c.Counters.Views, &c.Counters.Likes, &c.Counters.Comments, &c.Counters.Shares,
		&c.PublishedScore, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepo) Create(ctx context.Context, content *domain.ContentItem) (*domain.ContentItem, error) {
	created, err := scanContent(r.pool.QueryRow(ctx, `
		INSERT INTO contents (author_id, content_type, topic_category, sentiment, tension_level, is_repost, views, likes, comments, shares, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING `+contentColumns+`
	`, content.AuthorID, content.ContentType, content.TopicCategory, content.Sentiment,
		content.TensionLevel, content.IsRepost,
		content.Counters.Views, content.Counters.Likes, content.Counters.Comments, content.Counters.Shares))
	if err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return created, nil
}

func (r *ContentRepo) GetByID(ctx context.Context, contentID uuid.UUID) (*domain.ContentItem, error) {
	content, err := scanContent(r.pool.QueryRow(ctx,
		`SELECT `+contentColumns+` FROM contents WHERE id = $1`, contentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return content, nil
}

func (r *ContentRepo) UpdatePublishedScore(ctx context.Context, contentID uuid.UUID, score int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE contents
		SET published_score = $1, updated_at = NOW()
		WHERE id = $2
	`, score, contentID)
	if err != nil {
		return fmt.Errorf("failed to update published score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContentRepo) RecentScoresByAuthor(ctx context.Context, authorID uuid.UUID, excludeID uuid.UUID, limit int) ([]float64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT published_score
		FROM contents
		WHERE author_id = $1 AND id <> $2
		ORDER BY created_at DESC
		LIMIT $3
	`, authorID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent scores: %w", err)
	}
	defer rows.Close()

	var scores []float64
	for rows.Next() {
		var score int64
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, float64(score))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}

	return scores, nil
}
