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

// profileColumns must match the Scan order in scanProfile.
const profileColumns = `user_id, role, party_id, verified, follower_count, occupation, province, recent_engagement_avg, original_content_ratio, message_activity, score, created_at, updated_at`

// ProfileRepo implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepo creates a ProfileRepo from the shared connection pool.
func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func scanProfile(row pgx.Row) (*domain.AuthorProfile, error) {
	var p domain.AuthorProfile
	err := row.Scan(
		&p.UserID, &p.Role, &p.PartyID, &p.Verified, &p.FollowerCount,
		&p.Occupation, &p.Province, &p.RecentEngagementAvg, &p.OriginalContentRatio,
		&p.MessageActivity, &p.Score, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, profile *domain.AuthorProfile) (*domain.AuthorProfile, error) {
	upserted, err := scanProfile(r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, role, party_id, verified, follower_count, occupation, province, recent_engagement_avg, original_content_ratio, message_activity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			role = EXCLUDED.role,
			party_id = EXCLUDED.party_id,
			verified = EXCLUDED.verified,
			follower_count = EXCLUDED.follower_count,
			occupation = EXCLUDED.occupation,
			province = EXCLUDED.province,
			recent_engagement_avg = EXCLUDED.recent_engagement_avg,
			original_content_ratio = EXCLUDED.original_content_ratio,
			message_activity = EXCLUDED.message_activity,
			updated_at = NOW()
		RETURNING `+profileColumns+`
	`, profile.UserID, profile.Role, profile.PartyID, profile.Verified, profile.FollowerCount,
		profile.Occupation, profile.Province, profile.RecentEngagementAvg,
		profile.OriginalContentRatio, profile.MessageActivity))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return upserted, nil
}

// GetByUserID returns (nil, nil) when no profile exists. Missing profiles are
// expected during scoring and degrade to a zero profile, they are not errors.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AuthorProfile, error) {
	profile, err := scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (r *ProfileRepo) UpdateScore(ctx context.Context, userID uuid.UUID, score int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET score = $1, updated_at = NOW()
		WHERE user_id = $2
	`, score, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
