package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContentRepository abstracts content persistence backed by PostgreSQL.
type ContentRepository interface {
	Create(ctx context.Context, content *ContentItem) (*ContentItem, error)
	GetByID(ctx context.Context, contentID uuid.UUID) (*ContentItem, error)
	UpdatePublishedScore(ctx context.Context, contentID uuid.UUID, score int64) error
	// RecentScoresByAuthor returns the published scores of the author's most
	// recent content, newest first, excluding excludeID when non-nil.
	RecentScoresByAuthor(ctx context.Context, authorID uuid.UUID, excludeID uuid.UUID, limit int) ([]float64, error)
}

// ProfileRepository abstracts author profile persistence backed by PostgreSQL.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *AuthorProfile) (*AuthorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*AuthorProfile, error)
	UpdateScore(ctx context.Context, userID uuid.UUID, score int64) error
}

// CounterStore abstracts the engagement counter storage backed by Redis.
// Increments are atomic so concurrent interaction events never lose updates.
type CounterStore interface {
	Increment(ctx context.Context, contentID uuid.UUID, action ActionKind) error
	AddShares(ctx context.Context, contentID uuid.UUID, n int64) error
	Snapshot(ctx context.Context, contentID uuid.UUID) (Counters, error)
	Reset(ctx context.Context, contentID uuid.UUID) error
}

// TrendSource supplies the timing/trend inputs for a content item. The
// topic-matching and virality subsystems behind it are black boxes.
type TrendSource interface {
	TrendInputs(ctx context.Context, content *ContentItem) (TrendInputs, error)
}

// ElectionCalendar resolves the election-period factor for a point in time.
type ElectionCalendar interface {
	Factor(at time.Time) float64
}

// ScoreBroadcaster publishes score updates to live subscribers.
type ScoreBroadcaster interface {
	Broadcast(contentID uuid.UUID, update ScoreUpdate)
}
