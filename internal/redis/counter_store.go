package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/polithane/polithane/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// Hash fields of a content's counter key.
const (
	fieldViews    = "views"
	fieldLikes    = "likes"
	fieldComments = "comments"
	fieldShares   = "shares"
)

// CounterStore implements domain.CounterStore on Redis hashes.
type CounterStore struct {
	rdb *goredis.Client
}

// NewCounterStore creates a CounterStore from the shared client.
func NewCounterStore(client *Client) *CounterStore {
	return &CounterStore{rdb: client.Underlying()}
}

func (s *CounterStore) Increment(ctx context.Context, contentID uuid.UUID, action domain.ActionKind) error {
	field, err := actionField(action)
	if err != nil {
		return err
	}

	if err := s.rdb.HIncrBy(ctx, counterKey(contentID), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment %s counter: %w", field, err)
	}
	return nil
}

func (s *CounterStore) AddShares(ctx context.Context, contentID uuid.UUID, n int64) error {
	if n < 0 {
		return fmt.Errorf("share delta must be non-negative, got %d", n)
	}
	if n == 0 {
		return nil
	}

	if err := s.rdb.HIncrBy(ctx, counterKey(contentID), fieldShares, n).Err(); err != nil {
		return fmt.Errorf("failed to add shares: %w", err)
	}
	return nil
}

func (s *CounterStore) Snapshot(ctx context.Context, contentID uuid.UUID) (domain.Counters, error) {
	vals, err := s.rdb.HGetAll(ctx, counterKey(contentID)).Result()
	if err != nil {
		return domain.Counters{}, fmt.Errorf("failed to read counters: %w", err)
	}

	return domain.Counters{
		Views:    parseCounter(vals[fieldViews]),
		Likes:    parseCounter(vals[fieldLikes]),
		Comments: parseCounter(vals[fieldComments]),
		Shares:   parseCounter(vals[fieldShares]),
	}, nil
}

func (s *CounterStore) Reset(ctx context.Context, contentID uuid.UUID) error {
	if err := s.rdb.Del(ctx, counterKey(contentID)).Err(); err != nil {
		return fmt.Errorf("failed to reset counters: %w", err)
	}
	return nil
}

func actionField(action domain.ActionKind) (string, error) {
	switch action {
	case domain.ActionView:
		return fieldViews, nil
	case domain.ActionLike:
		return fieldLikes, nil
	case domain.ActionComment:
		return fieldComments, nil
	}
	return "", fmt.Errorf("unknown action kind %q", action)
}

func parseCounter(raw string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0 // graceful degradation for corrupt data
	}
	return v
}

func counterKey(contentID uuid.UUID) string {
	return "counters:" + contentID.String()
}
