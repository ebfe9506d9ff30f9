package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

const draftKeyPrefix = "draft:"

// redisDraftStore persists draft snapshots in Redis with a TTL so
// abandoned sessions expire on their own.
type redisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftStore builds a Redis-backed draft store.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) DraftStore {
	return &redisDraftStore{client: client, ttl: ttl}
}

func (s *redisDraftStore) Save(ctx context.Context, key string, draft domain.Draft) error {
	blob, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKeyPrefix+key, blob, s.ttl).Err()
}

func (s *redisDraftStore) Load(ctx context.Context, key string) (*domain.Draft, error) {
	blob, err := s.client.Get(ctx, draftKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var draft domain.Draft
	if err := json.Unmarshal(blob, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *redisDraftStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, draftKeyPrefix+key).Err()
}
