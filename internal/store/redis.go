package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

// redisStore shares one layout state between several API instances.
type redisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client) *redisStore {
	return &redisStore{client: client, key: StateKey}
}

func (s *redisStore) Load(ctx context.Context) (*models.LayoutState, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewNotFoundError("layout state not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get layout state", err)
	}
	return decodeEnvelope(data)
}

func (s *redisStore) Save(ctx context.Context, state models.LayoutState) error {
	data, err := encodeEnvelope(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errs.NewDatabaseError("write", "failed to save layout state", err)
	}
	return nil
}
