package gamedata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tableKeyPrefix = "gamedata:table:"

type redisTableStore struct {
	client redis.UniversalClient
}

// NewRedisTableStore shares fetched tables between bot instances
func NewRedisTableStore(client redis.UniversalClient) TableStore {
	return &redisTableStore{client: client}
}

func (s *redisTableStore) Get(ctx context.Context, table string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, tableKey(table)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get table %s from Redis: %w", table, err)
	}

	return data, true, nil
}

func (s *redisTableStore) Set(ctx context.Context, table string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, tableKey(table), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set table %s in Redis: %w", table, err)
	}
	return nil
}

func tableKey(table string) string {
	return tableKeyPrefix + table
}
