package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"max.ks1230/finance-assistant/internal/entity/chat"
)

type redisConfig interface {
	Address() string
	Password() string
}

type RedisClient struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, config redisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Address(),
		Password: config.Password(),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}
	return &RedisClient{client: client}, nil
}

func (r *RedisClient) SetTip(ctx context.Context, key string, tip chat.Tip, ttl time.Duration) error {
	value, err := json.Marshal(tip)
	if err != nil {
		return errors.Wrap(err, "encode tip")
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisClient) GetTip(ctx context.Context, key string) (chat.Tip, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return chat.Tip{}, false, nil
	}
	if err != nil {
		return chat.Tip{}, false, errors.Wrap(err, "get tip")
	}
	return decodeTip(value)
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
