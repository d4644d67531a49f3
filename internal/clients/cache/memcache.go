package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/logger"
)

type MemcacheClient struct {
	client *memcache.Client
}

type memcacheConfig interface {
	Hosts() []string
}

func NewMemcache(config memcacheConfig) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func (mc *MemcacheClient) SetTip(_ context.Context, key string, tip chat.Tip, ttl time.Duration) error {
	logger.Info("cache tip", zap.String("key", key))
	value, err := json.Marshal(tip)
	if err != nil {
		return errors.Wrap(err, "encode tip")
	}
	return mc.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl.Seconds()),
	})
}

func (mc *MemcacheClient) GetTip(_ context.Context, key string) (chat.Tip, bool, error) {
	item, err := mc.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return chat.Tip{}, false, nil
	}
	if err != nil {
		return chat.Tip{}, false, errors.Wrap(err, "get tip")
	}
	return decodeTip(item.Value)
}

func decodeTip(value []byte) (chat.Tip, bool, error) {
	var tip chat.Tip
	if err := json.Unmarshal(value, &tip); err != nil {
		return chat.Tip{}, false, errors.Wrap(err, "decode tip")
	}
	return tip, true, nil
}
