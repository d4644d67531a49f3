package cache

import (
	"context"
	"sync"
	"time"

	"max.ks1230/finance-assistant/internal/entity/chat"
)

type clock interface {
	Now() time.Time
}

type memoryItem struct {
	tip     chat.Tip
	expires time.Time
}

// Memory keeps tips in process. Used when no cache server is configured.
type Memory struct {
	mu    sync.Mutex
	clock clock
	items map[string]memoryItem
}

func NewMemory(clock clock) *Memory {
	return &Memory{
		clock: clock,
		items: make(map[string]memoryItem),
	}
}

func (m *Memory) SetTip(_ context.Context, key string, tip chat.Tip, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memoryItem{tip: tip, expires: m.clock.Now().Add(ttl)}
	return nil
}

func (m *Memory) GetTip(_ context.Context, key string) (chat.Tip, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[key]
	if !ok {
		return chat.Tip{}, false, nil
	}
	if !m.clock.Now().Before(item.expires) {
		delete(m.items, key)
		return chat.Tip{}, false, nil
	}
	return item.tip, true, nil
}
