package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/chat"
)

type movableClock struct {
	now time.Time
}

func (c *movableClock) Now() time.Time {
	return c.now
}

func Test_OnMemoryCache_ShouldExpireAfterTTL(t *testing.T) {
	ctx := context.Background()
	clock := &movableClock{now: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	cache := NewMemory(clock)

	tip := chat.Tip{Date: "2024-03-15", Tip: "Save first."}
	require.NoError(t, cache.SetTip(ctx, "daily-tip:2024-03-15", tip, time.Hour))

	got, ok, err := cache.GetTip(ctx, "daily-tip:2024-03-15")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tip, got)

	clock.now = clock.now.Add(time.Hour)
	_, ok, err = cache.GetTip(ctx, "daily-tip:2024-03-15")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnMemoryCacheMiss_ShouldReportAbsent(t *testing.T) {
	_, ok, err := NewMemory(&movableClock{}).GetTip(context.Background(), "nope")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnDecodeTip_ShouldRejectGarbage(t *testing.T) {
	_, ok, err := decodeTip([]byte("not json"))

	assert.Error(t, err)
	assert.False(t, ok)
}
