package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/storage"
)

func Test_OnTurnMessage_ShouldStoreTurn(t *testing.T) {
	ctx := context.Background()
	journal := storage.NewInMemStorage()
	consumer := &Consumer{storage: journal}

	value, err := json.Marshal(expense.Turn{
		ID:        "8c1d",
		Currency:  "INR",
		Records:   []expense.Record{{Date: "2024-03-15", Category: "Other", Amount: 42, Description: "Books"}},
		CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	consumer.handle(ctx, &sarama.ConsumerMessage{Key: []byte("8c1d"), Value: value})

	entries, err := journal.GetExpenses(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "8c1d", entries[0].TurnID)
	assert.Equal(t, 42.0, entries[0].Amount)
}

func Test_OnPoisonMessage_ShouldSkipIt(t *testing.T) {
	ctx := context.Background()
	journal := storage.NewInMemStorage()
	consumer := &Consumer{storage: journal}

	consumer.handle(ctx, &sarama.ConsumerMessage{Value: []byte("{broken")})

	entries, err := journal.GetExpenses(ctx, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
