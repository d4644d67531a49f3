package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"

	"max.ks1230/finance-assistant/internal/entity/expense"
)

func Test_OnSaveTurn_ShouldPublishJSONTurn(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var turn expense.Turn
		if err := json.Unmarshal(val, &turn); err != nil {
			return err
		}
		assert.Equal(t, "8c1d", turn.ID)
		assert.Len(t, turn.Records, 2)
		return nil
	})

	producer := &Producer{producer: sp, topic: "expenses"}
	err := producer.SaveTurn(context.Background(), expense.Turn{
		ID:      "8c1d",
		Records: []expense.Record{{Amount: 1}, {Amount: 2}},
	})

	assert.NoError(t, err)
	producer.Close()
}
