package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type turnStorage interface {
	SaveTurn(ctx context.Context, turn expense.Turn) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	storage       turnStorage
}

func NewConsumer(cfg consumerConfig, storage turnStorage) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ExpensesTopic(),
		storage:       storage,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() error {
	return c.consumerGroup.Close()
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.handle(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

// handle stores one turn event. Undecodable events are logged and skipped so
// that a poison message never blocks the partition.
func (c *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var turn expense.Turn
	if err := json.Unmarshal(message.Value, &turn); err != nil {
		logger.Error("cannot unmarshal kafka message", zap.ByteString("key", message.Key), zap.Error(err))
		return
	}
	logger.Info(
		"received expense turn",
		zap.String("turn", turn.ID),
		zap.Int("records", len(turn.Records)),
	)
	if err := c.storage.SaveTurn(ctx, turn); err != nil {
		logger.Error("failed to save turn", zap.String("turn", turn.ID), zap.Error(err))
	}
}
