package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ExpensesTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create producer")
	}
	return &Producer{
		producer: producer,
		topic:    cfg.ExpensesTopic(),
	}, nil
}

// SaveTurn publishes the turn for the recorder, keyed by turn id.
func (p *Producer) SaveTurn(_ context.Context, turn expense.Turn) error {
	value, err := json.Marshal(turn)
	if err != nil {
		return errors.Wrap(err, "encode turn")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(turn.ID),
		Value: sarama.ByteEncoder(value),
	})
	return errors.Wrap(err, "publish turn")
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
