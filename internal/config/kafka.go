package config

const (
	defaultConsumerGroup = "expense-recorder"
	defaultExpensesTopic = "expenses"
)

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	Topic      string   `yaml:"expenses-topic"`
}

func (s *KafkaConfig) setDefaults() {
	if s.Consumer == "" {
		s.Consumer = defaultConsumerGroup
	}
	if s.Topic == "" {
		s.Topic = defaultExpensesTopic
	}
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) ExpensesTopic() string {
	return s.Topic
}

func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
