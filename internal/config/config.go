package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnv     = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	App       AppConfig       `yaml:"app"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Redis     RedisConfig     `yaml:"redis"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Recorder  RecorderConfig  `yaml:"recorder"`
}

type Service struct {
	config config
}

// New loads .env, then the YAML file, then applies environment overrides.
// The default config file is optional, an explicit CONFIG_FILE is not.
func New() (*Service, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	path, explicit := os.LookupEnv(configFileEnv)
	if !explicit || path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	switch {
	case err == nil:
	case os.IsNotExist(err) && !explicit:
		rawYAML = nil
	default:
		return nil, errors.Wrap(err, "reading config file")
	}

	return Parse(rawYAML)
}

// Parse builds the configuration from raw YAML and the current environment.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	if len(rawYAML) > 0 {
		if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	s.applyEnv()
	s.applyDefaults()

	if err := s.config.App.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

func (s *Service) applyEnv() {
	overrides := map[string]*string{
		"GEMINI_API_KEY":    &s.config.Gemini.Key,
		"TELEGRAM_TOKEN":    &s.config.Telegram.ApiToken,
		"POSTGRES_PASSWORD": &s.config.Postgres.Pswd,
		"BACKEND_URL":       &s.config.HTTP.Backend,
		"HTTP_ADDRESS":      &s.config.HTTP.Addr,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*target = value
		}
	}
}

func (s *Service) applyDefaults() {
	s.config.HTTP.setDefaults()
	s.config.App.setDefaults()
	s.config.Gemini.setDefaults()
	s.config.Tracing.setDefaults()
	s.config.Recorder.setDefaults()
	s.config.Kafka.setDefaults()
}

func (s *Service) HTTP() *HTTPConfig {
	return &s.config.HTTP
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Gemini() *GeminiConfig {
	return &s.config.Gemini
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Redis() *RedisConfig {
	return &s.config.Redis
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

func (s *Service) Recorder() *RecorderConfig {
	return &s.config.Recorder
}
