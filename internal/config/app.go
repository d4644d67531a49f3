package config

import (
	"fmt"
	"time"

	"max.ks1230/finance-assistant/internal/entity/currency"
	"max.ks1230/finance-assistant/internal/utils"
)

const (
	defaultMaxTokens      = 1000
	defaultTemperature    = 0.7
	defaultFilePrefix     = "student"
	defaultDownloadsDir   = "downloads"
	defaultRequestTimeout = 60
)

type AppConfig struct {
	BaseCurrencyName      string  `yaml:"base-currency"`
	MaxTokensPerReply     int     `yaml:"max-tokens"`
	ReplyTemperature      float64 `yaml:"temperature"`
	SpreadsheetPrefix     string  `yaml:"file-prefix"`
	DownloadsDirectory    string  `yaml:"downloads-dir"`
	RequestTimeoutSeconds int64   `yaml:"request-timeout-seconds"`
}

func (s *AppConfig) setDefaults() {
	if s.BaseCurrencyName == "" {
		s.BaseCurrencyName = currency.INR
	}
	if s.MaxTokensPerReply <= 0 {
		s.MaxTokensPerReply = defaultMaxTokens
	}
	if s.ReplyTemperature <= 0 {
		s.ReplyTemperature = defaultTemperature
	}
	if s.SpreadsheetPrefix == "" {
		s.SpreadsheetPrefix = defaultFilePrefix
	}
	if s.DownloadsDirectory == "" {
		s.DownloadsDirectory = defaultDownloadsDir
	}
	if s.RequestTimeoutSeconds <= 0 {
		s.RequestTimeoutSeconds = defaultRequestTimeout
	}
}

func (s *AppConfig) validate() error {
	if !utils.Contains(currency.Currencies, s.BaseCurrencyName) {
		return fmt.Errorf("unknown currency %s", s.BaseCurrencyName)
	}
	return nil
}

func (s *AppConfig) BaseCurrency() string {
	return s.BaseCurrencyName
}

func (s *AppConfig) MaxTokens() int {
	return s.MaxTokensPerReply
}

func (s *AppConfig) Temperature() float64 {
	return s.ReplyTemperature
}

func (s *AppConfig) FilePrefix() string {
	return s.SpreadsheetPrefix
}

func (s *AppConfig) DownloadsDir() string {
	return s.DownloadsDirectory
}

func (s *AppConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}
