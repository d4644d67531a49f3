package config

import "fmt"

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

type PostgresConfig struct {
	Hostname string `yaml:"host"`
	Db       string `yaml:"db"`
	User     string `yaml:"username"`
	Pswd     string `yaml:"password"`
}

func (s *PostgresConfig) Host() string {
	return s.Hostname
}

func (s *PostgresConfig) Database() string {
	return s.Db
}

func (s *PostgresConfig) Username() string {
	return s.User
}

func (s *PostgresConfig) Password() string {
	return s.Pswd
}

func (s *PostgresConfig) Enabled() bool {
	return s.Hostname != ""
}

func (s *PostgresConfig) DSN() string {
	return fmt.Sprintf(dsnTemplate, s.User, s.Pswd, s.Hostname, s.Db)
}
