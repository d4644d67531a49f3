package config

type RedisConfig struct {
	Addr string `yaml:"address"`
	Pswd string `yaml:"password"`
}

func (s *RedisConfig) Address() string {
	return s.Addr
}

func (s *RedisConfig) Password() string {
	return s.Pswd
}

func (s *RedisConfig) Enabled() bool {
	return s.Addr != ""
}
