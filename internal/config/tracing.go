package config

const defaultServiceName = "finance-assistant"

type TracingConfig struct {
	Service   string `yaml:"service-name"`
	AgentAddr string `yaml:"agent-host-port"`
	Off       bool   `yaml:"disabled"`
}

func (s *TracingConfig) setDefaults() {
	if s.Service == "" {
		s.Service = defaultServiceName
	}
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}

func (s *TracingConfig) AgentHostPort() string {
	return s.AgentAddr
}

func (s *TracingConfig) Disabled() bool {
	return s.Off
}
