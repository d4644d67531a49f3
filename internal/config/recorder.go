package config

const defaultGRPCPort = 8090

type RecorderConfig struct {
	Port int `yaml:"grpc-port"`
}

func (s *RecorderConfig) setDefaults() {
	if s.Port == 0 {
		s.Port = defaultGRPCPort
	}
}

func (s *RecorderConfig) GRPCPort() int {
	return s.Port
}
