package config

const (
	defaultHTTPAddress = ":8000"
	defaultBackendURL  = "http://localhost:8000"
)

type HTTPConfig struct {
	Addr    string `yaml:"address"`
	Backend string `yaml:"backend-url"`
}

func (s *HTTPConfig) setDefaults() {
	if s.Addr == "" {
		s.Addr = defaultHTTPAddress
	}
	if s.Backend == "" {
		s.Backend = defaultBackendURL
	}
}

func (s *HTTPConfig) Address() string {
	return s.Addr
}

// BackendURL is where the bot and the CLI reach the chat backend.
func (s *HTTPConfig) BackendURL() string {
	return s.Backend
}
