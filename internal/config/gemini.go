package config

const (
	defaultChatModel = "gemini-2.5-flash-lite"
	defaultTipModel  = "gemini-1.5-flash"
)

type GeminiConfig struct {
	Key       string `yaml:"api-key"`
	Chat      string `yaml:"model"`
	TipsModel string `yaml:"tip-model"`
}

func (g *GeminiConfig) setDefaults() {
	if g.Chat == "" {
		g.Chat = defaultChatModel
	}
	if g.TipsModel == "" {
		g.TipsModel = defaultTipModel
	}
}

func (g *GeminiConfig) ApiKey() string {
	return g.Key
}

func (g *GeminiConfig) Model() string {
	return g.Chat
}

func (g *GeminiConfig) TipModel() string {
	return g.TipsModel
}

func (g *GeminiConfig) Configured() bool {
	return g.Key != ""
}
