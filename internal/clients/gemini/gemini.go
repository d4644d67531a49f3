package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"max.ks1230/finance-assistant/internal/entity/chat"
)

var ErrEmptyResponse = errors.New("model returned no text")

type Client struct {
	client *genai.Client
}

func New(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Model returns a text generator bound to one model name.
func (c *Client) Model(name string) *Generator {
	return &Generator{client: c.client, name: name}
}

type Generator struct {
	client *genai.Client
	name   string
}

// Generate sends a single prompt. Model handles hold generation settings, so
// each call gets its own.
func (g *Generator) Generate(ctx context.Context, prompt string, cfg chat.GenerationConfig) (string, error) {
	model := g.client.GenerativeModel(g.name)
	model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	model.SetTemperature(float32(cfg.Temperature))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		break
	}
	return b.String()
}
