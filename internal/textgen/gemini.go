package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultGeminiTimeout = 10 * time.Second

	geminiTemperature     float32 = 0.9
	geminiMaxOutputTokens int32   = 200
)

// GeminiConfig controls how the Gemini client reaches the API.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Gemini generates praise phrases through the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini constructs a Gemini-backed provider with the given configuration.
func NewGemini(cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGeminiTimeout
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model, timeout: timeout}, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(req)), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(geminiTemperature),
		MaxOutputTokens: geminiMaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	phrase := cleanPhrase(resp.Text())
	if phrase == "" {
		return "", errors.New("gemini returned an empty completion")
	}
	return phrase, nil
}

// Close releases the underlying client. The genai SDK client holds no
// closable resources, so this is a no-op.
func (g *Gemini) Close() error {
	return nil
}

// buildPrompt asks for a short Spotify-Wrapped style celebration line
// in Brazilian Portuguese for the category champion.
func buildPrompt(req Request) string {
	label := req.Label
	if label == "" {
		label = req.Category
	}
	return fmt.Sprintf(
		"Crie uma mensagem de celebração no estilo Spotify Wrapped para %s, campeão da categoria %s da pelada com %d no total. "+
			"A mensagem deve ser divertida e celebratória, em português brasileiro, com no máximo 2 frases curtas. "+
			"Use emojis se fizer sentido, mas seja sutil.",
		req.Player, label, req.Value,
	)
}

// cleanPhrase strips wrapping quotes and whitespace from a completion.
func cleanPhrase(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"'")
	return strings.TrimSpace(text)
}
