package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Generator calls the Gemini API through the official Go SDK.
type Generator struct {
	client *genai.Client
	log    *slog.Logger
}

func NewGenerator(ctx context.Context, apiKey string, log *slog.Logger) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Generator{client: client, log: log}, nil
}

// Generate sends prompt as a single user turn. Thinking is disabled to keep
// suggestions fast; no timeout is set beyond the SDK default.
func (g *Generator) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	g.log.Debug("Reply generated", "model", model)
	return resp.Text(), nil
}
